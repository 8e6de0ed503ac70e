package internal

import (
	"fmt"
	"gitee.com/golang-module/dongle"
	"strings"
	"thepay/entity"
)

type Encryptor struct {
	password   string // shared secret, appended to the signing input only
	parameters entity.Parameters
}

func NewEncryptor(password string, parameters entity.Parameters) *Encryptor {
	return &Encryptor{
		password:   password,
		parameters: parameters,
	}
}

// CreateSignature hashes "key=value" pairs joined with "&", followed by the password pair.
// The gate verifies with the same MD5 construction, so the hash must not be changed.
func (e *Encryptor) CreateSignature() string {
	return HashFunction(e.signingInput())
}

func (e *Encryptor) signingInput() string {
	items := make([]string, 0, len(e.parameters)+1)
	for _, parameter := range e.parameters {
		items = append(items, fmt.Sprintf("%s=%s", parameter.Key, parameter.Value))
	}
	items = append(items, "password="+e.password)
	return strings.Join(items, "&")
}

// HashFunction returns the lowercase hex MD5 digest of str.
func HashFunction(str string) string {
	return dongle.Encrypt.FromString(str).ByMd5().ToHexString()
}
