package entity

import (
	"net/url"
	"strings"
)

// Parameter is a single key/value pair of the gate request.
type Parameter struct {
	Key   string `json:"key" bson:"key"`
	Value string `json:"value" bson:"value"`
}

// Parameters is the ordered parameter set sent to the ThePay gate.
// Order is part of the wire contract: the gate recomputes the signature
// over the parameters in the order they were transmitted.
type Parameters []Parameter

// VatBreakdown is a VAT decomposition (EET DPH) appended to the gate parameters.
// Its internal computation is not part of this service; only the flattened
// result is merged into the request.
type VatBreakdown interface {
	IsEmpty() bool
	ToParameters() Parameters
}

// Set replaces the value of an existing key in place, or appends a new pair.
func (p *Parameters) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Parameter{Key: key, Value: value})
}

// Get returns the value of the key and whether it is present.
func (p Parameters) Get(key string) (string, bool) {
	for _, parameter := range p {
		if parameter.Key == key {
			return parameter.Value, true
		}
	}
	return "", false
}

func (p Parameters) Keys() []string {
	keys := make([]string, 0, len(p))
	for _, parameter := range p {
		keys = append(keys, parameter.Key)
	}
	return keys
}

// IsEmpty and ToParameters let a precomputed list act as a VatBreakdown.
func (p Parameters) IsEmpty() bool {
	return len(p) == 0
}

func (p Parameters) ToParameters() Parameters {
	out := make(Parameters, len(p))
	copy(out, p)
	return out
}

// Encode renders the parameters as a URL query string, keeping their order.
func (p Parameters) Encode() string {
	items := make([]string, 0, len(p))
	for _, parameter := range p {
		items = append(items, url.QueryEscape(parameter.Key)+"="+url.QueryEscape(parameter.Value))
	}
	return strings.Join(items, "&")
}
