package entity

// MerchantConfig holds the merchant's access credentials to the ThePay gate.
// MerchantId and AccountId identify the account; Password is the shared
// secret used only for signing and never transmitted.
type MerchantConfig struct {
	MerchantId string
	AccountId  string
	Password   string
	GateUrl    string
}

// IsConfigured reports whether all credentials needed for signing are present.
func (m *MerchantConfig) IsConfigured() bool {
	return m != nil && m.MerchantId != "" && m.AccountId != "" && m.Password != ""
}
