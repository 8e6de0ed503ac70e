package entity

// PaymentOrder is the inbound description of a payment to be signed.
// Nil fields are left unset and are not sent to the gate.
type PaymentOrder struct {
	Value                  *float64   `json:"value,omitempty"`
	Currency               *string    `json:"currency,omitempty"`
	Description            *string    `json:"description,omitempty"`
	MerchantData           *string    `json:"merchant_data,omitempty"`
	CustomerData           *string    `json:"customer_data,omitempty"` // deprecated
	CustomerEmail          *string    `json:"customer_email,omitempty"`
	ReturnUrl              *string    `json:"return_url,omitempty"`
	BackToEshopUrl         *string    `json:"back_to_eshop_url,omitempty"`
	MethodId               *int       `json:"method_id,omitempty"`
	Deposit                *bool      `json:"deposit,omitempty"`
	IsRecurring            *bool      `json:"is_recurring,omitempty"`
	MerchantSpecificSymbol *string    `json:"merchant_specific_symbol,omitempty"`
	EetDph                 Parameters `json:"eet_dph,omitempty"`
}
