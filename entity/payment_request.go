package entity

// PaymentRequest is a signed parameter set ready to be sent to the gate.
// The signature travels alongside the parameters as the "signature" field.
type PaymentRequest struct {
	Parameters Parameters `json:"parameters"`
	Signature  string     `json:"signature"`
	GateUrl    string     `json:"gate_url,omitempty"`
}
