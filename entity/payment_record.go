// Package entity defines data models for the ThePay gate service.
package entity

import "time"

// PaymentRecord is a signed payment request as stored in the database.
type PaymentRecord struct {
	RequestId   string     `json:"request_id" bson:"request_id"`
	MerchantId  string     `json:"merchant_id" bson:"merchant_id"`
	AccountId   string     `json:"account_id" bson:"account_id"`
	Parameters  Parameters `json:"parameters" bson:"parameters"`
	Signature   string     `json:"signature" bson:"signature"`
	TimeCreated time.Time  `json:"time_created" bson:"time_created"`
}

func (r *PaymentRecord) DataType() string {
	return "payment"
}
