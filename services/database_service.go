package services

import (
	"context"
	"thepay/entity"
)

type Database interface {
	WriteLogMessage(data Data) error

	SavePaymentRecord(ctx context.Context, record *entity.PaymentRecord) error
	GetPaymentRecord(ctx context.Context, signature string) (*entity.PaymentRecord, error)
}

type Data interface {
	DataType() string
}
