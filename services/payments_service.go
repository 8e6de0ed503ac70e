package services

import (
	"context"
	"thepay/entity"
)

type Payments interface {
	CreatePayment(ctx context.Context, order *entity.PaymentOrder, defaultReturnUrl string) (*entity.PaymentRequest, error)
	GetPayment(ctx context.Context, signature string) (*entity.PaymentRecord, error)
}
