package internal

import (
	"context"
	"fmt"
	"thepay/config"
	"thepay/entity"
	"thepay/services"
	"time"
)

// Payments builds and signs ThePay gate requests from inbound payment orders.
type Payments struct {
	merchant *entity.MerchantConfig
	database services.Database
	logger   services.LogHandler
}

func NewPayments(conf *config.Config) *Payments {
	return &Payments{
		merchant: conf.MerchantConfig(),
		logger:   NewLogger("payments", conf.IsDebug, nil),
	}
}

func (p *Payments) SetDatabase(database services.Database) {
	p.database = database
}

func (p *Payments) SetLogger(logger services.LogHandler) {
	p.logger = logger
	if p.merchant.IsConfigured() {
		p.logger.Info(fmt.Sprintf("merchant %s; account %s", p.merchant.MerchantId, p.merchant.AccountId))
	} else {
		p.logger.Warn("merchant not configured")
	}
}

// CreatePayment signs the order. Value and currency are required; the default
// return URL is used only when the order has none.
func (p *Payments) CreatePayment(ctx context.Context, order *entity.PaymentOrder, defaultReturnUrl string) (*entity.PaymentRequest, error) {
	if !p.merchant.IsConfigured() {
		return nil, ErrMerchantNotConfigured
	}
	if order.Value == nil {
		return nil, NewMissingParameterError("value")
	}
	if order.Currency == nil {
		return nil, NewMissingParameterError("currency")
	}

	payment, err := p.newPayment(order, defaultReturnUrl)
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	request := &entity.PaymentRequest{
		Parameters: payment.Args(),
		Signature:  payment.Signature(),
		GateUrl:    p.merchant.GateUrl,
	}

	reqID := GetRequestID(ctx)
	p.logger.Info(fmt.Sprintf("[%s] %s; signature: %s", reqID, payment.String(), secret(request.Signature)))
	p.logger.Debug(fmt.Sprintf("[%s] parameters: %s", reqID, request.Parameters.Encode()))

	if p.database != nil {
		record := &entity.PaymentRecord{
			RequestId:   reqID,
			MerchantId:  p.merchant.MerchantId,
			AccountId:   p.merchant.AccountId,
			Parameters:  request.Parameters,
			Signature:   request.Signature,
			TimeCreated: time.Now(),
		}
		if err = p.database.SavePaymentRecord(ctx, record); err != nil {
			p.logger.Error(fmt.Sprintf("[%s] save payment record", reqID), err)
		}
	}

	return request, nil
}

func (p *Payments) GetPayment(ctx context.Context, signature string) (*entity.PaymentRecord, error) {
	if p.database == nil {
		return nil, ErrDatabaseNotSet
	}
	record, err := p.database.GetPaymentRecord(ctx, signature)
	if err != nil {
		return nil, fmt.Errorf("get payment %s: %w", secret(signature), err)
	}
	return record, nil
}

func (p *Payments) newPayment(order *entity.PaymentOrder, defaultReturnUrl string) (*Payment, error) {
	payment := NewPayment(p.merchant, WithDefaultReturnUrl(defaultReturnUrl))

	if err := payment.SetValue(*order.Value); err != nil {
		return nil, err
	}
	payment.SetCurrency(*order.Currency)
	if order.Description != nil {
		payment.SetDescription(*order.Description)
	}
	if order.MerchantData != nil {
		payment.SetMerchantData(*order.MerchantData)
	}
	if order.CustomerData != nil {
		p.logger.Warn("customer data is deprecated, use merchant data")
		payment.SetCustomerData(*order.CustomerData)
	}
	if order.CustomerEmail != nil {
		payment.SetCustomerEmail(*order.CustomerEmail)
	}
	if order.ReturnUrl != nil {
		payment.SetReturnUrl(*order.ReturnUrl)
	}
	if order.BackToEshopUrl != nil {
		payment.SetBackToEshopUrl(*order.BackToEshopUrl)
	}
	if order.MethodId != nil {
		payment.SetMethodId(*order.MethodId)
	}
	if order.Deposit != nil {
		payment.SetDeposit(*order.Deposit)
	}
	if order.IsRecurring != nil {
		payment.SetIsRecurring(*order.IsRecurring)
	}
	if order.MerchantSpecificSymbol != nil {
		payment.SetMerchantSpecificSymbol(*order.MerchantSpecificSymbol)
	}
	if len(order.EetDph) > 0 {
		payment.SetEetDph(order.EetDph)
	}
	return payment, nil
}

func secret(some string) string {
	if len(some) > 5 {
		return fmt.Sprintf("%s***", some[0:5])
	}
	if some == "" {
		return "?"
	}
	return "***"
}
