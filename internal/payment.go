package internal

import (
	"fmt"
	"github.com/shopspring/decimal"
	"math"
	"strconv"
	"thepay/entity"
)

// Payment is a single payment attempt at the ThePay gate.
// Unset attributes are nil and are left out of the gate parameters.
type Payment struct {
	config *entity.MerchantConfig

	value                  *decimal.Decimal
	currency               *string
	description            *string
	merchantData           *string
	customerData           *string
	customerEmail          *string
	returnUrl              *string
	backToEshopUrl         *string
	methodId               *int
	deposit                *bool
	isRecurring            *bool
	merchantSpecificSymbol *string
	eetDph                 entity.VatBreakdown
}

type PaymentOption func(p *Payment)

// WithDefaultReturnUrl seeds the return URL at construction, usually with the URL of
// the request being handled. It is ignored when empty or when a return URL is already set.
func WithDefaultReturnUrl(url string) PaymentOption {
	return func(p *Payment) {
		if p.returnUrl == nil && url != "" {
			p.returnUrl = &url
		}
	}
}

// NewPayment creates a payment for the merchant. A nil config is replaced by an empty one,
// which yields empty merchantId and accountId parameters.
func NewPayment(config *entity.MerchantConfig, opts ...PaymentOption) *Payment {
	if config == nil {
		config = &entity.MerchantConfig{}
	}
	p := &Payment{config: config}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetValue sets the amount to be paid. Negative and non-finite amounts are rejected.
func (p *Payment) SetValue(value float64) error {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return &InvalidParameterError{Parameter: "value"}
	}
	v := decimal.NewFromFloat(value)
	p.value = &v
	return nil
}

func (p *Payment) SetCurrency(currency string) {
	p.currency = &currency
}

func (p *Payment) SetDescription(description string) {
	p.description = &description
}

// SetMerchantData sets data returned unchanged to the merchant after the payment.
func (p *Payment) SetMerchantData(data string) {
	p.merchantData = &data
}

// Deprecated: use SetMerchantData.
func (p *Payment) SetCustomerData(data string) {
	p.customerData = &data
}

func (p *Payment) SetCustomerEmail(email string) {
	p.customerEmail = &email
}

func (p *Payment) SetReturnUrl(url string) {
	p.returnUrl = &url
}

// SetBackToEshopUrl sets the target of the "Back to e-shop" button on the offline payment
// info page. It must be a valid HTTP or HTTPS URL; it is not checked here.
func (p *Payment) SetBackToEshopUrl(url string) {
	p.backToEshopUrl = &url
}

// SetMethodId selects the payment method. It should reflect the customer's choice.
func (p *Payment) SetMethodId(methodId int) {
	p.methodId = &methodId
}

// SetDeposit sets whether a card payment is charged immediately (true)
// or only blocked and charged later by a deposit operation (false).
func (p *Payment) SetDeposit(deposit bool) {
	p.deposit = &deposit
}

func (p *Payment) SetIsRecurring(isRecurring bool) {
	p.isRecurring = &isRecurring
}

// SetMerchantSpecificSymbol sets the numerical specific symbol, used only
// by payment methods that support it.
func (p *Payment) SetMerchantSpecificSymbol(symbol string) {
	p.merchantSpecificSymbol = &symbol
}

func (p *Payment) SetEetDph(eetDph entity.VatBreakdown) {
	p.eetDph = eetDph
}

func (p *Payment) MerchantConfig() *entity.MerchantConfig {
	return p.config
}

func (p *Payment) Value() (float64, bool) {
	if p.value == nil {
		return 0, false
	}
	return p.value.InexactFloat64(), true
}

func (p *Payment) Currency() (string, bool) {
	return deref(p.currency)
}

func (p *Payment) Description() (string, bool) {
	return deref(p.description)
}

func (p *Payment) MerchantData() (string, bool) {
	return deref(p.merchantData)
}

func (p *Payment) CustomerEmail() (string, bool) {
	return deref(p.customerEmail)
}

func (p *Payment) ReturnUrl() (string, bool) {
	return deref(p.returnUrl)
}

func (p *Payment) BackToEshopUrl() (string, bool) {
	return deref(p.backToEshopUrl)
}

func (p *Payment) MerchantSpecificSymbol() (string, bool) {
	return deref(p.merchantSpecificSymbol)
}

func (p *Payment) MethodId() (int, bool) {
	if p.methodId == nil {
		return 0, false
	}
	return *p.methodId, true
}

func (p *Payment) Deposit() (bool, bool) {
	if p.deposit == nil {
		return false, false
	}
	return *p.deposit, true
}

func (p *Payment) IsRecurring() (bool, bool) {
	if p.isRecurring == nil {
		return false, false
	}
	return *p.isRecurring, true
}

// Deprecated: customer data is kept only for existing integrations.
func (p *Payment) CustomerData() (string, bool) {
	return deref(p.customerData)
}

func (p *Payment) EetDph() entity.VatBreakdown {
	return p.eetDph
}

// Args lists the parameters of the gate call in the order the gate expects.
// The value is formatted with two decimals, rounding half up.
func (p *Payment) Args() entity.Parameters {
	args := entity.Parameters{
		{Key: "merchantId", Value: p.config.MerchantId},
		{Key: "accountId", Value: p.config.AccountId},
	}

	if p.value != nil {
		args.Set("value", p.value.StringFixed(2))
	}
	setString(&args, "currency", p.currency)
	setString(&args, "description", p.description)
	setString(&args, "merchantData", p.merchantData)
	setString(&args, "customerData", p.customerData)
	setString(&args, "customerEmail", p.customerEmail)
	setString(&args, "returnUrl", p.returnUrl)
	setString(&args, "backToEshopUrl", p.backToEshopUrl)
	if p.methodId != nil {
		args.Set("methodId", strconv.Itoa(*p.methodId))
	}
	setBool(&args, "deposit", p.deposit)
	setBool(&args, "isRecurring", p.isRecurring)
	setString(&args, "merchantSpecificSymbol", p.merchantSpecificSymbol)

	if p.eetDph != nil && !p.eetDph.IsEmpty() {
		for _, parameter := range p.eetDph.ToParameters() {
			args.Set(parameter.Key, parameter.Value)
		}
	}

	return args
}

// Signature authenticates the payment: a hash of all parameters and the merchant
// password, so the parameters cannot be altered without knowing the password.
func (p *Payment) Signature() string {
	return NewEncryptor(p.config.Password, p.Args()).CreateSignature()
}

func (p *Payment) String() string {
	value := ""
	if p.value != nil {
		value = p.value.StringFixed(2)
	}
	currency, _ := deref(p.currency)
	description, _ := deref(p.description)
	merchantData, _ := deref(p.merchantData)
	returnUrl, _ := deref(p.returnUrl)
	symbol, _ := deref(p.merchantSpecificSymbol)
	methodId, _ := p.MethodId()
	return fmt.Sprintf("Payment[value: %s; currency: %s; description: %s; merchantData: %s; returnUrl: %s; methodId: %d; deposit: %t; isRecurring: %t; merchantSpecificSymbol: %s]",
		value, currency, description, merchantData, returnUrl, methodId,
		p.deposit != nil && *p.deposit, p.isRecurring != nil && *p.isRecurring, symbol)
}

func setString(args *entity.Parameters, key string, value *string) {
	if value != nil {
		args.Set(key, *value)
	}
}

func setBool(args *entity.Parameters, key string, value *bool) {
	if value == nil {
		return
	}
	if *value {
		args.Set(key, "1")
	} else {
		args.Set(key, "0")
	}
}

func deref(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	return *value, true
}
