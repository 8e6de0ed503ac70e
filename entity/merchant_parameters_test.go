package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameters_Set(t *testing.T) {
	var p Parameters
	p.Set("merchantId", "M1")
	p.Set("value", "1.00")
	p.Set("merchantId", "M2")

	assert.Equal(t, Parameters{{Key: "merchantId", Value: "M2"}, {Key: "value", Value: "1.00"}}, p)
}

func TestParameters_Get(t *testing.T) {
	p := Parameters{{Key: "currency", Value: ""}}

	value, ok := p.Get("currency")
	assert.True(t, ok)
	assert.Equal(t, "", value)

	_, ok = p.Get("value")
	assert.False(t, ok)
}

func TestParameters_VatBreakdown(t *testing.T) {
	var breakdown VatBreakdown = Parameters{}
	assert.True(t, breakdown.IsEmpty())

	source := Parameters{{Key: "eetDphDan1", Value: "21.00"}}
	breakdown = source
	assert.False(t, breakdown.IsEmpty())

	copied := breakdown.ToParameters()
	copied.Set("eetDphDan1", "0.00")
	assert.Equal(t, "21.00", source[0].Value)
}

func TestParameters_Encode(t *testing.T) {
	p := Parameters{
		{Key: "merchantId", Value: "1"},
		{Key: "description", Value: "Order 42 & more"},
		{Key: "returnUrl", Value: "https://shop.example/?a=b"},
	}
	assert.Equal(t, "merchantId=1&description=Order+42+%26+more&returnUrl=https%3A%2F%2Fshop.example%2F%3Fa%3Db", p.Encode())
}

func TestMerchantConfig_IsConfigured(t *testing.T) {
	var nilConfig *MerchantConfig
	assert.False(t, nilConfig.IsConfigured())
	assert.False(t, (&MerchantConfig{MerchantId: "1", AccountId: "1"}).IsConfigured())
	assert.True(t, (&MerchantConfig{MerchantId: "1", AccountId: "1", Password: "x"}).IsConfigured())
}
