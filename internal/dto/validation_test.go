package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRegisterValidators(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	RegisterValidators(v)

	agent := decimal.RequireFromString("40")
	valid := CommissionConfigRequest{
		CommissionPercent:       decimal.RequireFromString("5"),
		PREAPercentOfCommission: decimal.RequireFromString("3"),
		AgencyPercentRemaining:  decimal.RequireFromString("60"),
		AgentPercentRemaining:   &agent,
		VATRateOnCommission:     decimal.RequireFromString("0.155"),
	}
	assert.NoError(t, v.Struct(valid))

	tooHigh := valid
	tooHigh.CommissionPercent = decimal.RequireFromString("150")
	assert.Error(t, v.Struct(tooHigh))

	badFraction := valid
	badFraction.VATRateOnCommission = decimal.RequireFromString("15.5")
	assert.Error(t, v.Struct(badFraction))

	negativeAgent := decimal.RequireFromString("-1")
	badAgent := valid
	badAgent.AgentPercentRemaining = &negativeAgent
	assert.Error(t, v.Struct(badAgent))

	noAgent := valid
	noAgent.AgentPercentRemaining = nil
	assert.NoError(t, v.Struct(noAgent))
}

func TestCommissionConfigRequest_ToConfig(t *testing.T) {
	agent := decimal.RequireFromString("45")
	req := CommissionConfigRequest{
		CommissionPercent:       decimal.RequireFromString("5"),
		PREAPercentOfCommission: decimal.RequireFromString("3"),
		AgencyPercentRemaining:  decimal.RequireFromString("60"),
		AgentPercentRemaining:   &agent,
	}
	_, err := req.ToConfig()
	assert.Error(t, err)

	req.AgentPercentRemaining = nil
	cfg, err := req.ToConfig()
	assert.NoError(t, err)
	assert.Equal(t, "40", cfg.AgentPercentRemaining().String())
}
