package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

const validProfiles = `
profiles:
  - company_id: harare-realty
    commission_percent: "5"
    prea_percent_of_commission: "3"
    agency_percent_remaining: "50"
    vat_rate_on_commission: "0.155"
  - company_id: bulawayo-homes
    commission_percent: 7.5
    prea_percent_of_commission: 3
    agency_percent_remaining: 60
    agent_percent_remaining: 40
    vat_rate_on_commission: 0.15
`

func TestParseProfiles(t *testing.T) {
	settings, err := ParseProfiles([]byte(validProfiles))
	require.NoError(t, err)
	require.Len(t, settings, 2)

	assert.Equal(t, "harare-realty", settings[0].CompanyID)
	assert.Nil(t, settings[0].PropertyID)
	assert.Equal(t, "0.155", settings[0].Config.VATRateOnCommission.String())
	assert.Equal(t, "50", settings[0].Config.AgentPercentRemaining().String())

	assert.Equal(t, "7.5", settings[1].Config.CommissionPercent.String())
	assert.Equal(t, "40", settings[1].Config.AgentPercentRemaining().String())
}

func TestParseProfiles_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "malformed", yaml: "profiles: [", wantErr: "decode"},
		{name: "missing company", yaml: "profiles:\n  - commission_percent: 5\n", wantErr: "company_id is required"},
		{name: "missing percent", yaml: "profiles:\n  - company_id: a\n    prea_percent_of_commission: 3\n    agency_percent_remaining: 50\n    vat_rate_on_commission: 0.1\n", wantErr: "commission_percent is required"},
		{name: "not a number", yaml: "profiles:\n  - company_id: a\n    commission_percent: five\n    prea_percent_of_commission: 3\n    agency_percent_remaining: 50\n    vat_rate_on_commission: 0.1\n", wantErr: "commission_percent"},
		{name: "duplicate company", yaml: "profiles:\n  - company_id: a\n    commission_percent: 5\n    prea_percent_of_commission: 3\n    agency_percent_remaining: 50\n    vat_rate_on_commission: 0.1\n  - company_id: a\n", wantErr: "listed twice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfiles([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseProfiles_RejectsInconsistentAgentShare(t *testing.T) {
	data := "profiles:\n  - company_id: a\n    commission_percent: 5\n    prea_percent_of_commission: 3\n    agency_percent_remaining: 50\n    agent_percent_remaining: 45\n    vat_rate_on_commission: 0.1\n"

	_, err := ParseProfiles([]byte(data))

	var cfgErr *domain.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "agentPercentRemaining", cfgErr.Field)
}

func TestLoadProfiles(t *testing.T) {
	settings, err := LoadProfiles("")
	require.NoError(t, err)
	assert.Empty(t, settings)

	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validProfiles), 0o600))
	settings, err = LoadProfiles(path)
	require.NoError(t, err)
	assert.Len(t, settings, 2)

	_, err = LoadProfiles(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestShippedProfilesFile(t *testing.T) {
	settings, err := LoadProfiles(filepath.Join("..", "..", "config", "commission_profiles.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, settings)
}
