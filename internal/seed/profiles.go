// Package seed loads default company commission profiles.
package seed

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

// Profile is one company's default percentages as written in the profiles file.
// Percentages are strings so that values like "15.5" keep their exact decimal form.
type Profile struct {
	CompanyID               string `yaml:"company_id"`
	CommissionPercent       string `yaml:"commission_percent"`
	PREAPercentOfCommission string `yaml:"prea_percent_of_commission"`
	AgencyPercentRemaining  string `yaml:"agency_percent_remaining"`
	AgentPercentRemaining   string `yaml:"agent_percent_remaining,omitempty"`
	VATRateOnCommission     string `yaml:"vat_rate_on_commission"`
}

// File is the layout of the commission profiles YAML file.
type File struct {
	Profiles []Profile `yaml:"profiles"`
}

// LoadProfiles reads and validates the profiles file. An empty path yields no profiles.
func LoadProfiles(path string) ([]domain.CommissionSettings, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read commission profiles: %w", err)
	}
	return ParseProfiles(data)
}

// ParseProfiles decodes profiles YAML into company default settings.
func ParseProfiles(data []byte) ([]domain.CommissionSettings, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("seed: decode commission profiles: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Profiles))
	settings := make([]domain.CommissionSettings, 0, len(file.Profiles))
	for i, p := range file.Profiles {
		if p.CompanyID == "" {
			return nil, fmt.Errorf("seed: profile %d: company_id is required", i)
		}
		if _, dup := seen[p.CompanyID]; dup {
			return nil, fmt.Errorf("seed: profile %d: company %s listed twice", i, p.CompanyID)
		}
		seen[p.CompanyID] = struct{}{}

		cfg, err := p.config()
		if err != nil {
			return nil, fmt.Errorf("seed: profile %d (%s): %w", i, p.CompanyID, err)
		}
		settings = append(settings, domain.CommissionSettings{CompanyID: p.CompanyID, Config: cfg})
	}
	return settings, nil
}

func (p Profile) config() (domain.CommissionConfig, error) {
	commission, err := parseDecimal("commission_percent", p.CommissionPercent)
	if err != nil {
		return domain.CommissionConfig{}, err
	}
	prea, err := parseDecimal("prea_percent_of_commission", p.PREAPercentOfCommission)
	if err != nil {
		return domain.CommissionConfig{}, err
	}
	agency, err := parseDecimal("agency_percent_remaining", p.AgencyPercentRemaining)
	if err != nil {
		return domain.CommissionConfig{}, err
	}
	vatRate, err := parseDecimal("vat_rate_on_commission", p.VATRateOnCommission)
	if err != nil {
		return domain.CommissionConfig{}, err
	}

	var agent *decimal.Decimal
	if p.AgentPercentRemaining != "" {
		v, err := parseDecimal("agent_percent_remaining", p.AgentPercentRemaining)
		if err != nil {
			return domain.CommissionConfig{}, err
		}
		agent = &v
	}
	return domain.NewCommissionConfig(commission, prea, agency, agent, vatRate)
}

func parseDecimal(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("%s is required", field)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}
