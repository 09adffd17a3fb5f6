package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrConfiguration is the sentinel every ConfigurationError unwraps to.
	ErrConfiguration = errors.New("invalid commission configuration")
	// ErrReconciliation is the sentinel every ReconciliationError unwraps to.
	ErrReconciliation = errors.New("commission allocation does not reconcile")
)

// ConfigurationError reports an input or percentage that is out of range.
// It is raised before any allocation is produced.
type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s=%q %s", ErrConfiguration.Error(), e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// ReconciliationCheck names the pair of values compared by the validator.
type ReconciliationCheck string

const (
	CheckSharesVsTotal     ReconciliationCheck = "shares_vs_total_commission"
	CheckAllocationVsGross ReconciliationCheck = "allocation_vs_gross"
)

// ReconciliationError reports a computed allocation that does not add up within tolerance.
type ReconciliationError struct {
	Check    ReconciliationCheck
	Expected decimal.Decimal
	Actual   decimal.Decimal
	Delta    decimal.Decimal
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("%s: %s expected %s got %s (delta %s)",
		ErrReconciliation.Error(), e.Check, e.Expected.StringFixed(2), e.Actual.StringFixed(2), e.Delta.String())
}

func (e *ReconciliationError) Unwrap() error {
	return ErrReconciliation
}
