package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TierName is one of the closed set of service tier names.
type TierName string

const (
	TierNormal  TierName = "Normal"
	TierPremium TierName = "Premium"
	TierVIP     TierName = "VIP"
)

// IsValid reports whether the tier name is in the enumerated set.
func (n TierName) IsValid() bool {
	switch n {
	case TierNormal, TierPremium, TierVIP:
		return true
	}
	return false
}

// ServiceTier is a catalog entry for a detailing package. It is immutable
// reference data: created and updated by an administrator, read-only to
// pricing logic. BasePrice is currency-less; the customer's currency is
// attached at booking time.
type ServiceTier struct {
	ID          string
	Name        TierName
	Description string
	BasePrice   decimal.Decimal
	Features    []string
	CreatedAt   time.Time
}
