package domain

import (
	"github.com/shopspring/decimal"
)

// Currency is one of the supported currency codes. Currency is a display
// label chosen at booking time; amounts are never converted between codes.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyZAR Currency = "ZAR"
	CurrencyNGN Currency = "NGN"
	CurrencyKES Currency = "KES"
	CurrencyGHS Currency = "GHS"
	CurrencyEGP Currency = "EGP"
)

// SupportedCurrencies is the closed whitelist of currencies customers can
// select when booking.
var SupportedCurrencies = []Currency{
	CurrencyUSD, CurrencyZAR, CurrencyNGN, CurrencyKES, CurrencyGHS, CurrencyEGP,
}

// IsValid reports whether the currency is in the supported whitelist.
func (c Currency) IsValid() bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

// Money is a non-negative decimal amount tagged with a currency code.
type Money struct {
	Amount   decimal.Decimal
	Currency Currency
}

// NewMoney creates a Money value.
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// Rounded returns the amount rounded to the currency's minor unit
// (2 decimals) using bankers rounding (half-to-even). Rounding is applied
// once, at the persistence or display boundary, never twice.
func (m Money) Rounded() decimal.Decimal {
	return m.Amount.RoundBank(2)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// String formats the amount to 2 decimals with its currency code.
func (m Money) String() string {
	return string(m.Currency) + " " + m.Rounded().StringFixed(2)
}
