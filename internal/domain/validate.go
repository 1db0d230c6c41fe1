package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Reusable field rules shared by the entity Validate methods. Each rule is
// plugged into ozzo's validation.By so a single ValidateStruct pass collects
// every violated field into one aggregated error.

var (
	errPriceNotPositive = errors.New("must be greater than zero")
	errDateInPast       = errors.New("must be in the future")
)

func positivePrice(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok || !price.GreaterThan(decimal.Zero) {
		return errPriceNotPositive
	}

	return nil
}

func futureDate(value interface{}) error {
	date, ok := value.(time.Time)
	if !ok || !date.After(time.Now()) {
		return errDateInPast
	}

	return nil
}

// SameDay reports whether two instants fall on the same calendar day
// in the local timezone.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}
