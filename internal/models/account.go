package models

import (
	"github.com/shopspring/decimal"
)

// AccountSnapshot is one entry of the caller-supplied account list. It is
// read-only input: nothing about it is persisted or mutated.
type AccountSnapshot struct {
	ID       string  `json:"id"`
	Balance  Balance `json:"balance"`
	Currency string  `json:"currency"`
}

// Balance is a lenient JSON number. Callers may send any JSON value in the
// balance slot; anything that is not a number is carried as invalid instead of
// failing the whole request, so the funds check can reject it with its own
// status code. Invalid balances marshal as null.
type Balance struct {
	Decimal decimal.Decimal
	Valid   bool
}

func NewBalance(d decimal.Decimal) Balance {
	return Balance{Decimal: d, Valid: true}
}

func NewBalanceFromInt(v int64) Balance {
	return NewBalance(decimal.NewFromInt(v))
}

func (b *Balance) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		*b = Balance{}
		return nil
	}
	*b = Balance{Decimal: d, Valid: true}
	return nil
}

// MarshalJSON renders the balance unquoted, the same representation
// the caller sent it with.
func (b Balance) MarshalJSON() ([]byte, error) {
	if !b.Valid {
		return []byte("null"), nil
	}
	return []byte(b.Decimal.String()), nil
}

func (b Balance) String() string {
	if !b.Valid {
		return "null"
	}
	return b.Decimal.String()
}
