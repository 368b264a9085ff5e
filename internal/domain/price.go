package domain

import "fmt"

// Price is an immutable amount in whole euro units.
type Price struct {
	value int
}

// Euro creates a Price of value whole euros. The value is not validated.
func Euro(value int) Price {
	return Price{value: value}
}

// Value returns the amount in whole euros.
func (p Price) Value() int { return p.value }

// Equal reports whether other is a Price with the same value.
// Nil and non-Price values are never equal.
func (p Price) Equal(other any) bool {
	switch o := other.(type) {
	case Price:
		return p.value == o.value
	case *Price:
		return o != nil && p.value == o.value
	default:
		return false
	}
}

func (p Price) String() string {
	return fmt.Sprintf("€%d", p.value)
}
