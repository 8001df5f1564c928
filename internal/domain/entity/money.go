package entity

import "math"

// Monetary amounts are held as int64 cents internally and only converted to
// decimals at the JSON edges.

// Cents converts a decimal amount to cents.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Decimal converts a cent amount to its decimal representation.
func Decimal(cents int64) float64 {
	return float64(cents) / 100
}
