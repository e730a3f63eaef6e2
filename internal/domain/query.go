package domain

import (
	"fmt"
	"strings"
	"time"
)

// Query identifies a shipment by House B/L number and B/L year.
type Query struct {
	HBL  string `json:"hbl"`
	Year string `json:"year"`
}

// ResolveYear returns year unchanged, or the 4-digit year of now when year is blank.
func ResolveYear(year string, now time.Time) string {
	y := strings.TrimSpace(year)
	if y != "" {
		return y
	}
	return fmt.Sprintf("%04d", now.Year())
}

// NewQuery trims the inputs, applies the year default and validates the H B/L.
func NewQuery(hbl, year string, now time.Time) (Query, error) {
	q := Query{
		HBL:  strings.TrimSpace(hbl),
		Year: ResolveYear(year, now),
	}
	if q.HBL == "" {
		return Query{}, UsageError("H B/L is required (use --hbl or -b)")
	}
	if !isYear(q.Year) {
		return Query{}, UsageError(fmt.Sprintf("year must be 4 digits, got %q", q.Year))
	}
	return q, nil
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
