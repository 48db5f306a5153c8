// Package model provides parsers that turn raw console/flag input into model values.
package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// HoursScale is the number of fractional digits stored for hour values.
const HoursScale = 2

// Difficulty bounds.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// ParseProjectName parses a required project name.
func ParseProjectName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return "", NewInputError("project name is required")
	}
	return name, nil
}

// ParseHours parses an hour value and scales it to two decimal places,
// rounding half away from zero (12.345 becomes 12.35).
// Blank input returns nil.
func ParseHours(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, NewInputError(fmt.Sprintf("%s is not a valid decimal number.", s))
	}

	h := RoundHours(d)
	return &h, nil
}

// RoundHours scales d to HoursScale fractional digits.
func RoundHours(d decimal.Decimal) decimal.Decimal {
	return d.Round(HoursScale)
}

// ParseInt parses an optional integer. Blank input returns nil.
func ParseInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, NewInputError(fmt.Sprintf("%s is not a valid number.", s))
	}
	return &v, nil
}

// ParseDifficulty parses an optional difficulty between MinDifficulty and MaxDifficulty.
func ParseDifficulty(s string) (*int, error) {
	v, err := ParseInt(s)
	if err != nil || v == nil {
		return nil, err
	}
	if *v < MinDifficulty || *v > MaxDifficulty {
		return nil, NewInputError(fmt.Sprintf("difficulty must be between %d and %d", MinDifficulty, MaxDifficulty))
	}
	return v, nil
}

// ParseProjectID parses a required, positive project ID.
func ParseProjectID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, NewInputError("project ID is required")
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, NewInputError(fmt.Sprintf("%s is not a valid number.", s))
	}
	if id <= 0 {
		return 0, NewInputError("project ID must be a positive integer")
	}
	return id, nil
}

// ParseText parses optional free text. Blank input returns nil.
func ParseText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
