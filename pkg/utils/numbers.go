package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseDecimal reads the longest leading decimal literal of s, ignoring
// leading whitespace and any trailing garbage ("12.5usd" -> 12.5).
func ParseDecimal(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := scanDecimal(s)
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseInteger reads the leading base-10 integer of s ("3 copies" -> 3)
func ParseInteger(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, false
	}
	v, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return v, true
}

func scanDecimal(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > exp {
			i = j
		}
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// LooseNumber accepts a JSON number or a numeric string
type LooseNumber struct {
	Raw string
}

func (n *LooseNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n.Raw = s
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected number or numeric string: %w", err)
	}
	n.Raw = num.String()
	return nil
}

func (n LooseNumber) MarshalJSON() ([]byte, error) {
	if v, ok := n.Float(); ok {
		return json.Marshal(v)
	}
	return json.Marshal(n.Raw)
}

// Float parses the number with ParseDecimal
func (n LooseNumber) Float() (float64, bool) {
	return ParseDecimal(n.Raw)
}

// Int parses the number with ParseInteger
func (n LooseNumber) Int() (int, bool) {
	return ParseInteger(n.Raw)
}

// Number builds a LooseNumber from a float
func Number(v float64) LooseNumber {
	return LooseNumber{Raw: strconv.FormatFloat(v, 'f', -1, 64)}
}
