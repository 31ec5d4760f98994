package utils

import (
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 250

	// MaxPage keeps (page-1)*MaxLimit inside a 32 bit offset
	MaxPage = math.MaxInt32 / MaxLimit
)

// ClampPage parses a page query value; anything missing or below 1 becomes 1
// and anything past MaxPage becomes MaxPage
func ClampPage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange && raw[0] != '-' {
			return MaxPage
		}
		return DefaultPage
	}
	if page < 1 {
		return DefaultPage
	}
	if page > MaxPage {
		return MaxPage
	}
	return page
}

// ClampLimit parses a limit query value, defaulting to 50 and capping at 250
func ClampLimit(raw string) int {
	return ClampLimitWithDefault(raw, DefaultLimit)
}

// ClampLimitWithDefault is ClampLimit with a caller supplied default
func ClampLimitWithDefault(raw string, def int) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return def
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Normalize applies the same bounds to already parsed values
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}
