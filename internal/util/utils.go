package util

import (
	"strconv"

	"github.com/Skotchmaster/storefront/internal/domain"
)

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// ParseID parses a positive numeric path parameter. what names the resource in the error message.
func ParseID(s, what string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return 0, domain.E(domain.ErrValidation, "Invalid %s id", what)
	}
	return uint(v), nil
}
