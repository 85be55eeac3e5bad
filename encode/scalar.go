package encode

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// plainNumber reports the value of a plain scalar which reads as a number.
func plainNumber(s string) (decimal.Decimal, bool) {
	if d, err := decimal.NewFromString(s); err == nil {
		return d, true
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return decimal.NewFromInt(i), true
	}
	return decimal.Decimal{}, false
}

func plainBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func plainNull(s string) bool {
	switch s {
	case "~", "null", "Null", "NULL":
		return true
	}
	return false
}

func plainSpecialFloat(s string) bool {
	switch strings.ToLower(s) {
	case ".inf", "+.inf", "-.inf", ".nan":
		return true
	}
	return false
}
