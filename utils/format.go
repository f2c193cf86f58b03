package utils

import (
	"fmt"
	"strings"
)

// FormatAmount renders a currency amount with thousands separators,
// e.g. 1500 -> "1,500". Fractional pennies are dropped.
func FormatAmount(amount float64) string {
	if amount < 0 {
		amount = 0
	}
	s := fmt.Sprintf("%d", int64(amount))
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
