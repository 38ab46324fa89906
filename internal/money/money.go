package money

import (
	"strconv"
	"strings"
)

// Naira formats a whole-naira amount like "₦185,000". Prices in the catalog
// carry no minor units.
func Naira(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.Itoa(amount)
	if len(s) <= 3 {
		if neg {
			return "-₦" + s
		}
		return "₦" + s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 4)
	if neg {
		b.WriteString("-₦")
	} else {
		b.WriteString("₦")
	}

	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
