package domain

import (
	"math"
	"strconv"
)

// Currency is the display label appended to all formatted amounts.
const Currency = "FCFA"

// FormatPrice renders an amount as an integer with space-separated thousands
// groups and the currency label, e.g. 450000 -> "450 000 FCFA". Fractions
// are rounded to the nearest whole unit; the currency has no subunits in
// practice.
func FormatPrice(amount float64) string {
	n := int64(math.Round(amount))

	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		grouped := make([]byte, 0, len(s)+len(s)/3)
		lead := len(s) % 3
		if lead == 0 {
			lead = 3
		}
		grouped = append(grouped, s[:lead]...)
		for i := lead; i < len(s); i += 3 {
			grouped = append(grouped, ' ')
			grouped = append(grouped, s[i:i+3]...)
		}
		s = string(grouped)
	}

	return sign + s + " " + Currency
}
