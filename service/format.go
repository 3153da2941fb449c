package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders amount with Indian digit grouping: the last three
// integer digits form one group and the rest are grouped in pairs, so
// 10000000 becomes 1,00,00,000. At most three fraction digits are kept.
func FormatCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(3)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	intPart, frac, _ := strings.Cut(d.String(), ".")
	grouped := groupIndian(intPart)
	if frac != "" {
		return sign + grouped + "." + frac
	}
	return sign + grouped
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var b strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}
