package pets

import (
	"strconv"
	"strings"
)

// FormatAge arma un texto legible a partir de (años, meses):
//
//	(0,0) => ""
//	(1,0) => "1 year old"
//	(0,2) => "2 months old"
//	(6,6) => "6 years 6 months old"
//
// Valores negativos se tratan como 0.
func FormatAge(years, months int) string {
	parts := make([]string, 0, 2)
	if s := ageUnit(years, "year"); s != "" {
		parts = append(parts, s)
	}
	if s := ageUnit(months, "month"); s != "" {
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ") + " old"
}

func ageUnit(n int, unit string) string {
	switch {
	case n <= 0:
		return ""
	case n == 1:
		return strconv.Itoa(n) + " " + unit
	default:
		return strconv.Itoa(n) + " " + unit + "s"
	}
}

// AgeLabel es FormatAge aplicado a la mascota.
func (p Pet) AgeLabel() string {
	return FormatAge(p.AgeYear, p.AgeMonth)
}
