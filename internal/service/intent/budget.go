package intent

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// budgetPattern captures "15000 euros", "15 000 €", "15k€", "1,5k euros".
// Grouped thousands ("15 000", "15.000") are tried before plain digits.
var budgetPattern = regexp.MustCompile(`(?i)(\d{1,3}(?:[ .\x{00A0}\x{202F}]\d{3})+|\d+(?:[.,]\d+)?)\s*k?\s*(?:euros?|€)`)

// maxBudget bounds parsed amounts so the int conversion never overflows.
const maxBudget = math.MaxInt32

// Budget is an upper spending bound in whole euros.
type Budget struct {
	Max int `json:"max"`
}

// ExtractBudget pulls the first euro amount out of free text. Amounts up to
// 1000 are read as thousands ("15k euros" -> 15000), larger ones literally.
func ExtractBudget(raw string) *Budget {
	match := budgetPattern.FindStringSubmatch(raw)
	if len(match) < 2 {
		return nil
	}

	value, ok := parseAmount(match[1])
	if !ok {
		return nil
	}
	if value <= 1000 {
		value *= 1000
	}
	if value > maxBudget {
		return nil
	}

	amount := int(math.Round(value))
	if amount <= 0 {
		return nil
	}
	return &Budget{Max: amount}
}

func parseAmount(raw string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f':
			return -1
		}
		return r
	}, raw)

	// "15.000" is a grouped thousand, "1.5" and "1,5" are decimals.
	if groupedThousands(cleaned) {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func groupedThousands(value string) bool {
	parts := strings.Split(value, ".")
	if len(parts) < 2 || len(parts[0]) > 3 {
		return false
	}
	for _, part := range parts[1:] {
		if len(part) != 3 {
			return false
		}
	}
	return true
}
