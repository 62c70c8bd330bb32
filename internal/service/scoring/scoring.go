package scoring

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/octobees/vendor-matching/internal/entity"
	"github.com/octobees/vendor-matching/internal/service/intent"
)

const (
	ruleBase        = "base"
	ruleStyle       = "style_match"
	ruleBudget      = "budget_fit"
	ruleMainPhoto   = "main_photo"
	ruleInstagram   = "instagram"
	ruleDescription = "description"
)

const (
	baseScore          = 60
	styleBonus         = 15
	comfortableBudget  = 10
	withinBudget       = 5
	mediaBonus         = 5
	descriptionBonus   = 5
	descriptionMinimum = 100
	maxScore           = 100
)

// styleKeywords are compared against both the query and the vendor style
// after normalization.
var styleKeywords = []string{
	"champetre",
	"moderne",
	"classique",
	"boheme",
	"vintage",
	"romantique",
}

// Result reports the clamped total and the points granted by each rule.
type Result struct {
	Total     int
	Breakdown map[string]int
}

// ScoredVendor pairs a catalogue record with its relevance for one query.
type ScoredVendor struct {
	entity.Vendor
	MatchScore int `json:"match_score"`
}

// Score evaluates how well the vendor fits the raw query and optional budget.
// The result only depends on its arguments.
func Score(vendor entity.Vendor, rawQuery string, budget *intent.Budget) Result {
	breakdown := map[string]int{
		ruleBase:        baseScore,
		ruleStyle:       scoreStyle(vendor, intent.Normalize(rawQuery)),
		ruleBudget:      scoreBudget(vendor, budget),
		ruleMainPhoto:   0,
		ruleInstagram:   0,
		ruleDescription: scoreDescription(vendor),
	}
	if vendor.HasMainPhoto() {
		breakdown[ruleMainPhoto] = mediaBonus
	}
	if vendor.HasInstagram() {
		breakdown[ruleInstagram] = mediaBonus
	}

	total := 0
	for _, value := range breakdown {
		total += value
	}

	return Result{
		Total:     clamp(total, 0, maxScore),
		Breakdown: breakdown,
	}
}

// Rank scores every candidate and orders them by descending score. Vendors
// with equal scores keep the order the store returned them in. A positive
// limit truncates the output.
func Rank(vendors []entity.Vendor, rawQuery string, budget *intent.Budget, limit int) []ScoredVendor {
	scored := make([]ScoredVendor, 0, len(vendors))
	for _, v := range vendors {
		scored = append(scored, ScoredVendor{Vendor: v, MatchScore: Score(v, rawQuery, budget).Total})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

func scoreStyle(vendor entity.Vendor, normalizedQuery string) int {
	if vendor.Style == nil || normalizedQuery == "" {
		return 0
	}
	style := intent.Normalize(*vendor.Style)

	score := 0
	for _, kw := range styleKeywords {
		if strings.Contains(normalizedQuery, kw) && strings.Contains(style, kw) {
			score += styleBonus
		}
	}
	return score
}

func scoreBudget(vendor entity.Vendor, budget *intent.Budget) int {
	if budget == nil || budget.Max <= 0 || vendor.PriceFrom == nil {
		return 0
	}

	ratio := float64(*vendor.PriceFrom) / float64(budget.Max)
	switch {
	case ratio <= 0.8:
		return comfortableBudget
	case ratio <= 1.0:
		return withinBudget
	default:
		return 0
	}
}

func scoreDescription(vendor entity.Vendor) int {
	if vendor.ShortDescription == nil {
		return 0
	}
	if utf8.RuneCountInString(*vendor.ShortDescription) > descriptionMinimum {
		return descriptionBonus
	}
	return 0
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
