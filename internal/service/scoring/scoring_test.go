package scoring

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/octobees/vendor-matching/internal/entity"
	"github.com/octobees/vendor-matching/internal/service/intent"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestScore_BaseOnly(t *testing.T) {
	result := Score(entity.Vendor{Name: "Bare"}, "un photographe à Lyon", nil)
	if result.Total != 60 {
		t.Fatalf("expected base score 60, got %d", result.Total)
	}
	if result.Breakdown[ruleStyle] != 0 || result.Breakdown[ruleBudget] != 0 {
		t.Fatalf("unexpected breakdown: %+v", result.Breakdown)
	}
}

func TestScore_AllSignalsClampTo100(t *testing.T) {
	vendor := entity.Vendor{
		PriceFrom:        intPtr(5000),
		Style:            strPtr("Champêtre, bohème, vintage et romantique"),
		ShortDescription: strPtr(strings.Repeat("a", 101)),
		MainPhotoURL:     strPtr("https://cdn.example.com/cover.jpg"),
		InstagramURL:     strPtr("https://instagram.com/studio"),
	}
	query := "mariage champetre boheme vintage romantique"

	result := Score(vendor, query, &intent.Budget{Max: 15000})
	if result.Total != 100 {
		t.Fatalf("expected clamped score 100, got %d", result.Total)
	}
	if result.Breakdown[ruleStyle] != 60 {
		t.Fatalf("expected four stacked style matches (60), got %d", result.Breakdown[ruleStyle])
	}
	if result.Breakdown[ruleBudget] != 10 || result.Breakdown[ruleMainPhoto] != 5 ||
		result.Breakdown[ruleInstagram] != 5 || result.Breakdown[ruleDescription] != 5 {
		t.Fatalf("unexpected breakdown: %+v", result.Breakdown)
	}
}

func TestScore_StyleNeedsBothSides(t *testing.T) {
	vendor := entity.Vendor{Style: strPtr("Moderne")}
	if got := Score(vendor, "un lieu classique", nil).Total; got != 60 {
		t.Fatalf("expected no style bonus, got %d", got)
	}
	if got := Score(vendor, "un lieu très MODERNE", nil).Total; got != 75 {
		t.Fatalf("expected style bonus 75, got %d", got)
	}
	if got := Score(entity.Vendor{}, "moderne", nil).Total; got != 60 {
		t.Fatalf("expected vendor without style to get no bonus, got %d", got)
	}
}

func TestScore_BudgetFit(t *testing.T) {
	budget := &intent.Budget{Max: 15000}
	cases := []struct {
		price *int
		want  int
	}{
		{intPtr(10000), 70}, // ratio 0.67
		{intPtr(12000), 70}, // ratio 0.8
		{intPtr(14000), 65}, // ratio 0.93
		{intPtr(15000), 65}, // ratio 1.0
		{intPtr(16000), 60},
		{nil, 60},
	}
	for _, tc := range cases {
		got := Score(entity.Vendor{PriceFrom: tc.price}, "", budget).Total
		if got != tc.want {
			t.Fatalf("price %v: expected %d, got %d", tc.price, tc.want, got)
		}
	}
	if got := Score(entity.Vendor{PriceFrom: intPtr(100)}, "", nil).Total; got != 60 {
		t.Fatalf("expected no budget bonus without budget, got %d", got)
	}
}

func TestScore_DescriptionCountsCharacters(t *testing.T) {
	exactly100 := strings.Repeat("é", 100)
	if got := Score(entity.Vendor{ShortDescription: &exactly100}, "", nil).Total; got != 60 {
		t.Fatalf("expected 100 characters to earn nothing, got %d", got)
	}
	longer := exactly100 + "!"
	if got := Score(entity.Vendor{ShortDescription: &longer}, "", nil).Total; got != 65 {
		t.Fatalf("expected description bonus, got %d", got)
	}
}

func TestScore_Deterministic(t *testing.T) {
	vendor := entity.Vendor{PriceFrom: intPtr(9000), Style: strPtr("vintage"), MainPhotoURL: strPtr("x")}
	first := Score(vendor, "style vintage, 15k euros", &intent.Budget{Max: 15000}).Total
	for i := 0; i < 50; i++ {
		if got := Score(vendor, "style vintage, 15k euros", &intent.Budget{Max: 15000}).Total; got != first {
			t.Fatalf("score changed between calls: %d vs %d", first, got)
		}
	}
	if first < 0 || first > 100 {
		t.Fatalf("score out of bounds: %d", first)
	}
}

func TestRank_StableDescending(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	vendors := []entity.Vendor{
		{ID: ids[0], Name: "A"},
		{ID: ids[1], Name: "B", MainPhotoURL: strPtr("x")},
		{ID: ids[2], Name: "C"},
		{ID: ids[3], Name: "D", InstagramURL: strPtr("x")},
	}

	ranked := Rank(vendors, "", nil, 0)
	want := []string{"B", "D", "A", "C"}
	if len(ranked) != len(want) {
		t.Fatalf("expected %d vendors, got %d", len(want), len(ranked))
	}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, ranked[i].Name)
		}
	}
	if ranked[0].MatchScore != 65 || ranked[2].MatchScore != 60 {
		t.Fatalf("unexpected scores: %+v", ranked)
	}
}

func TestRank_Limit(t *testing.T) {
	vendors := make([]entity.Vendor, 12)
	if got := Rank(vendors, "", nil, 8); len(got) != 8 {
		t.Fatalf("expected 8 vendors, got %d", len(got))
	}
	if got := Rank(nil, "", nil, 8); len(got) != 0 {
		t.Fatalf("expected empty ranking, got %d", len(got))
	}
}

func TestRank_BudgetOrdersCheaperFirst(t *testing.T) {
	vendors := []entity.Vendor{
		{Name: "Pricier", PriceFrom: intPtr(14000)},
		{Name: "Cheaper", PriceFrom: intPtr(10000)},
	}
	ranked := Rank(vendors, "traiteur en Île-de-France pour 15k euros", &intent.Budget{Max: 15000}, 10)
	if ranked[0].Name != "Cheaper" || ranked[0].MatchScore != 70 || ranked[1].MatchScore != 65 {
		t.Fatalf("unexpected ranking: %+v", ranked)
	}
}
