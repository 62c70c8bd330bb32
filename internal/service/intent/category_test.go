package intent

import "testing"

func TestDetectCategory(t *testing.T) {
	cases := []struct {
		message string
		want    Category
		found   bool
	}{
		{"Je cherche un photographe", CategoryPhotographer, true},
		{"un traiteur pour 120 personnes", CategoryCaterer, true},
		{"Un château pour la réception", CategoryVenue, true},
		{"il nous faut un DJ", CategoryDJ, true},
		{"bouquet de la mariée", CategoryFlorist, true},
		{"une wedding planner sur Lyon", CategoryWeddingPlanner, true},
		{"chignon bohème", CategoryHairdresser, true},
		{"maquilleuse à domicile", CategoryMakeup, true},
		{"Robe de mariée sur mesure", CategoryBridalGown, true},
		{"un smoking bleu nuit", CategorySuit, true},
		{"pièce montée aux choux", CategoryPastry, true},
		{"décoratrice de table", CategoryDecorator, true},
		{"un magicien pour les enfants", CategoryEntertainment, true},
		{"un vidéaste drone", CategoryVideographer, true},
		{"coordinatrice le jour J", CategoryCoordination, true},
		{"un décor floral sur mesure", CategoryFlorist, true},
		{"le décor de la salle", CategoryVenue, true},
		{"un décor champêtre", CategoryDecorator, true},
		{"organisation du jour-J", CategoryCoordination, true},
		{"bonjour", "", false},
		{"Bonjour je voudrais de l'aide", "", false},
		{"Bonjour je voudrais de l'aide pour mon mariage", "", false},
		{"Je veux découvrir vos prestataires", "", false},
		{"un mariage décontracté", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := DetectCategory(Normalize(tc.message))
		if ok != tc.found || got != tc.want {
			t.Fatalf("DetectCategory(%q)=(%q,%v), want (%q,%v)", tc.message, got, ok, tc.want, tc.found)
		}
	}
}

func TestDetectCategory_FirstDeclaredWins(t *testing.T) {
	messages := []string{
		"traiteur et photographe",
		"photographe et traiteur",
		"un vidéaste, un traiteur et un photographe",
	}
	for _, msg := range messages {
		got, ok := DetectCategory(Normalize(msg))
		if !ok || got != CategoryPhotographer {
			t.Fatalf("DetectCategory(%q)=%q, want %q", msg, got, CategoryPhotographer)
		}
	}

	got, _ := DetectCategory(Normalize("fleuriste puis coiffure"))
	if got != CategoryFlorist {
		t.Fatalf("expected Fleuriste declared before Coiffure, got %q", got)
	}
}

func TestCategoryKeywordsAreNormalized(t *testing.T) {
	for _, entry := range categoryTable {
		for _, kw := range entry.keywords {
			if Normalize(kw) != kw {
				t.Fatalf("keyword %q of %q is not normalized", kw, entry.category)
			}
		}
	}
}

func TestParseCategory(t *testing.T) {
	if got, ok := ParseCategory("Lieu de réception"); !ok || got != CategoryVenue {
		t.Fatalf("expected canonical venue label to parse, got %q", got)
	}
	if _, ok := ParseCategory("photographe"); ok {
		t.Fatalf("expected lowercase label to be rejected")
	}
	if len(Categories()) != 15 || Categories()[0] != CategoryPhotographer {
		t.Fatalf("unexpected category listing: %v", Categories())
	}
}
