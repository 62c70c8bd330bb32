package intent

// Category is the canonical label of a vendor category as stored in the
// vendor catalogue.
type Category string

const (
	CategoryPhotographer   Category = "Photographe"
	CategoryCaterer        Category = "Traiteur"
	CategoryVenue          Category = "Lieu de réception"
	CategoryDJ             Category = "DJ"
	CategoryFlorist        Category = "Fleuriste"
	CategoryWeddingPlanner Category = "Wedding planner"
	CategoryHairdresser    Category = "Coiffure"
	CategoryMakeup         Category = "Maquillage"
	CategoryBridalGown     Category = "Robe de mariée"
	CategorySuit           Category = "Costume"
	CategoryPastry         Category = "Pâtissier"
	CategoryDecorator      Category = "Décorateur"
	CategoryEntertainment  Category = "Animation"
	CategoryVideographer   Category = "Vidéaste"
	CategoryCoordination   Category = "Coordination"
)

type categoryKeywords struct {
	category Category
	keywords []string
}

// categoryTable is scanned top to bottom and the first hit wins, so a message
// mentioning both "traiteur" and "photographe" resolves to Photographe.
// Keywords are stored normalized.
var categoryTable = []categoryKeywords{
	{CategoryPhotographer, []string{"photographe", "photographie", "photo", "shooting"}},
	{CategoryCaterer, []string{"traiteur", "repas", "buffet", "cocktail", "menu", "diner"}},
	{CategoryVenue, []string{"lieu de reception", "reception", "salle", "domaine", "chateau"}},
	{CategoryDJ, []string{"dj", "disc jockey", "musique", "sono"}},
	{CategoryFlorist, []string{"fleuriste", "fleur", "bouquet", "floral"}},
	{CategoryWeddingPlanner, []string{"wedding planner", "weddingplanner", "planner", "organisatrice", "organisateur"}},
	{CategoryHairdresser, []string{"coiffure", "coiffeur", "coiffeuse", "chignon", "cheveux"}},
	{CategoryMakeup, []string{"maquillage", "maquilleuse", "maquilleur", "make-up", "makeup"}},
	{CategoryBridalGown, []string{"robe de mariee", "robe"}},
	{CategorySuit, []string{"costume", "smoking", "tenue du marie"}},
	{CategoryPastry, []string{"patissier", "patisserie", "gateau", "wedding cake", "piece montee"}},
	{CategoryDecorator, []string{"decorateur", "decoratrice", "decoration", "decor"}},
	{CategoryEntertainment, []string{"animation", "animateur", "magicien", "spectacle"}},
	{CategoryVideographer, []string{"videaste", "video", "film"}},
	{CategoryCoordination, []string{"coordination", "coordinatrice", "coordinateur", "le jour j", "jour-j"}},
}

// DetectCategory returns the first category whose keywords appear in the
// normalized text.
func DetectCategory(normalized string) (Category, bool) {
	if normalized == "" {
		return "", false
	}
	for _, entry := range categoryTable {
		if containsAny(normalized, entry.keywords) {
			return entry.category, true
		}
	}
	return "", false
}

// Categories lists every category in detection order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryTable))
	for _, entry := range categoryTable {
		out = append(out, entry.category)
	}
	return out
}

// ParseCategory accepts only canonical category labels.
func ParseCategory(value string) (Category, bool) {
	for _, entry := range categoryTable {
		if string(entry.category) == value {
			return entry.category, true
		}
	}
	return "", false
}
