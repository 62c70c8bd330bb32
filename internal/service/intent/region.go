package intent

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Region is one of the 13 metropolitan French regions, spelled the way the
// vendor catalogue stores it.
type Region string

const (
	RegionAuvergneRhoneAlpes     Region = "Auvergne-Rhône-Alpes"
	RegionBourgogneFrancheComte  Region = "Bourgogne-Franche-Comté"
	RegionBretagne               Region = "Bretagne"
	RegionCentreValDeLoire       Region = "Centre-Val de Loire"
	RegionCorse                  Region = "Corse"
	RegionGrandEst               Region = "Grand Est"
	RegionHautsDeFrance          Region = "Hauts-de-France"
	RegionIleDeFrance            Region = "Île-de-France"
	RegionNormandie              Region = "Normandie"
	RegionNouvelleAquitaine      Region = "Nouvelle-Aquitaine"
	RegionOccitanie              Region = "Occitanie"
	RegionPaysDeLaLoire          Region = "Pays de la Loire"
	RegionProvenceAlpesCoteDAzur Region = "Provence-Alpes-Côte d'Azur"
)

type regionAlias struct {
	alias  string
	region Region
}

// cityTable is checked before regionNameTable: "Lyon, pas en Bretagne"
// resolves to Auvergne-Rhône-Alpes.
var cityTable = []regionAlias{
	{"paris", RegionIleDeFrance},
	{"versailles", RegionIleDeFrance},
	{"marseille", RegionProvenceAlpesCoteDAzur},
	{"lyon", RegionAuvergneRhoneAlpes},
	{"toulouse", RegionOccitanie},
	{"nice", RegionProvenceAlpesCoteDAzur},
	{"nantes", RegionPaysDeLaLoire},
	{"montpellier", RegionOccitanie},
	{"strasbourg", RegionGrandEst},
	{"bordeaux", RegionNouvelleAquitaine},
	{"lille", RegionHautsDeFrance},
	{"rennes", RegionBretagne},
	{"reims", RegionGrandEst},
	{"toulon", RegionProvenceAlpesCoteDAzur},
	{"saint-etienne", RegionAuvergneRhoneAlpes},
	{"le havre", RegionNormandie},
	{"grenoble", RegionAuvergneRhoneAlpes},
	{"dijon", RegionBourgogneFrancheComte},
	{"angers", RegionPaysDeLaLoire},
	{"nimes", RegionOccitanie},
	{"clermont-ferrand", RegionAuvergneRhoneAlpes},
	{"aix-en-provence", RegionProvenceAlpesCoteDAzur},
	{"brest", RegionBretagne},
	{"tours", RegionCentreValDeLoire},
	{"amiens", RegionHautsDeFrance},
	{"limoges", RegionNouvelleAquitaine},
	{"annecy", RegionAuvergneRhoneAlpes},
	{"perpignan", RegionOccitanie},
	{"metz", RegionGrandEst},
	{"besancon", RegionBourgogneFrancheComte},
	{"orleans", RegionCentreValDeLoire},
	{"rouen", RegionNormandie},
	{"caen", RegionNormandie},
	{"avignon", RegionProvenceAlpesCoteDAzur},
	{"cannes", RegionProvenceAlpesCoteDAzur},
	{"biarritz", RegionNouvelleAquitaine},
	{"la rochelle", RegionNouvelleAquitaine},
	{"ajaccio", RegionCorse},
	{"bastia", RegionCorse},
}

var regionNameTable = []regionAlias{
	{"auvergne-rhone-alpes", RegionAuvergneRhoneAlpes},
	{"auvergne rhone alpes", RegionAuvergneRhoneAlpes},
	{"rhone-alpes", RegionAuvergneRhoneAlpes},
	{"bourgogne-franche-comte", RegionBourgogneFrancheComte},
	{"bourgogne franche comte", RegionBourgogneFrancheComte},
	{"bourgogne", RegionBourgogneFrancheComte},
	{"bretagne", RegionBretagne},
	{"centre-val de loire", RegionCentreValDeLoire},
	{"centre val de loire", RegionCentreValDeLoire},
	{"corse", RegionCorse},
	{"grand est", RegionGrandEst},
	{"grand-est", RegionGrandEst},
	{"alsace", RegionGrandEst},
	{"hauts-de-france", RegionHautsDeFrance},
	{"hauts de france", RegionHautsDeFrance},
	{"ile-de-france", RegionIleDeFrance},
	{"ile de france", RegionIleDeFrance},
	{"normandie", RegionNormandie},
	{"nouvelle-aquitaine", RegionNouvelleAquitaine},
	{"nouvelle aquitaine", RegionNouvelleAquitaine},
	{"occitanie", RegionOccitanie},
	{"pays de la loire", RegionPaysDeLaLoire},
	{"provence-alpes-cote d'azur", RegionProvenceAlpesCoteDAzur},
	{"provence alpes cote d'azur", RegionProvenceAlpesCoteDAzur},
	{"cote d'azur", RegionProvenceAlpesCoteDAzur},
	{"provence", RegionProvenceAlpesCoteDAzur},
	{"paca", RegionProvenceAlpesCoteDAzur},
}

// wordStartAliases only count at the start of a word, so "retours" and
// "dangers" do not name Tours or Angers. The end of the word is not checked:
// "corse" still matches "corset" and the adjective "corsé".
var wordStartAliases = map[string]bool{
	"tours":  true,
	"angers": true,
	"corse":  true,
}

var canonicalRegions = []Region{
	RegionAuvergneRhoneAlpes,
	RegionBourgogneFrancheComte,
	RegionBretagne,
	RegionCentreValDeLoire,
	RegionCorse,
	RegionGrandEst,
	RegionHautsDeFrance,
	RegionIleDeFrance,
	RegionNormandie,
	RegionNouvelleAquitaine,
	RegionOccitanie,
	RegionPaysDeLaLoire,
	RegionProvenceAlpesCoteDAzur,
}

// ExtractRegion resolves the normalized text to a region, trying city names
// first and region names second.
func ExtractRegion(normalized string) (Region, bool) {
	if normalized == "" {
		return "", false
	}
	if region, ok := firstAlias(normalized, cityTable); ok {
		return region, true
	}
	return firstAlias(normalized, regionNameTable)
}

// Regions lists the canonical regions in alphabetical order.
func Regions() []Region {
	return append([]Region(nil), canonicalRegions...)
}

// ParseRegion accepts only canonical region labels.
func ParseRegion(value string) (Region, bool) {
	for _, region := range canonicalRegions {
		if string(region) == value {
			return region, true
		}
	}
	return "", false
}

func firstAlias(normalized string, table []regionAlias) (Region, bool) {
	for _, entry := range table {
		if containsAlias(normalized, entry.alias) {
			return entry.region, true
		}
	}
	return "", false
}

func containsAlias(text, alias string) bool {
	if !wordStartAliases[alias] {
		return strings.Contains(text, alias)
	}
	for offset := 0; offset < len(text); {
		i := strings.Index(text[offset:], alias)
		if i < 0 {
			return false
		}
		pos := offset + i
		if pos == 0 {
			return true
		}
		if r, _ := utf8.DecodeLastRuneInString(text[:pos]); !unicode.IsLetter(r) {
			return true
		}
		offset = pos + 1
	}
	return false
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
