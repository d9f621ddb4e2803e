package geo

import (
	"strings"

	"github.com/Khantushig-web/Real-estate-Unegui/internal/models"
)

// districtKeyword maps one location-text marker to its canonical district.
// Scanning is in declared order and the first match wins, so native-script
// names, transliterations and abbreviations for the same district stay
// grouped together.
type districtKeyword struct {
	Keyword  string
	District models.District
}

var districtKeywords = []districtKeyword{
	{"Сүхбаатар", models.DistrictSukhbaatar},
	{"Sukhbaatar", models.DistrictSukhbaatar},
	{"СХД", models.DistrictSukhbaatar},
	{"Хан-Уул", models.DistrictKhanUul},
	{"Khan-Uul", models.DistrictKhanUul},
	{"ХУД", models.DistrictKhanUul},
	{"Чингэлтэй", models.DistrictChingeltei},
	{"Chingeltei", models.DistrictChingeltei},
	{"ЧД", models.DistrictChingeltei},
	{"Баянзүрх", models.DistrictBayanzurkh},
	{"Bayanzurkh", models.DistrictBayanzurkh},
	{"БЗД", models.DistrictBayanzurkh},
	{"Сонгинохайрхан", models.DistrictSonginoKhairkhan},
	{"Songino Khairkhan", models.DistrictSonginoKhairkhan},
	{"Баянгол", models.DistrictBayangol},
	{"Bayangol", models.DistrictBayangol},
	{"БГД", models.DistrictBayangol},
}

// DistrictFromLocation classifies a free-text location against the keyword
// table. No match returns Unknown.
func DistrictFromLocation(location string) models.District {
	for _, dk := range districtKeywords {
		if strings.Contains(location, dk.Keyword) {
			return dk.District
		}
	}
	return models.DistrictUnknown
}
