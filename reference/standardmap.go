package reference

import "strings"

// euCountryCodes lists the EU-27 ISO-3166-1 alpha-2 codes the governing
// standard fallback treats as Eurocode territory.
var euCountryCodes = map[string]bool{
	"AT": true, "BE": true, "BG": true, "HR": true, "CY": true, "CZ": true,
	"DK": true, "EE": true, "FI": true, "FR": true, "DE": true, "GR": true,
	"HU": true, "IE": true, "IT": true, "LV": true, "LT": true, "LU": true,
	"MT": true, "NL": true, "PL": true, "PT": true, "RO": true, "SK": true,
	"SI": true, "ES": true, "SE": true,
}

// GoverningStandard resolves countryCode to its governing code standard
// (spec.md §6): a snapshot entry wins when present; otherwise the fixed
// lookup applies (IN -> IS, US|CA|MX -> ASCE, EU-27 -> EUROCODE,
// everything else, including an empty/unresolved code, -> IEC). This is a
// plain lookup, never a heuristic.
func GoverningStandard(snap *Snapshot, countryCode string) string {
	code := strings.ToUpper(countryCode)
	if snap != nil {
		if entry, ok := snap.Countries[code]; ok {
			return entry.Standard
		}
	}
	switch {
	case code == "IN":
		return "IS"
	case code == "US" || code == "CA" || code == "MX":
		return "ASCE"
	case euCountryCodes[code]:
		return "EUROCODE"
	default:
		return "IEC"
	}
}
