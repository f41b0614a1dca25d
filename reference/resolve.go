package reference

import "strings"

// ResolveStandard returns the code standard governing countryCode (spec.md
// §6), or ErrUnknownCountry if the snapshot carries no entry for it.
func ResolveStandard(snap *Snapshot, countryCode string) (string, error) {
	entry, err := lookup(snap, countryCode)
	if err != nil {
		return "", err
	}
	return entry.Standard, nil
}

// ResolveCurrency returns countryCode's presentation currency.
func ResolveCurrency(snap *Snapshot, countryCode string) (Currency, error) {
	entry, err := lookup(snap, countryCode)
	if err != nil {
		return Currency{}, err
	}
	return entry.Currency, nil
}

// ResolveRates returns countryCode's cost rate table.
func ResolveRates(snap *Snapshot, countryCode string) (RateTable, error) {
	entry, err := lookup(snap, countryCode)
	if err != nil {
		return RateTable{}, err
	}
	return entry.Rates, nil
}

// ResolveRegionalRisk returns countryCode's coarse regional-risk count,
// the figure cost.WidenSensitivity uses to widen the cost band and the
// engine reports in the result's regional context.
func ResolveRegionalRisk(snap *Snapshot, countryCode string) (int, error) {
	entry, err := lookup(snap, countryCode)
	if err != nil {
		return 0, err
	}
	return entry.RiskCount, nil
}

func lookup(snap *Snapshot, countryCode string) (CountryEntry, error) {
	if snap == nil {
		return CountryEntry{}, ErrUnknownCountry
	}
	entry, ok := snap.Countries[strings.ToUpper(countryCode)]
	if !ok {
		return CountryEntry{}, ErrUnknownCountry
	}
	return entry, nil
}
