package reference

// RateTable mirrors cost.Rates' fields without importing package cost,
// keeping reference a leaf dependency any other package (including cost
// itself) can sit on top of without an import cycle.
type RateTable struct {
	SteelPerTon          float64 `yaml:"steel_per_ton"`
	ConcretePerM3        float64 `yaml:"concrete_per_m3"`
	ErectionBasePerTower float64 `yaml:"erection_base_per_tower"`
	LandPerM2            float64 `yaml:"land_per_m2"`
	CorridorPerKM        float64 `yaml:"corridor_per_km"`
}

// CountryEntry is one row of the snapshot's country table.
type CountryEntry struct {
	Standard  string    `yaml:"standard"`
	Currency  Currency  `yaml:"currency"`
	Rates     RateTable `yaml:"rates"`
	RiskCount int       `yaml:"risk_count"`
}

// Currency is the presentation tuple for a country's rate table.
type Currency struct {
	Code   string `yaml:"code"`
	Symbol string `yaml:"symbol"`
	Label  string `yaml:"label"`
}

// Snapshot is the full regional reference-data table, keyed by ISO-3166-1
// alpha-2 country code.
type Snapshot struct {
	Countries map[string]CountryEntry `yaml:"countries"`
}

// DefaultSnapshot returns the built-in reference table this module ships
// with (spec.md §6). It covers a representative spread of voltage
// classes and design-code regions; callers needing a country absent here
// supply their own snapshot via LoadSnapshot.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		Countries: map[string]CountryEntry{
			"NP": {
				Standard:  "IS",
				Currency:  Currency{Code: "NPR", Symbol: "रु", Label: "Nepalese Rupee"},
				Rates:     RateTable{SteelPerTon: 115000, ConcretePerM3: 7800, ErectionBasePerTower: 420000, LandPerM2: 90, CorridorPerKM: 150000},
				RiskCount: 2,
			},
			"IN": {
				Standard:  "IS",
				Currency:  Currency{Code: "INR", Symbol: "₹", Label: "Indian Rupee"},
				Rates:     RateTable{SteelPerTon: 120000, ConcretePerM3: 8500, ErectionBasePerTower: 500000, LandPerM2: 150, CorridorPerKM: 200000},
				RiskCount: 1,
			},
			"DE": {
				Standard:  "EUROCODE",
				Currency:  Currency{Code: "EUR", Symbol: "€", Label: "Euro"},
				Rates:     RateTable{SteelPerTon: 980, ConcretePerM3: 140, ErectionBasePerTower: 8200, LandPerM2: 22, CorridorPerKM: 3200},
				RiskCount: 0,
			},
			"FR": {
				Standard:  "EUROCODE",
				Currency:  Currency{Code: "EUR", Symbol: "€", Label: "Euro"},
				Rates:     RateTable{SteelPerTon: 950, ConcretePerM3: 135, ErectionBasePerTower: 7800, LandPerM2: 25, CorridorPerKM: 3000},
				RiskCount: 0,
			},
			"US": {
				Standard:  "ASCE",
				Currency:  Currency{Code: "USD", Symbol: "$", Label: "US Dollar"},
				Rates:     RateTable{SteelPerTon: 1050, ConcretePerM3: 160, ErectionBasePerTower: 9500, LandPerM2: 18, CorridorPerKM: 2800},
				RiskCount: 1,
			},
			"ZA": {
				Standard:  "IEC",
				Currency:  Currency{Code: "ZAR", Symbol: "R", Label: "South African Rand"},
				Rates:     RateTable{SteelPerTon: 16500, ConcretePerM3: 2100, ErectionBasePerTower: 140000, LandPerM2: 480, CorridorPerKM: 55000},
				RiskCount: 3,
			},
			"BR": {
				Standard:  "IEC",
				Currency:  Currency{Code: "BRL", Symbol: "R$", Label: "Brazilian Real"},
				Rates:     RateTable{SteelPerTon: 5200, ConcretePerM3: 650, ErectionBasePerTower: 48000, LandPerM2: 140, CorridorPerKM: 18000},
				RiskCount: 2,
			},
		},
	}
}
