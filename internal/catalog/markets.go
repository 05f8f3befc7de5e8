package catalog

import "sync"

// DefaultRole is the market role used when no role indicator matches.
const DefaultRole = "software engineer"

// MarketEntry holds static market data for one role.
type MarketEntry struct {
	Role         string   `json:"role"`
	SalaryRange  string   `json:"salary_range"`
	DemandLevel  string   `json:"demand_level"`
	DemandGrowth string   `json:"demand_growth"`
	TopSkills    []string `json:"top_skills"`
	AvgTenure    string   `json:"avg_tenure"`
}

var (
	marketsOnce sync.Once
	markets     map[string]MarketEntry
)

func loadMarkets() {
	var entries []MarketEntry
	mustReadJSON(marketsFile, &entries)
	markets = make(map[string]MarketEntry, len(entries))
	for _, e := range entries {
		markets[e.Role] = e
	}
}

// Market returns the market entry for a lowercase role name.
// Unknown roles resolve to the DefaultRole entry and ok is false.
func Market(role string) (entry MarketEntry, ok bool) {
	marketsOnce.Do(loadMarkets)
	entry, ok = markets[role]
	if !ok {
		entry = markets[DefaultRole]
	}
	entry.TopSkills = append([]string(nil), entry.TopSkills...)
	return entry, ok
}
