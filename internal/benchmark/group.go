package benchmark

import "sort"

// Scenarios returns the distinct scenario names across records in
// lexicographic order. A missing scenario field groups under "".
func Scenarios(records []Record) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range records {
		if !seen[r.Scenario] {
			seen[r.Scenario] = true
			names = append(names, r.Scenario)
		}
	}
	sort.Strings(names)
	return names
}

// GroupByScenario partitions records by scenario name, preserving the
// original load order within each group.
func GroupByScenario(records []Record) map[string][]Record {
	groups := make(map[string][]Record)
	for _, r := range records {
		groups[r.Scenario] = append(groups[r.Scenario], r)
	}
	return groups
}

// PairLookup indexes records by (impl, target). Duplicates overwrite in
// load order: the last record wins.
func PairLookup(records []Record) map[Pair]Record {
	lookup := make(map[Pair]Record)
	for _, r := range records {
		lookup[Pair{Impl: r.Impl, Target: r.Target}] = r
	}
	return lookup
}
