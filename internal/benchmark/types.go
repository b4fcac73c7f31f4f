package benchmark

// Record represents a single benchmark result as emitted by a harness run.
// Fields absent from the input default to their zero values.
type Record struct {
	Scenario  string             `json:"scenario"`
	Impl      string             `json:"impl"`
	Target    string             `json:"target"`
	NsPerIter float64            `json:"ns_per_iter"`
	TotalSecs float64            `json:"total_secs"`
	Iters     int64              `json:"iters"`
	Meta      map[string]float64 `json:"meta,omitempty"` // harness extras, never printed
}

// Pair identifies an implementation/target combination within a scenario.
type Pair struct {
	Impl   string
	Target string
}

func (p Pair) String() string {
	return p.Impl + "/" + p.Target
}
