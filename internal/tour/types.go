package tour

// Step records one edge-selection decision made while building a tour.
// PathSoFar is the visit order up to and including From, copied at the
// moment the step was taken; consumers treat it as read-only.
type Step struct {
	From      int     `json:"from"`
	To        int     `json:"to"`
	PathSoFar []int   `json:"path_so_far"`
	Cost      float64 `json:"cost"`
}

// Result is a finished tour. Path has length n+1 with the start city
// repeated at the end; Steps has length n (n-1 expansions plus the
// closing edge), or zero for a single-city instance.
type Result struct {
	TotalCost float64 `json:"total_cost"`
	Path      []int   `json:"path"`
	Steps     []Step  `json:"steps"`
}

// PrefixCost sums the step costs for indices <= k. It is the single
// source of the cumulative cost shown during replay: recomputing from the
// trace keeps the displayed value reproducible without a running
// accumulator.
func PrefixCost(steps []Step, k int) float64 {
	total := 0.0
	for i := 0; i <= k && i < len(steps); i++ {
		total += steps[i].Cost
	}
	return total
}
