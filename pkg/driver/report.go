package driver

import (
	"github.com/arthur-debert/lazysetup/pkg/install"
)

// Result is the final state of one unit
type Result struct {
	Unit     install.Unit
	Name     string
	State    install.State
	Attempts int
	Reason   string
	Err      error
}

// Report aggregates results in input order
type Report struct {
	Results   []Result
	Succeeded int
	Skipped   int
	Failed    int
	Pending   int
}

func newReport(results []Result) *Report {
	r := &Report{Results: results}
	for _, res := range results {
		switch res.State {
		case install.StateSucceeded:
			r.Succeeded++
		case install.StateSkipped:
			r.Skipped++
		case install.StateFailed:
			r.Failed++
		default:
			r.Pending++
		}
	}
	return r
}

// Total is the number of units in the run
func (r *Report) Total() int {
	return len(r.Results)
}

// Unfinished counts units that never reached a terminal state
func (r *Report) Unfinished() int {
	return r.Pending
}

// OK reports whether every unit succeeded or was skipped
func (r *Report) OK() bool {
	return r.Failed == 0 && r.Pending == 0
}

// ByName returns the result for the target name, if present
func (r *Report) ByName(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return Result{}, false
}
