package doctor

// Status classifies the outcome of a single check.
type Status int

const (
	// StatusOK means the check passed.
	StatusOK Status = iota
	// StatusWarn means something is off but installation would still work.
	StatusWarn
	// StatusFail means installation cannot succeed in this state.
	StatusFail
	// StatusSkip means the check did not apply.
	StatusSkip
)

// Result is the outcome of one diagnostic check.
type Result struct {
	Status  Status
	Message string   // one line, e.g. "git 2.47.1 on PATH"
	Hint    string   // optional follow-up guidance
	Details []string // optional detail lines (hook listing, suggestions)
}

// Report collects the results of a doctor run.
type Report struct {
	Results []Result
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
}

// Failures returns the number of failed checks.
func (r *Report) Failures() int {
	return r.count(StatusFail)
}

// Warnings returns the number of checks that raised a warning.
func (r *Report) Warnings() int {
	return r.count(StatusWarn)
}

func (r *Report) count(st Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == st {
			n++
		}
	}
	return n
}
