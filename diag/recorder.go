package diag

import (
	"sync"

	"github.com/wippyai/vk-validation/errors"
)

// Recorder captures every report. AbortOn makes it request blocking for the
// given severities, emulating a callback that returns true.
type Recorder struct {
	AbortOn errors.Severity

	mu      sync.Mutex
	reports []Report
}

// Report implements Sink.
func (r *Recorder) Report(rep Report) bool {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
	return rep.Severity&r.AbortOn != 0
}

// Reports returns a copy of the captured reports.
func (r *Recorder) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Codes returns the codes of the captured reports in order.
func (r *Recorder) Codes() []errors.Code {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]errors.Code, len(r.reports))
	for i, rep := range r.reports {
		out[i] = rep.Code
	}
	return out
}

// Count returns how many captured reports carry code.
func (r *Recorder) Count(code errors.Code) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rep := range r.reports {
		if rep.Code == code {
			n++
		}
	}
	return n
}

// Blocking returns the captured reports with error severity.
func (r *Recorder) Blocking() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Report
	for _, rep := range r.reports {
		if rep.Severity&errors.SeverityError != 0 {
			out = append(out, rep)
		}
	}
	return out
}

// Reset drops the captured reports.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.reports = nil
	r.mu.Unlock()
}
