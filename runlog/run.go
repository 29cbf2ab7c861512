package runlog

import (
	"io"
	"log"

	"github.com/google/uuid"
)

// Run is a single Generator invocation's logging handle: every line it
// emits carries the same run id, and Summary prints the one required
// end-of-run summary line.
type Run struct {
	id     string
	logger *log.Logger
}

// New returns a Run writing to w, tagged with a fresh random run id.
func New(w io.Writer) *Run {
	return &Run{
		id:     uuid.NewString(),
		logger: log.New(w, "", log.LstdFlags),
	}
}

// ID returns the run's UUID.
func (r *Run) ID() string {
	return r.id
}

// Infof logs a progress line prefixed with the run id.
func (r *Run) Infof(format string, args ...interface{}) {
	r.logger.Printf("run_id=%s "+format, append([]interface{}{r.id}, args...)...)
}

// Contradiction logs a recovered Contradiction: the phase it occurred in and
// the error returned by the propagator. The engine does not backtrack — this
// is the only record of the event.
func (r *Run) Contradiction(phase string, err error) {
	r.logger.Printf("run_id=%s phase=%s contradiction: %v", r.id, phase, err)
}

// Summary prints the single required end-of-run line reporting how many
// stubs are still open and whether every cell collapsed.
func (r *Run) Summary(openStubsRemaining int, allCollapsed bool) {
	r.logger.Printf("open_stubs_remaining=%d all_collapsed=%t run_id=%s", openStubsRemaining, allCollapsed, r.id)
}
