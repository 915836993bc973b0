package search

// Monitor provides hooks to observe a worker's progress through its states.
// Implement this interface to track admissions, search outcomes, and
// completions; all hooks may be called from concurrent workers.
type Monitor interface {
	// Waiting fires before the worker requests an admission permit.
	Waiting(req Request)
	// Admitted fires once a permit has been obtained.
	Admitted(req Request)
	// Searched fires after the catalog scan and ranking, with the number
	// of collected matches.
	Searched(req Request, matches int)
	// Reported fires after the report block has been emitted.
	Reported(req Request)
	// Done fires as the worker terminates, on every exit path that follows
	// a successful admission.
	Done(req Request)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Waiting(_ Request)         {}
func (n *noopMonitor) Admitted(_ Request)        {}
func (n *noopMonitor) Searched(_ Request, _ int) {}
func (n *noopMonitor) Reported(_ Request)        {}
func (n *noopMonitor) Done(_ Request)            {}
