package report

// Sink serializes formatted report blocks across concurrent producers.
type Sink interface {
	// Emit appends one fully-formed, multi-line report block to the shared
	// output. Concurrent calls never interleave lines from different
	// blocks.
	Emit(block string) error
}
