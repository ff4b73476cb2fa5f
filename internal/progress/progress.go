// Package progress tracks the export state machine and renders it for
// humans. The reporter is advisory: export logic never branches on it and a
// no-op implementation can be substituted without affecting correctness.
package progress

// State describes where an export run currently is.
type State string

const (
	StateInitializing   State = "Initializing"
	StateDownloading    State = "Downloading images"
	StateProcessing     State = "Processing images"
	StateLayingOut      State = "Laying out pages"
	StateSavingDocument State = "Saving document"
	StateDone           State = "Done"
)

// Valid reports whether s is one of the known export states.
func (s State) Valid() bool {
	switch s {
	case StateInitializing, StateDownloading, StateProcessing,
		StateLayingOut, StateSavingDocument, StateDone:
		return true
	}
	return false
}

// Reporter receives advisory progress events during an export run.
// Implementations must not block and must tolerate being called from
// multiple goroutines.
type Reporter interface {
	SetState(s State)
	TickDownload()
	TickProcess()
}

// Noop is a Reporter that discards everything. Used by tests.
type Noop struct{}

func (Noop) SetState(State) {}
func (Noop) TickDownload()  {}
func (Noop) TickProcess()   {}
