package discussion

import (
	"github.com/Iron-Ham/parley/internal/llm"
	"github.com/Iron-Ham/parley/internal/store"
)

// Status represents the current state of a discussion session.
type Status string

const (
	// StatusPending indicates the session is constructed but no round has run.
	StatusPending Status = "pending"

	// StatusRunning indicates rounds are being executed.
	StatusRunning Status = "running"

	// StatusConverged indicates the average agreement reached the threshold.
	StatusConverged Status = "converged"

	// StatusExhausted indicates all rounds ran without convergence.
	// This is a non-error terminal state: the discussion simply ran out
	// of rounds.
	StatusExhausted Status = "exhausted"
)

// Participant is one configured model bound to a completion backend and
// a private response store. Participants are fixed for the lifetime of a
// session; none may join or leave mid-run.
type Participant struct {
	Name     string
	Provider llm.Provider
	Store    *store.ResponseStore
}

// Result summarizes a completed discussion run.
type Result struct {
	Status  Status
	Rounds  int     // rounds actually executed
	Average float64 // average agreement after the final round
	Folder  string  // session folder holding the per-model stores
}
