package runner

import (
	"time"

	"github.com/google/uuid"

	"github.com/anthill-game/anthill/pkg/state"
)

// TestSuite defines a complete integration test scenario.
// Can either be a regular test with Steps, or a suite that references other Cases
type TestSuite struct {
	Name  string     `json:"name"`
	Seed  uint64     `json:"seed,omitempty"`  // world seed; the engine is deterministic per seed
	Debug bool       `json:"debug,omitempty"` // surface debug events in responses
	Steps []TestStep `json:"steps,omitempty"` // Used for regular tests
	Cases []string   `json:"cases,omitempty"` // Used for suite tests (list of case files)
}

// IsSequence returns true if this is a suite that sequences other cases
func (ts *TestSuite) IsSequence() bool {
	return len(ts.Cases) > 0
}

// TestStep defines a single action and its expected outcomes.
// Set "restart": true to tear the session down and reopen it with the
// same seed, which replays the world from round zero.
type TestStep struct {
	Name    string       `json:"name,omitempty"`
	Action  state.Action `json:"action,omitempty"`
	Restart bool         `json:"restart,omitempty"`
	Expect  Expectations `json:"expect,omitempty"`
}

// Expectations defines what to check after a test step executes. Nil
// fields are not checked.
type Expectations struct {
	Status   *int    `json:"status,omitempty"` // HTTP status; defaults to 200
	Round    *int    `json:"round,omitempty"`
	Depth    *int    `json:"depth,omitempty"`
	GameOver *bool   `json:"game_over,omitempty"`
	Reason   *string `json:"reason,omitempty"` // "" requires the action to succeed

	// Event analysis, against the step's returned events
	EventsContain    []string `json:"events_contain,omitempty"`
	EventsNotContain []string `json:"events_not_contain,omitempty"`
	EventsRegex      string   `json:"events_regex,omitempty"`
}

// TestResult contains the outcome of running a test step
type TestResult struct {
	TestName  string
	StepName  string
	Success   bool
	Error     error
	Duration  time.Duration
	Events    []state.Event
	Round     int  // round reported by a 200 response; -1 otherwise
	IsRestart bool // restart steps should not count toward pass/fail metrics
}

// TestJob represents a test suite to be executed
type TestJob struct {
	Name     string
	Suite    TestSuite
	CaseFile string
}

// TestRunResult contains the results of running an entire test suite
type TestRunResult struct {
	Job      TestJob
	Results  []TestResult
	Error    error
	Duration time.Duration
	Session  uuid.UUID // ID of the session used for this test
}
