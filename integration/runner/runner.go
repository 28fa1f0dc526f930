package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anthill-game/anthill/internal/handlers"
	"github.com/anthill-game/anthill/pkg/state"
)

type ErrorHandlingMode string

const ErrorHandlingExit ErrorHandlingMode = "exit"
const ErrorHandlingContinue ErrorHandlingMode = "continue"

// Runner executes integration tests against a running API
type Runner struct {
	BaseURL           string
	Client            *http.Client
	Timeout           time.Duration
	Logger            func(format string, args ...interface{})
	ErrorHandlingMode ErrorHandlingMode
	SeedOverride      uint64 // If nonzero, overrides the seed for all test cases
}

// NewRunner creates a new test runner
func NewRunner(baseURL string) *Runner {
	return &Runner{
		BaseURL:           strings.TrimSuffix(baseURL, "/"),
		Client:            &http.Client{Timeout: 60 * time.Second},
		Timeout:           30 * time.Second,
		ErrorHandlingMode: ErrorHandlingContinue,
	}
}

func (r *Runner) logf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger(format, args...)
	}
}

// LoadTestSuite loads a test suite from a JSON file
func LoadTestSuite(filename string) (TestSuite, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return TestSuite{}, fmt.Errorf("failed to read test file %s: %w", filename, err)
	}

	var suite TestSuite
	if err := json.Unmarshal(content, &suite); err != nil {
		return TestSuite{}, fmt.Errorf("failed to parse JSON in %s: %w", filename, err)
	}

	return suite, nil
}

// LoadTestSuiteWithExpansion loads a test suite and expands it if it's a sequence
// Returns a list of actual test suites (expanded from the sequence if needed)
func LoadTestSuiteWithExpansion(filename string, casesDir string) ([]TestJob, error) {
	suite, err := LoadTestSuite(filename)
	if err != nil {
		return nil, err
	}

	// If this is not a sequence, return it as-is
	if !suite.IsSequence() {
		return []TestJob{{
			Name:     suite.Name,
			Suite:    suite,
			CaseFile: filename,
		}}, nil
	}

	// This is a sequence - load all referenced cases
	var jobs []TestJob
	for _, caseFile := range suite.Cases {
		casePath := filepath.Join(casesDir, caseFile)

		// Recursively load (in case a sequence references another sequence)
		subJobs, err := LoadTestSuiteWithExpansion(casePath, casesDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load case '%s' referenced by sequence '%s': %w", caseFile, suite.Name, err)
		}

		jobs = append(jobs, subJobs...)
	}

	return jobs, nil
}

// RunSuite executes a complete test suite against a fresh session
func (r *Runner) RunSuite(ctx context.Context, suite TestSuite) (TestRunResult, error) {
	start := time.Now()
	result := TestRunResult{
		Job: TestJob{
			Name:  suite.Name,
			Suite: suite,
		},
		Results: make([]TestResult, 0, len(suite.Steps)),
	}

	seed := suite.Seed
	if r.SeedOverride != 0 {
		seed = r.SeedOverride
	}

	sessionID, err := r.createSession(ctx, seed, suite.Debug)
	if err != nil {
		result.Error = fmt.Errorf("failed to create session: %w", err)
		result.Duration = time.Since(start)
		return result, result.Error
	}
	result.Session = sessionID
	defer func() {
		if err := r.deleteSession(context.Background(), sessionID); err != nil {
			r.logf("    cleanup failed for session %s: %v", sessionID, err)
		}
	}()

	lastRound := 0

	// Execute each test step
	for i, step := range suite.Steps {
		r.logf("    [%d/%d] Running step: %s", i+1, len(suite.Steps), step.Name)

		if step.Restart {
			newID, err := r.restartSession(ctx, sessionID, seed, suite.Debug)
			stepResult := TestResult{StepName: step.Name, Success: err == nil, Error: err, IsRestart: true}
			result.Results = append(result.Results, stepResult)
			if err != nil {
				result.Error = fmt.Errorf("step %d (%s) failed to restart session: %w", i, step.Name, err)
				break
			}
			sessionID = newID
			result.Session = newID
			lastRound = 0
			r.logf("    [%d/%d] ✓ %s (session restarted)", i+1, len(suite.Steps), step.Name)
			continue
		}

		stepResult := r.runStep(ctx, sessionID, step)
		result.Results = append(result.Results, stepResult)

		if stepResult.Error != nil {
			r.logf("    [%d/%d] ✗ %s: %v", i+1, len(suite.Steps), step.Name, stepResult.Error)
			if result.Error == nil {
				result.Error = fmt.Errorf("step %d (%s) failed: %w", i, step.Name, stepResult.Error)
			}
			// Break only if error handling mode is "exit"
			if r.ErrorHandlingMode == ErrorHandlingExit {
				break
			}
			continue
		}

		r.logf("    [%d/%d] ✓ %s (%v)", i+1, len(suite.Steps), step.Name, stepResult.Duration)
		if stepResult.Round >= 0 {
			lastRound = stepResult.Round
		}
	}

	// The stored snapshot must agree with the last action response.
	if result.Error == nil && len(suite.Steps) > 0 {
		snapshot, err := r.getSession(ctx, sessionID)
		if err != nil {
			result.Error = fmt.Errorf("failed to read back session: %w", err)
		} else if snapshot.Round != lastRound {
			result.Error = fmt.Errorf("stored snapshot is at round %d, last action response said %d", snapshot.Round, lastRound)
		}
	}

	result.Duration = time.Since(start)
	return result, result.Error
}

// runStep posts a single action and checks the step's expectations
func (r *Runner) runStep(ctx context.Context, sessionID uuid.UUID, step TestStep) TestResult {
	start := time.Now()
	result := TestResult{StepName: step.Name, Round: -1}

	stepCtx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	status, body, err := r.postAction(stepCtx, sessionID, step.Action)
	if err != nil {
		result.Error = err
		result.Duration = time.Since(start)
		return result
	}

	wantStatus := http.StatusOK
	if step.Expect.Status != nil {
		wantStatus = *step.Expect.Status
	}
	if status != wantStatus {
		result.Error = fmt.Errorf("expected status %d, got %d: %s", wantStatus, status, firstLine(body))
		result.Duration = time.Since(start)
		return result
	}

	// Non-200 responses carry an error envelope instead of a snapshot.
	if status == http.StatusOK {
		var ar handlers.ActionResponse
		if err := json.Unmarshal(body, &ar); err != nil {
			result.Error = fmt.Errorf("failed to decode action response: %w", err)
			result.Duration = time.Since(start)
			return result
		}
		result.Events = ar.Events
		result.Round = ar.Round
		result.Error = checkExpectations(step.Expect, ar)
	}

	result.Success = result.Error == nil
	result.Duration = time.Since(start)
	return result
}

func checkExpectations(expect Expectations, ar handlers.ActionResponse) error {
	if expect.Reason != nil && string(ar.Reason) != *expect.Reason {
		return fmt.Errorf("expected reason %q, got %q", *expect.Reason, ar.Reason)
	}
	if expect.Round != nil && ar.Round != *expect.Round {
		return fmt.Errorf("expected round %d, got %d", *expect.Round, ar.Round)
	}
	if expect.Depth != nil && ar.Depth != *expect.Depth {
		return fmt.Errorf("expected depth %d, got %d", *expect.Depth, ar.Depth)
	}
	if expect.GameOver != nil && ar.GameOver != *expect.GameOver {
		return fmt.Errorf("expected game_over %v, got %v", *expect.GameOver, ar.GameOver)
	}

	all := eventText(ar.Events)
	for _, want := range expect.EventsContain {
		if !strings.Contains(all, want) {
			return fmt.Errorf("expected events to contain %q, got: %s", want, all)
		}
	}
	for _, not := range expect.EventsNotContain {
		if strings.Contains(all, not) {
			return fmt.Errorf("expected events not to contain %q, got: %s", not, all)
		}
	}
	if expect.EventsRegex != "" {
		re, err := regexp.Compile(expect.EventsRegex)
		if err != nil {
			return fmt.Errorf("invalid events_regex %q: %w", expect.EventsRegex, err)
		}
		if !re.MatchString(all) {
			return fmt.Errorf("expected events to match %q, got: %s", expect.EventsRegex, all)
		}
	}
	return nil
}

func eventText(events []state.Event) string {
	texts := make([]string, len(events))
	for i, e := range events {
		texts[i] = e.Text
	}
	return strings.Join(texts, " | ")
}

// createSession creates a new session via POST /v1/sessions
func (r *Runner) createSession(ctx context.Context, seed uint64, debug bool) (uuid.UUID, error) {
	createBody, err := json.Marshal(handlers.CreateSessionRequest{Seed: seed, ShowDebug: debug})
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to marshal create request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.BaseURL+"/v1/sessions", bytes.NewReader(createBody))
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to create POST request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to create session: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return uuid.UUID{}, fmt.Errorf("create session returned %d: %s", resp.StatusCode, firstLine(body))
	}

	var created handlers.SessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to decode created session: %w", err)
	}
	return created.ID, nil
}

// restartSession deletes the session and opens a fresh one with the same
// seed, which replays the deterministic world from round zero.
func (r *Runner) restartSession(ctx context.Context, sessionID uuid.UUID, seed uint64, debug bool) (uuid.UUID, error) {
	if err := r.deleteSession(ctx, sessionID); err != nil {
		return uuid.UUID{}, err
	}
	return r.createSession(ctx, seed, debug)
}

func (r *Runner) postAction(ctx context.Context, sessionID uuid.UUID, action state.Action) (int, []byte, error) {
	actionBody, err := json.Marshal(action)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal action: %w", err)
	}

	url := fmt.Sprintf("%s/v1/sessions/%s/actions", r.BaseURL, sessionID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(actionBody))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create POST request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to post action: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read action response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func (r *Runner) getSession(ctx context.Context, sessionID uuid.UUID) (handlers.SessionResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", r.BaseURL+"/v1/sessions/"+sessionID.String(), nil)
	if err != nil {
		return handlers.SessionResponse{}, fmt.Errorf("failed to create GET request: %w", err)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return handlers.SessionResponse{}, fmt.Errorf("failed to get session: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return handlers.SessionResponse{}, fmt.Errorf("get session returned %d: %s", resp.StatusCode, firstLine(body))
	}

	var snapshot handlers.SessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return handlers.SessionResponse{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return snapshot, nil
}

func (r *Runner) deleteSession(ctx context.Context, sessionID uuid.UUID) error {
	req, err := http.NewRequestWithContext(ctx, "DELETE", r.BaseURL+"/v1/sessions/"+sessionID.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create DELETE request: %w", err)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete session returned %d: %s", resp.StatusCode, firstLine(body))
	}
	return nil
}

func firstLine(body []byte) string {
	s := strings.TrimSpace(string(body))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
