package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/anthill-game/anthill/internal/storage"
	"github.com/anthill-game/anthill/pkg/actor"
	"github.com/anthill-game/anthill/pkg/item"
	"github.com/anthill-game/anthill/pkg/level"
	"github.com/anthill-game/anthill/pkg/state"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// SessionHandler manages play sessions. The def catalogs and the town
// level are loaded once at startup and shared by every session.
type SessionHandler struct {
	storage  storage.Storage
	logger   *slog.Logger
	itemDefs item.DefSet
	npcDefs  actor.NPCDefSet
	town     level.Data
}

func NewSessionHandler(logger *slog.Logger, storage storage.Storage, itemDefs item.DefSet, npcDefs actor.NPCDefSet, town level.Data) *SessionHandler {
	return &SessionHandler{
		storage:  storage,
		logger:   logger,
		itemDefs: itemDefs,
		npcDefs:  npcDefs,
		town:     town,
	}
}

// CreateSessionRequest defines the request body for creating a session.
// A zero seed lets the engine draw one from entropy.
type CreateSessionRequest struct {
	Seed      uint64 `json:"seed,omitempty"`
	ShowDebug bool   `json:"show_debug,omitempty"`
}

// SessionResponse is the client-facing snapshot of a session.
type SessionResponse struct {
	ID       uuid.UUID     `json:"id"`
	Seed     uint64        `json:"seed"`
	Round    int           `json:"round"`
	Depth    int           `json:"depth"`
	GameOver bool          `json:"game_over"`
	View     state.View    `json:"view"`
	Events   []state.Event `json:"events"`
}

// ActionResponse reports how one action resolved. Reason is empty when
// the action was permitted; Events holds only the log entries the
// action produced.
type ActionResponse struct {
	SessionResponse
	Reason state.FailReason `json:"reason,omitempty"`
}

func newSessionResponse(gs *state.GameState, events []state.Event) SessionResponse {
	return SessionResponse{
		ID:       gs.ID,
		Seed:     gs.Seed,
		Round:    gs.Round,
		Depth:    gs.Depth,
		GameOver: gs.GameOver,
		View:     gs.Render(),
		Events:   events,
	}
}

// ServeHTTP handles HTTP requests for session operations
// Routes:
// POST /v1/sessions                - Create new session
// GET /v1/sessions/{id}            - Read session snapshot by ID
// DELETE /v1/sessions/{id}         - Delete session by ID
// POST /v1/sessions/{id}/actions   - Resolve one player action
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/sessions"), "/")

	if path == "" {
		if r.Method != http.MethodPost {
			h.logger.Warn("Method not allowed for session collection", "method", r.Method)
			w.WriteHeader(http.StatusMethodNotAllowed)
			response := ErrorResponse{
				Error: "Method not allowed. Supported methods: POST",
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				h.logger.Error("Failed to encode error response", "error", err)
			}
			return
		}
		h.handleCreate(w, r)
		return
	}

	parts := strings.Split(path, "/")
	sessionID, err := uuid.Parse(parts[0])
	if err != nil {
		h.logger.Warn("Invalid session ID", "id", parts[0], "error", err)
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "Invalid session ID format",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	if len(parts) == 2 && parts[1] == "actions" {
		if r.Method != http.MethodPost {
			h.logger.Warn("Method not allowed for actions endpoint", "method", r.Method)
			w.WriteHeader(http.StatusMethodNotAllowed)
			response := ErrorResponse{
				Error: "Method not allowed. Supported methods: POST",
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				h.logger.Error("Failed to encode error response", "error", err)
			}
			return
		}
		h.handleAction(w, r, sessionID)
		return
	}

	if len(parts) > 1 {
		w.WriteHeader(http.StatusNotFound)
		response := ErrorResponse{
			Error: "Not found",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleRead(w, r, sessionID)

	case http.MethodDelete:
		h.handleDelete(w, r, sessionID)

	default:
		h.logger.Warn("Method not allowed for session endpoint", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		response := ErrorResponse{
			Error: "Method not allowed. Supported methods: GET, DELETE",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
	}
}

func (h *SessionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Creating new session")

	// An empty body means a fresh session with a random seed
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "Invalid JSON in request body",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	gs, err := state.NewGameState(state.Config{
		Seed:      req.Seed,
		ItemDefs:  h.itemDefs,
		NPCDefs:   h.npcDefs,
		Town:      h.town,
		ShowDebug: req.ShowDebug,
	})
	if err != nil {
		h.logger.Error("Failed to create session", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to create session",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	if err := h.storage.SaveSession(r.Context(), gs.ID, gs); err != nil {
		h.logger.Error("Failed to save new session", "error", err, "id", gs.ID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to create session",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	h.logger.Debug("Session created successfully", "id", gs.ID.String(), "seed", gs.Seed)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(newSessionResponse(gs, gs.Log.Visible())); err != nil {
		h.logger.Error("Failed to encode session response", "error", err)
	}
}

func (h *SessionHandler) handleRead(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) {
	gs, err := h.storage.LoadSession(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("Failed to load session", "error", err, "id", sessionID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to load session",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	if gs == nil {
		h.logger.Warn("Session not found", "id", sessionID.String())
		w.WriteHeader(http.StatusNotFound)
		response := ErrorResponse{
			Error: "Session not found",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(newSessionResponse(gs, gs.Log.Visible())); err != nil {
		h.logger.Error("Failed to encode session response", "error", err)
	}
}

func (h *SessionHandler) handleAction(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) {
	gs, err := h.storage.LoadSession(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("Failed to load session for action", "error", err, "id", sessionID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to load session",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	if gs == nil {
		h.logger.Warn("Session not found for action", "id", sessionID.String())
		w.WriteHeader(http.StatusNotFound)
		response := ErrorResponse{
			Error: "Session not found",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}
	gs.WithDefs(h.itemDefs, h.npcDefs)

	var action state.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		h.logger.Warn("Invalid JSON in action request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "Invalid JSON in request body",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	mark := gs.Log.Total
	out, err := gs.Resolve(action)
	if err != nil {
		// Resolve errors mean the session was handed an impossible
		// request. The pre-action snapshot stays untouched in storage.
		h.logger.Warn("Action rejected", "error", err, "id", sessionID.String(), "action", action.Kind)
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "Invalid action: " + err.Error(),
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	if err := h.storage.SaveSession(r.Context(), sessionID, gs); err != nil {
		h.logger.Error("Failed to save session after action", "error", err, "id", sessionID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to save session",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	h.logger.Debug("Action resolved", "id", sessionID.String(), "action", action.Kind, "reason", out.Reason, "round", gs.Round)
	w.WriteHeader(http.StatusOK)
	response := ActionResponse{
		SessionResponse: newSessionResponse(gs, gs.Log.Since(mark)),
		Reason:          out.Reason,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode action response", "error", err)
	}
}

func (h *SessionHandler) handleDelete(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) {
	if err := h.storage.DeleteSession(r.Context(), sessionID); err != nil {
		h.logger.Error("Failed to delete session", "error", err, "id", sessionID.String())
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to delete session",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}
	h.logger.Debug("Session deleted successfully", "id", sessionID.String())
	w.WriteHeader(http.StatusNoContent)
}
