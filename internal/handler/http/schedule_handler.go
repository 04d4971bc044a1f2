package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jadavison91/gametime/internal/models"
	"github.com/jadavison91/gametime/internal/service"
	"github.com/jadavison91/gametime/internal/teams"
)

const defaultLimit = 4

// ScheduleHandler handles HTTP requests from the external refresh
// scheduler and the companion app.
type ScheduleHandler struct {
	service *service.ScheduleService
	teams   *teams.Store
	logger  zerolog.Logger
}

// NewScheduleHandler creates a new schedule HTTP handler.
func NewScheduleHandler(svc *service.ScheduleService, teamStore *teams.Store, logger zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: svc,
		teams:   teamStore,
		logger:  logger.With().Str("component", "schedule_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux.
func (h *ScheduleHandler) RegisterRoutes(mux *http.ServeMux) {
	// GET /api/v1/schedule?limit=N&refresh=true - current display payload
	mux.HandleFunc("/api/v1/schedule", h.handleSchedule)

	// GET/PUT /api/v1/teams - followed-team selection
	mux.HandleFunc("/api/v1/teams", h.handleTeams)

	// POST /api/v1/cache/clear - wipe every cache tier
	mux.HandleFunc("/api/v1/cache/clear", h.handleCacheClear)
}

// handleSchedule handles GET /api/v1/schedule.
func (h *ScheduleHandler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	requestID := uuid.NewString()
	w.Header().Set("X-Request-ID", requestID)
	logger := h.logger.With().Str("request_id", requestID).Logger()

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.errorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}
	forceRefresh := r.URL.Query().Get("refresh") == "true"

	followed, err := h.teams.Followed(r.Context())
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load followed teams, treating as empty")
	}

	sched := h.service.Schedule(r.Context(), followed, forceRefresh, limit)

	logger.Debug().
		Int("games", len(sched.Games)).
		Int("limit", limit).
		Bool("refresh", forceRefresh).
		Str("error_code", string(sched.Error)).
		Msg("served schedule")

	h.jsonResponse(w, http.StatusOK, sched)
}

// handleTeams handles GET and PUT /api/v1/teams.
func (h *ScheduleHandler) handleTeams(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		followed, err := h.teams.Followed(r.Context())
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to load followed teams")
			h.errorResponse(w, http.StatusInternalServerError, "failed to load followed teams")
			return
		}
		if followed == nil {
			followed = []models.Team{}
		}
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{
			"count": len(followed),
			"teams": followed,
		})

	case http.MethodPut:
		var selection []models.Team
		if err := json.NewDecoder(r.Body).Decode(&selection); err != nil {
			h.errorResponse(w, http.StatusBadRequest, "invalid team list")
			return
		}

		for i, t := range selection {
			if t.Abbreviation == "" || t.League == "" {
				h.errorResponse(w, http.StatusBadRequest, "abbreviation and league are required for every team")
				return
			}
			if t.Sport == "" {
				sport, ok := teams.SportForLeague(t.League)
				if !ok {
					h.errorResponse(w, http.StatusBadRequest, "unknown league: "+t.League)
					return
				}
				selection[i].Sport = sport
			}
		}

		if err := h.teams.SetFollowed(r.Context(), selection); err != nil {
			h.logger.Error().Err(err).Msg("failed to save followed teams")
			h.errorResponse(w, http.StatusInternalServerError, "failed to save followed teams")
			return
		}
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{"count": len(selection)})

	default:
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleCacheClear handles POST /api/v1/cache/clear.
func (h *ScheduleHandler) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	h.service.ClearCache(r.Context())
	h.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// jsonResponse writes a JSON response.
func (h *ScheduleHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response.
func (h *ScheduleHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
