package handler

import (
	"net/http"

	"github.com/osse101/CashPoolRPG_Go/internal/logger"
	"github.com/osse101/CashPoolRPG_Go/internal/tournament"
)

// JoinRequest takes a seat at the tournament table.
type JoinRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
}

// ResolveRequest closes the table. CallerID must belong to an administrator.
type ResolveRequest struct {
	CallerID string `json:"caller_id" validate:"required,max=64"`
	WinnerID string `json:"winner_id" validate:"required,max=64"`
}

// AdminCheck reports whether an identity may run privileged commands.
type AdminCheck func(playerID string) bool

// HandleJoinTournament appends the caller to the queue.
// @Summary Join tournament
// @Tags tournament
// @Accept json
// @Produce json
// @Param request body JoinRequest true "Player identity"
// @Success 200 {object} domain.JoinResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already queued or table full"
// @Failure 500 {object} ErrorResponse
// @Router /tournament/join [post]
func HandleJoinTournament(svc tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req JoinRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpJoinTournament); err != nil {
			return
		}

		result, err := svc.Join(r.Context(), req.PlayerID)
		if err != nil {
			respondServiceError(w, r, OpJoinTournament, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleTournamentStatus returns the roster in join order.
// @Summary Tournament status
// @Tags tournament
// @Produce json
// @Success 200 {object} domain.QueueStatus
// @Failure 500 {object} ErrorResponse
// @Router /tournament [get]
func HandleTournamentStatus(svc tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := svc.Status(r.Context())
		if err != nil {
			respondServiceError(w, r, OpQueueStatus, err)
			return
		}

		respondJSON(w, http.StatusOK, status)
	}
}

// HandleResolveTournament awards chests and clears the queue.
// @Summary Resolve tournament
// @Description Administrators only. Every participant receives a chest and the winner one more.
// @Tags tournament
// @Accept json
// @Produce json
// @Param request body ResolveRequest true "Caller and winner identities"
// @Success 200 {object} domain.Settlement
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Winner not queued"
// @Failure 409 {object} ErrorResponse "Queue empty"
// @Failure 500 {object} ErrorResponse
// @Router /tournament/resolve [post]
func HandleResolveTournament(svc tournament.Service, isAdmin AdminCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResolveRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpResolve); err != nil {
			return
		}

		if isAdmin == nil || !isAdmin(req.CallerID) {
			logger.FromContext(r.Context()).Warn("Resolve attempted by non-admin", "caller_id", req.CallerID)
			respondError(w, http.StatusForbidden, ErrCodeUnauthorized, ErrMsgNotAdmin)
			return
		}

		settlement, err := svc.Resolve(r.Context(), req.WinnerID)
		if err != nil {
			respondServiceError(w, r, OpResolve, err)
			return
		}

		respondJSON(w, http.StatusOK, settlement)
	}
}
