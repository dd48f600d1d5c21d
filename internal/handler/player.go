package handler

import (
	"net/http"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/logger"
	"github.com/osse101/CashPoolRPG_Go/internal/player"
)

// RegisterPlayerRequest represents the first-contact call a transport makes
// for every user action.
type RegisterPlayerRequest struct {
	PlayerID    string `json:"player_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	DisplayName string `json:"display_name" validate:"max=100,excludesall=\x00\n\r\t"`
}

// PlayerResponse is the balance summary returned on registration.
type PlayerResponse struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Tokens      int    `json:"tokens"`
	Chests      int    `json:"chests"`
	ItemCount   int    `json:"item_count"`
}

// InventoryEntry is an item in collection order with its 1-based position.
type InventoryEntry struct {
	Position int         `json:"position"`
	Item     domain.Item `json:"item"`
	Equipped bool        `json:"equipped"`
}

// ProfileResponse is the full read view of a player.
type ProfileResponse struct {
	PlayerResponse
	Items      []InventoryEntry             `json:"items"`
	Equipped   map[domain.Slot]*domain.Item `json:"equipped"`
	TotalPower int                          `json:"total_power"`
}

func newPlayerResponse(p *domain.Player) PlayerResponse {
	return PlayerResponse{
		PlayerID:    p.ID,
		DisplayName: p.DisplayName,
		Tokens:      p.Tokens,
		Chests:      p.Chests,
		ItemCount:   len(p.Items),
	}
}

func newProfileResponse(profile *domain.Profile) ProfileResponse {
	p := profile.Player
	equippedIDs := make(map[int]bool, len(p.Equipment))
	for _, id := range p.Equipment {
		equippedIDs[id] = true
	}

	items := make([]InventoryEntry, 0, len(p.Items))
	for i, it := range p.Items {
		items = append(items, InventoryEntry{Position: i + 1, Item: it, Equipped: equippedIDs[it.ID]})
	}

	// Every slot is present so clients can render empty ones.
	equipped := make(map[domain.Slot]*domain.Item, len(domain.AllSlots))
	for _, slot := range domain.AllSlots {
		if it, ok := profile.Equipped[slot]; ok {
			it := it
			equipped[slot] = &it
		} else {
			equipped[slot] = nil
		}
	}

	return ProfileResponse{
		PlayerResponse: newPlayerResponse(p),
		Items:          items,
		Equipped:       equipped,
		TotalPower:     profile.TotalPower,
	}
}

// HandleRegisterPlayer creates a profile on first contact or refreshes the display name.
// @Summary Register player
// @Description Get-or-create a player profile. Idempotent; balances are never reset.
// @Tags players
// @Accept json
// @Produce json
// @Param request body RegisterPlayerRequest true "Player identity"
// @Success 200 {object} PlayerResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /players/register [post]
func HandleRegisterPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpRegisterPlayer); err != nil {
			return
		}

		p, err := svc.Register(r.Context(), req.PlayerID, req.DisplayName)
		if err != nil {
			respondServiceError(w, r, OpRegisterPlayer, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Player registered", "player_id", p.ID)
		respondJSON(w, http.StatusOK, newPlayerResponse(p))
	}
}

// HandleGetProfile returns balances, collection, build and total power.
// @Summary Get profile
// @Tags players
// @Produce json
// @Param player_id query string true "Player identity"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /players/profile [get]
func HandleGetProfile(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		profile, err := svc.GetProfile(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, OpGetProfile, err)
			return
		}

		respondJSON(w, http.StatusOK, newProfileResponse(profile))
	}
}
