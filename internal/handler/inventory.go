package handler

import (
	"net/http"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/inventory"
	"github.com/osse101/CashPoolRPG_Go/internal/logger"
)

// OpenChestRequest spends one chest.
type OpenChestRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
}

// EquipRequest equips the item at a 1-based inventory position.
type EquipRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Position int    `json:"position" validate:"min=1"`
}

// UnequipRequest empties a slot.
type UnequipRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Slot     string `json:"slot" validate:"required,slot"`
}

// UnequipResponse names the item that left the slot.
type UnequipResponse struct {
	Slot domain.Slot `json:"slot"`
	Item domain.Item `json:"item"`
}

// HandleOpenChest consumes a chest and grants one item plus a token bonus.
// @Summary Open chest
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body OpenChestRequest true "Player identity"
// @Success 200 {object} domain.ChestResult
// @Failure 400 {object} ErrorResponse "No chests available"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory/open-chest [post]
func HandleOpenChest(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OpenChestRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpOpenChest); err != nil {
			return
		}

		result, err := svc.OpenChest(r.Context(), req.PlayerID)
		if err != nil {
			respondServiceError(w, r, OpOpenChest, err)
			return
		}

		logger.FromContext(r.Context()).Info("Chest opened",
			"player_id", req.PlayerID,
			"item", result.Item.Name,
			"rarity", result.Item.Rarity)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleEquip equips an owned item into its slot.
// @Summary Equip item
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body EquipRequest true "Inventory position (1-based)"
// @Success 200 {object} domain.EquipResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory/equip [post]
func HandleEquip(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EquipRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpEquip); err != nil {
			return
		}

		result, err := svc.Equip(r.Context(), req.PlayerID, toIndex(req.Position))
		if err != nil {
			respondServiceError(w, r, OpEquip, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleUnequip clears an equipment slot.
// @Summary Unequip slot
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body UnequipRequest true "Slot name"
// @Success 200 {object} UnequipResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slot is empty"
// @Failure 500 {object} ErrorResponse
// @Router /inventory/unequip [post]
func HandleUnequip(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UnequipRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpUnequip); err != nil {
			return
		}

		item, err := svc.Unequip(r.Context(), req.PlayerID, req.Slot)
		if err != nil {
			respondServiceError(w, r, OpUnequip, err)
			return
		}

		respondJSON(w, http.StatusOK, UnequipResponse{Slot: item.Slot, Item: *item})
	}
}
