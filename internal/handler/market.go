package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/logger"
	"github.com/osse101/CashPoolRPG_Go/internal/market"
)

// ListItemRequest moves the item at a 1-based inventory position onto the market.
type ListItemRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Position int    `json:"position" validate:"min=1"`
	Price    int    `json:"price" validate:"max=1000000000"`
}

// ListingActionRequest addresses a listing by its 1-based number in the
// browse order or by its id. The id wins when both are set: numbers shift as
// listings sell, ids do not.
type ListingActionRequest struct {
	PlayerID  string     `json:"player_id" validate:"required,max=64"`
	Number    int        `json:"number,omitempty" validate:"omitempty,min=1"`
	ListingID *uuid.UUID `json:"listing_id,omitempty"`
}

// decodeListingAction decodes the request and checks that it names a listing.
func decodeListingAction(r *http.Request, w http.ResponseWriter, op string) (*ListingActionRequest, bool) {
	var req ListingActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, op); err != nil {
		return nil, false
	}
	if req.ListingID == nil && req.Number == 0 {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidInput, ErrMsgListingRefRequired)
		return nil, false
	}
	return &req, true
}

// ListingView is a listing as shown to browsing players.
type ListingView struct {
	Number     int         `json:"number"`
	ID         uuid.UUID   `json:"id"`
	SellerID   string      `json:"seller_id"`
	SellerName string      `json:"seller_name"`
	Item       domain.Item `json:"item"`
	Price      int         `json:"price"`
	ListedAt   time.Time   `json:"listed_at"`
}

// MarketResponse is the ordered listing sequence.
type MarketResponse struct {
	Listings []ListingView `json:"listings"`
}

func newListingView(number int, l domain.Listing) ListingView {
	return ListingView{
		Number:     number,
		ID:         l.ID,
		SellerID:   l.SellerID,
		SellerName: l.SellerName,
		Item:       l.Item,
		Price:      l.Price,
		ListedAt:   l.ListedAt,
	}
}

// HandleBrowseMarket returns every active listing in listing order.
// @Summary Browse marketplace
// @Tags market
// @Produce json
// @Success 200 {object} MarketResponse
// @Failure 500 {object} ErrorResponse
// @Router /market [get]
func HandleBrowseMarket(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := svc.Browse(r.Context())
		if err != nil {
			respondServiceError(w, r, OpBrowseMarket, err)
			return
		}

		views := make([]ListingView, 0, len(listings))
		for i, l := range listings {
			views = append(views, newListingView(i+1, l))
		}
		respondJSON(w, http.StatusOK, MarketResponse{Listings: views})
	}
}

// HandleListItem lists an owned item for sale.
// @Summary List item for sale
// @Description Removes the item from the seller's collection (unequipping it if needed) and appends a listing.
// @Tags market
// @Accept json
// @Produce json
// @Param request body ListItemRequest true "Inventory position (1-based) and asking price"
// @Success 201 {object} ListingView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /market/list [post]
func HandleListItem(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ListItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpListItem); err != nil {
			return
		}

		listing, err := svc.ListItem(r.Context(), req.PlayerID, toIndex(req.Position), req.Price)
		if err != nil {
			respondServiceError(w, r, OpListItem, err)
			return
		}

		logger.FromContext(r.Context()).Info("Item listed",
			"seller_id", req.PlayerID,
			"listing_id", listing.ID,
			"price", listing.Price)
		respondJSON(w, http.StatusCreated, newListingView(listingNumber(r, svc, listing.ID), *listing))
	}
}

// HandleBuyListing settles a purchase.
// @Summary Buy listing
// @Description Moves the item to the buyer and the price minus the rarity fee to the seller.
// @Tags market
// @Accept json
// @Produce json
// @Param request body ListingActionRequest true "Listing number (1-based) or listing id"
// @Success 200 {object} domain.Sale
// @Failure 400 {object} ErrorResponse "Insufficient funds or own listing"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /market/buy [post]
func HandleBuyListing(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeListingAction(r, w, OpBuyListing)
		if !ok {
			return
		}

		var sale *domain.Sale
		var err error
		if req.ListingID != nil {
			sale, err = svc.BuyByID(r.Context(), req.PlayerID, *req.ListingID)
		} else {
			sale, err = svc.Buy(r.Context(), req.PlayerID, toIndex(req.Number))
		}
		if err != nil {
			respondServiceError(w, r, OpBuyListing, err)
			return
		}

		respondJSON(w, http.StatusOK, sale)
	}
}

// HandleCancelListing returns a listed item to its seller.
// @Summary Cancel listing
// @Tags market
// @Accept json
// @Produce json
// @Param request body ListingActionRequest true "Listing number (1-based) or listing id"
// @Success 200 {object} ListingView
// @Failure 403 {object} ErrorResponse "Not the seller"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /market/cancel [post]
func HandleCancelListing(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeListingAction(r, w, OpCancelListing)
		if !ok {
			return
		}

		var listing *domain.Listing
		var err error
		if req.ListingID != nil {
			listing, err = svc.CancelByID(r.Context(), req.PlayerID, *req.ListingID)
		} else {
			listing, err = svc.CancelListing(r.Context(), req.PlayerID, toIndex(req.Number))
		}
		if err != nil {
			respondServiceError(w, r, OpCancelListing, err)
			return
		}

		respondJSON(w, http.StatusOK, newListingView(req.Number, *listing))
	}
}

// listingNumber looks up the current 1-based number of a listing; 0 when it
// is no longer on the market.
func listingNumber(r *http.Request, svc market.Service, id uuid.UUID) int {
	listings, err := svc.Browse(r.Context())
	if err != nil {
		return 0
	}
	for i, l := range listings {
		if l.ID == id {
			return i + 1
		}
	}
	return 0
}
