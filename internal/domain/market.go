package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxListingPrice is the highest asking price a new listing may carry.
const MaxListingPrice = 1_000_000_000

// Listing is an item held by the marketplace on a seller's behalf.
type Listing struct {
	ID         uuid.UUID `json:"id"`
	SellerID   string    `json:"seller_id"`
	SellerName string    `json:"seller_name"`
	Item       Item      `json:"item"`
	Price      int       `json:"price"`
	ListedAt   time.Time `json:"listed_at"`
}

// Validate checks a persisted listing.
func (l Listing) Validate() error {
	if l.SellerID == "" {
		return fmt.Errorf("listing %s has no seller", l.ID)
	}
	if l.Price <= 0 {
		return fmt.Errorf("listing %s has non-positive price %d", l.ID, l.Price)
	}
	if err := l.Item.Validate(); err != nil {
		return fmt.Errorf("listing %s: %w", l.ID, err)
	}
	return nil
}

// ValidateListings checks every listing in the marketplace sequence.
func ValidateListings(listings []Listing) error {
	for _, l := range listings {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Sale summarizes a completed purchase.
type Sale struct {
	Listing   Listing `json:"listing"`
	BuyerID   string  `json:"buyer_id"`
	Item      Item    `json:"item"`
	Price     int     `json:"price"`
	Fee       int     `json:"fee"`
	SellerNet int     `json:"seller_net"`
}
