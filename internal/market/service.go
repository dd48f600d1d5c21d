// Package market implements the shared marketplace: listing, browsing,
// buying and cancelling items between players.
package market

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CashPoolRPG_Go/internal/concurrency"
	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/logger"
	"github.com/osse101/CashPoolRPG_Go/internal/metrics"
	"github.com/osse101/CashPoolRPG_Go/internal/rarity"
	"github.com/osse101/CashPoolRPG_Go/internal/repository"
)

// Service defines the marketplace operations. Indexes are 0-based.
type Service interface {
	// ListItem moves the seller's item at index into a new listing.
	ListItem(ctx context.Context, sellerID string, index, price int) (*domain.Listing, error)
	Browse(ctx context.Context) ([]domain.Listing, error)
	// Buy settles the listing at index: the buyer pays the price, the seller
	// receives the price minus the rarity fee, and the item moves to the buyer.
	Buy(ctx context.Context, buyerID string, index int) (*domain.Sale, error)
	// BuyByID settles the listing with the given id. Unlike an index, the id
	// never points at a different listing once the original is gone.
	BuyByID(ctx context.Context, buyerID string, listingID uuid.UUID) (*domain.Sale, error)
	// CancelListing returns the listed item to its seller.
	CancelListing(ctx context.Context, sellerID string, index int) (*domain.Listing, error)
	CancelByID(ctx context.Context, sellerID string, listingID uuid.UUID) (*domain.Listing, error)
}

// locator finds the position of the addressed listing.
type locator func(listings []domain.Listing) (int, error)

func atIndex(index int) locator {
	return func(listings []domain.Listing) (int, error) {
		if index < 0 || index >= len(listings) {
			return 0, fmt.Errorf("%w: listing %d of %d", domain.ErrInvalidIndex, index+1, len(listings))
		}
		return index, nil
	}
}

func withID(id uuid.UUID) locator {
	return func(listings []domain.Listing) (int, error) {
		for i, l := range listings {
			if l.ID == id {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: %s", domain.ErrListingNotFound, id)
	}
}

type service struct {
	repo  repository.Economy
	lock  *concurrency.EconomyLock
	table *rarity.Table
	now   func() time.Time
}

// NewService creates a new market service. Fees come from table.
func NewService(repo repository.Economy, lock *concurrency.EconomyLock, table *rarity.Table) Service {
	return &service{
		repo:  repo,
		lock:  lock,
		table: table,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) ListItem(ctx context.Context, sellerID string, index, price int) (*domain.Listing, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgListItemCalled, "seller_id", sellerID, "index", index, "price", price)

	if price <= 0 || price > domain.MaxListingPrice {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidPrice, price)
	}

	w := s.lock.Writer()
	w.Lock()
	defer w.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		metrics.RecordStorageError(OpListItem, err)
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	seller, err := s.getPlayer(ctx, tx, OpListItem, sellerID)
	if err != nil {
		return nil, err
	}
	listings, err := tx.GetListings(ctx)
	if err != nil {
		metrics.RecordStorageError(OpListItem, err)
		return nil, fmt.Errorf(ErrMsgGetListingsFailed, err)
	}

	item, err := seller.RemoveItemAt(index)
	if err != nil {
		return nil, err
	}
	listing := domain.Listing{
		ID:         uuid.New(),
		SellerID:   seller.ID,
		SellerName: seller.DisplayName,
		Item:       item,
		Price:      price,
		ListedAt:   s.now(),
	}
	listings = append(listings, listing)

	if err := tx.SavePlayer(ctx, seller); err != nil {
		metrics.RecordStorageError(OpListItem, err)
		return nil, fmt.Errorf(ErrMsgSavePlayerFailed, err)
	}
	if err := tx.SaveListings(ctx, listings); err != nil {
		metrics.RecordStorageError(OpListItem, err)
		return nil, fmt.Errorf(ErrMsgSaveListingsFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		metrics.RecordStorageError(OpListItem, err)
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.ListingsCreated.Inc()
	log.Info(LogMsgItemListed, "seller_id", sellerID, "listing_id", listing.ID, "item", item.Name, "price", price)
	return &listing, nil
}

func (s *service) Browse(ctx context.Context) ([]domain.Listing, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgBrowseCalled)

	r := s.lock.Reader()
	r.Lock()
	defer r.Unlock()

	listings, err := s.repo.GetListings(ctx)
	if err != nil {
		metrics.RecordStorageError(OpBrowse, err)
		return nil, fmt.Errorf(ErrMsgGetListingsFailed, err)
	}
	return listings, nil
}

func (s *service) Buy(ctx context.Context, buyerID string, index int) (*domain.Sale, error) {
	logger.FromContext(ctx).Info(LogMsgBuyCalled, "buyer_id", buyerID, "index", index)
	return s.buy(ctx, buyerID, atIndex(index))
}

func (s *service) BuyByID(ctx context.Context, buyerID string, listingID uuid.UUID) (*domain.Sale, error) {
	logger.FromContext(ctx).Info(LogMsgBuyCalled, "buyer_id", buyerID, "listing_id", listingID)
	return s.buy(ctx, buyerID, withID(listingID))
}

func (s *service) buy(ctx context.Context, buyerID string, locate locator) (*domain.Sale, error) {
	log := logger.FromContext(ctx)

	w := s.lock.Writer()
	w.Lock()
	defer w.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		metrics.RecordStorageError(OpBuy, err)
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	buyer, err := s.getPlayer(ctx, tx, OpBuy, buyerID)
	if err != nil {
		return nil, err
	}
	listings, err := tx.GetListings(ctx)
	if err != nil {
		metrics.RecordStorageError(OpBuy, err)
		return nil, fmt.Errorf(ErrMsgGetListingsFailed, err)
	}
	index, err := locate(listings)
	if err != nil {
		return nil, err
	}
	listing := listings[index]

	if listing.SellerID == buyer.ID {
		return nil, domain.ErrSelfPurchase
	}
	if buyer.Tokens < listing.Price {
		log.Warn(LogMsgInsufficientFunds, "buyer_id", buyerID, "tokens", buyer.Tokens, "price", listing.Price)
		return nil, fmt.Errorf("%w: need %d tokens, have %d", domain.ErrInsufficientFunds, listing.Price, buyer.Tokens)
	}

	seller, err := tx.GetPlayer(ctx, listing.SellerID)
	if err != nil {
		metrics.RecordStorageError(OpBuy, err)
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if seller == nil {
		err := domain.StorageError("get seller", fmt.Errorf(ErrMsgUnknownSeller, listing.ID, listing.SellerID))
		metrics.RecordStorageError(OpBuy, err)
		return nil, err
	}

	fee := s.table.Fee(listing.Item.Rarity, listing.Price)
	sale := &domain.Sale{
		Listing:   listing,
		BuyerID:   buyer.ID,
		Price:     listing.Price,
		Fee:       fee,
		SellerNet: listing.Price - fee,
	}

	buyer.Tokens -= listing.Price
	seller.Tokens += sale.SellerNet
	sale.Item = buyer.AddItem(listing.Item)
	listings = append(listings[:index:index], listings[index+1:]...)

	if err := tx.SavePlayer(ctx, buyer); err != nil {
		metrics.RecordStorageError(OpBuy, err)
		return nil, fmt.Errorf(ErrMsgSavePlayerFailed, err)
	}
	if err := tx.SavePlayer(ctx, seller); err != nil {
		metrics.RecordStorageError(OpBuy, err)
		return nil, fmt.Errorf(ErrMsgSavePlayerFailed, err)
	}
	if err := tx.SaveListings(ctx, listings); err != nil {
		metrics.RecordStorageError(OpBuy, err)
		return nil, fmt.Errorf(ErrMsgSaveListingsFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		metrics.RecordStorageError(OpBuy, err)
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.Sales.WithLabelValues(string(listing.Item.Rarity)).Inc()
	metrics.FeesCollected.Add(float64(fee))
	metrics.MarketVolume.Add(float64(listing.Price))
	log.Info(LogMsgListingSold, "listing_id", listing.ID, "buyer_id", buyerID, "seller_id", listing.SellerID,
		"price", sale.Price, "fee", sale.Fee, "seller_net", sale.SellerNet)
	return sale, nil
}

func (s *service) CancelListing(ctx context.Context, sellerID string, index int) (*domain.Listing, error) {
	logger.FromContext(ctx).Info(LogMsgCancelCalled, "seller_id", sellerID, "index", index)
	return s.cancel(ctx, sellerID, atIndex(index))
}

func (s *service) CancelByID(ctx context.Context, sellerID string, listingID uuid.UUID) (*domain.Listing, error) {
	logger.FromContext(ctx).Info(LogMsgCancelCalled, "seller_id", sellerID, "listing_id", listingID)
	return s.cancel(ctx, sellerID, withID(listingID))
}

func (s *service) cancel(ctx context.Context, sellerID string, locate locator) (*domain.Listing, error) {
	log := logger.FromContext(ctx)

	w := s.lock.Writer()
	w.Lock()
	defer w.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		metrics.RecordStorageError(OpCancelListing, err)
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	seller, err := s.getPlayer(ctx, tx, OpCancelListing, sellerID)
	if err != nil {
		return nil, err
	}
	listings, err := tx.GetListings(ctx)
	if err != nil {
		metrics.RecordStorageError(OpCancelListing, err)
		return nil, fmt.Errorf(ErrMsgGetListingsFailed, err)
	}
	index, err := locate(listings)
	if err != nil {
		return nil, err
	}
	listing := listings[index]
	if listing.SellerID != seller.ID {
		return nil, domain.ErrNotListingOwner
	}

	listing.Item = seller.AddItem(listing.Item)
	listings = append(listings[:index:index], listings[index+1:]...)

	if err := tx.SavePlayer(ctx, seller); err != nil {
		metrics.RecordStorageError(OpCancelListing, err)
		return nil, fmt.Errorf(ErrMsgSavePlayerFailed, err)
	}
	if err := tx.SaveListings(ctx, listings); err != nil {
		metrics.RecordStorageError(OpCancelListing, err)
		return nil, fmt.Errorf(ErrMsgSaveListingsFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		metrics.RecordStorageError(OpCancelListing, err)
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.ListingsCancelled.Inc()
	log.Info(LogMsgListingCancelled, "listing_id", listing.ID, "seller_id", sellerID)
	return &listing, nil
}

func (s *service) getPlayer(ctx context.Context, tx repository.EconomyTx, op, playerID string) (*domain.Player, error) {
	p, err := tx.GetPlayer(ctx, playerID)
	if err != nil {
		metrics.RecordStorageError(op, err)
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return p, nil
}
