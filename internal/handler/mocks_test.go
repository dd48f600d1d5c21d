package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/inventory"
	"github.com/osse101/CashPoolRPG_Go/internal/market"
	"github.com/osse101/CashPoolRPG_Go/internal/player"
	"github.com/osse101/CashPoolRPG_Go/internal/tournament"
)

type MockPlayerService struct{ mock.Mock }

var _ player.Service = (*MockPlayerService)(nil)

func (m *MockPlayerService) Register(ctx context.Context, playerID, displayName string) (*domain.Player, error) {
	args := m.Called(ctx, playerID, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) GetProfile(ctx context.Context, playerID string) (*domain.Profile, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type MockInventoryService struct{ mock.Mock }

var _ inventory.Service = (*MockInventoryService)(nil)

func (m *MockInventoryService) OpenChest(ctx context.Context, playerID string) (*domain.ChestResult, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChestResult), args.Error(1)
}

func (m *MockInventoryService) Equip(ctx context.Context, playerID string, index int) (*domain.EquipResult, error) {
	args := m.Called(ctx, playerID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipResult), args.Error(1)
}

func (m *MockInventoryService) Unequip(ctx context.Context, playerID, slot string) (*domain.Item, error) {
	args := m.Called(ctx, playerID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockInventoryService) TotalPower(ctx context.Context, playerID string) (int, error) {
	args := m.Called(ctx, playerID)
	return args.Int(0), args.Error(1)
}

type MockMarketService struct{ mock.Mock }

var _ market.Service = (*MockMarketService)(nil)

func (m *MockMarketService) ListItem(ctx context.Context, sellerID string, index, price int) (*domain.Listing, error) {
	args := m.Called(ctx, sellerID, index, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockMarketService) Browse(ctx context.Context) ([]domain.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockMarketService) Buy(ctx context.Context, buyerID string, index int) (*domain.Sale, error) {
	args := m.Called(ctx, buyerID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockMarketService) BuyByID(ctx context.Context, buyerID string, listingID uuid.UUID) (*domain.Sale, error) {
	args := m.Called(ctx, buyerID, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockMarketService) CancelByID(ctx context.Context, sellerID string, listingID uuid.UUID) (*domain.Listing, error) {
	args := m.Called(ctx, sellerID, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockMarketService) CancelListing(ctx context.Context, sellerID string, index int) (*domain.Listing, error) {
	args := m.Called(ctx, sellerID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

type MockTournamentService struct{ mock.Mock }

var _ tournament.Service = (*MockTournamentService)(nil)

func (m *MockTournamentService) Join(ctx context.Context, playerID string) (*domain.JoinResult, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinResult), args.Error(1)
}

func (m *MockTournamentService) Status(ctx context.Context) (*domain.QueueStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QueueStatus), args.Error(1)
}

func (m *MockTournamentService) Resolve(ctx context.Context, winnerID string) (*domain.Settlement, error) {
	args := m.Called(ctx, winnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

type MockPinger struct{ mock.Mock }

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
