// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/repository"
)

// MockEconomy implements repository.Economy for testing
type MockEconomy struct {
	mock.Mock
}

var _ repository.Economy = (*MockEconomy)(nil)

func (m *MockEconomy) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockEconomy) GetListings(ctx context.Context) ([]domain.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockEconomy) GetQueue(ctx context.Context) (*domain.TournamentQueue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TournamentQueue), args.Error(1)
}

func (m *MockEconomy) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.EconomyTx), args.Error(1)
}

func (m *MockEconomy) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockEconomyTx implements repository.EconomyTx for testing
type MockEconomyTx struct {
	mock.Mock
}

var _ repository.EconomyTx = (*MockEconomyTx)(nil)

func (m *MockEconomyTx) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockEconomyTx) SavePlayer(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockEconomyTx) GetListings(ctx context.Context) ([]domain.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockEconomyTx) SaveListings(ctx context.Context, listings []domain.Listing) error {
	args := m.Called(ctx, listings)
	return args.Error(0)
}

func (m *MockEconomyTx) GetQueue(ctx context.Context) (*domain.TournamentQueue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TournamentQueue), args.Error(1)
}

func (m *MockEconomyTx) SaveQueue(ctx context.Context, queue *domain.TournamentQueue) error {
	args := m.Called(ctx, queue)
	return args.Error(0)
}

func (m *MockEconomyTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEconomyTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
