package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CashPoolRPG_Go/internal/concurrency"
	"github.com/osse101/CashPoolRPG_Go/internal/database/memory"
	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/handler"
	"github.com/osse101/CashPoolRPG_Go/internal/inventory"
	"github.com/osse101/CashPoolRPG_Go/internal/loot"
	"github.com/osse101/CashPoolRPG_Go/internal/market"
	"github.com/osse101/CashPoolRPG_Go/internal/player"
	"github.com/osse101/CashPoolRPG_Go/internal/rarity"
	"github.com/osse101/CashPoolRPG_Go/internal/tournament"
)

const testAPIKey = "router-test-key"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewStore()
	lock := concurrency.NewEconomyLock()
	table := rarity.DefaultTable()
	engine, err := loot.NewEngine(table, nil)
	require.NoError(t, err)

	return NewRouter(testAPIKey, nil, Dependencies{
		Store:      store,
		Players:    player.NewService(store, lock),
		Inventory:  inventory.NewService(store, lock, engine),
		Market:     market.NewService(store, lock, table),
		Tournament: tournament.NewService(store, lock, 20),
		IsAdmin:    func(id string) bool { return id == "9000" },
	})
}

type apiClient struct {
	t      *testing.T
	router http.Handler
}

func (c apiClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	return rec
}

func (c apiClient) ok(method, path string, body interface{}, out interface{}) {
	c.t.Helper()
	rec := c.do(method, path, body)
	require.Less(c.t, rec.Code, 300, "%s %s: %s", method, path, rec.Body.String())
	if out != nil {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), out))
	}
}

func TestRouter_EconomyRoundTrip(t *testing.T) {
	api := apiClient{t: t, router: newTestRouter(t)}

	// Two players register and sit at the table.
	api.ok(http.MethodPost, "/api/v1/players/register", handler.RegisterPlayerRequest{PlayerID: "1001", DisplayName: "Alice"}, nil)
	api.ok(http.MethodPost, "/api/v1/players/register", handler.RegisterPlayerRequest{PlayerID: "1002", DisplayName: "Bob"}, nil)
	api.ok(http.MethodPost, "/api/v1/tournament/join", handler.JoinRequest{PlayerID: "1001"}, nil)
	api.ok(http.MethodPost, "/api/v1/tournament/join", handler.JoinRequest{PlayerID: "1002"}, nil)

	var status domain.QueueStatus
	api.ok(http.MethodGet, "/api/v1/tournament", nil, &status)
	assert.Equal(t, 2, status.Size)

	// Only an administrator may resolve.
	rec := api.do(http.MethodPost, "/api/v1/tournament/resolve", handler.ResolveRequest{CallerID: "1001", WinnerID: "1001"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var settlement domain.Settlement
	api.ok(http.MethodPost, "/api/v1/tournament/resolve", handler.ResolveRequest{CallerID: "9000", WinnerID: "1001"}, &settlement)
	assert.Equal(t, 3, settlement.TotalChests)
	assert.Equal(t, 40, settlement.BuyInPot)

	// Both open a chest; Bob's token bonus funds the purchase.
	var aliceChest, bobChest domain.ChestResult
	api.ok(http.MethodPost, "/api/v1/inventory/open-chest", handler.OpenChestRequest{PlayerID: "1001"}, &aliceChest)
	api.ok(http.MethodPost, "/api/v1/inventory/open-chest", handler.OpenChestRequest{PlayerID: "1002"}, &bobChest)
	assert.Equal(t, 1, aliceChest.ChestsRemaining)
	assert.Zero(t, bobChest.ChestsRemaining)

	rec = api.do(http.MethodPost, "/api/v1/inventory/open-chest", handler.OpenChestRequest{PlayerID: "1002"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var listing handler.ListingView
	api.ok(http.MethodPost, "/api/v1/market/list", handler.ListItemRequest{PlayerID: "1001", Position: 1, Price: 5}, &listing)
	assert.Equal(t, 1, listing.Number)

	var board handler.MarketResponse
	api.ok(http.MethodGet, "/api/v1/market", nil, &board)
	require.Len(t, board.Listings, 1)

	rec = api.do(http.MethodPost, "/api/v1/market/buy", handler.ListingActionRequest{PlayerID: "1001", Number: 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "self purchase")

	var sale domain.Sale
	api.ok(http.MethodPost, "/api/v1/market/buy", handler.ListingActionRequest{PlayerID: "1002", Number: 1}, &sale)
	assert.Equal(t, 5, sale.Price)
	assert.Equal(t, aliceChest.Item.Name, sale.Item.Name)

	var bob handler.ProfileResponse
	api.ok(http.MethodGet, "/api/v1/players/profile?player_id=1002", nil, &bob)
	assert.Len(t, bob.Items, 2)
	assert.Equal(t, bobChest.Tokens-5, bob.Tokens)

	var alice handler.ProfileResponse
	api.ok(http.MethodGet, "/api/v1/players/profile?player_id=1001", nil, &alice)
	assert.Empty(t, alice.Items)
	assert.Equal(t, aliceChest.Tokens+sale.SellerNet, alice.Tokens)
}

func TestRouter_PublicAndProtectedRoutes(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/market", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestRouter_SwaggerDocument(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var doc struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, APIPrefix, doc.BasePath)
	assert.Contains(t, doc.Paths, "/market/buy")
	assert.Contains(t, doc.Paths, "/tournament/resolve")
}
