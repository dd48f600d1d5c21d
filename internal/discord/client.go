package discord

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/handler"
)

// Client tuning
const (
	APIPathPrefix     = "/api/v1"
	ClientTimeout     = 10 * time.Second
	MaxRetries        = 3
	RetryBaseDelay    = 500 * time.Millisecond
	RetryJitterMillis = 100

	RegistrationCacheSize = 1024
	RegistrationCacheTTL  = 10 * time.Minute
)

// APIError is a non-2xx reply from the economy API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return "API error: " + e.Message
}

// APIClient handles communication with the CashPool economy API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string

	// registered maps Discord user id to the display name last sent.
	registered *expirable.LRU[string, string]
	// sleep is swapped out by tests to skip retry backoff.
	sleep func(time.Duration)
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: ClientTimeout,
		},
		APIKey:     apiKey,
		registered: expirable.NewLRU[string, string](RegistrationCacheSize, nil, RegistrationCacheTTL),
		sleep:      time.Sleep,
	}
}

// retryable reports whether a status is a transient gateway failure. A plain
// 500 from the API is a definitive answer and is not retried.
func retryable(status int) bool {
	return status == http.StatusBadGateway ||
		status == http.StatusServiceUnavailable ||
		status == http.StatusGatewayTimeout
}

// errOutcomeUnknown marks a write whose reply was lost; it may or may not
// have been applied.
var errOutcomeUnknown = errors.New("request outcome unknown")

// idempotent reports whether a request may be replayed after an ambiguous
// failure. Writes may already have committed when a timeout or gateway error
// comes back.
func idempotent(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

// neverSent reports whether err happened before a connection was made, so the
// server cannot have seen the request.
func neverSent(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// doRequest performs an HTTP request with retry logic. Reads are retried on
// transport errors and gateway statuses. Writes are retried only when the
// connection could not be established.
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(rand.IntN(RetryJitterMillis)) * time.Millisecond
			delay := RetryBaseDelay*time.Duration(1<<uint(attempt-1)) + jitter
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			c.sleep(delay)
		}

		req, err := http.NewRequest(method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt, "method", method)
			if !idempotent(method) && !neverSent(err) {
				return nil, fmt.Errorf("%w: %w", errOutcomeUnknown, err)
			}
			continue
		}
		if !idempotent(method) || !retryable(resp.StatusCode) {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// call sends body to an API route and decodes a 2xx reply into out.
func (c *APIClient) call(method, path string, body, out interface{}) error {
	resp, err := c.doRequest(method, APIPathPrefix+path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errResp handler.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			apiErr.Code = errResp.Code
			apiErr.Message = errResp.Error
		} else {
			apiErr.Message = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// RegisterPlayer creates the profile on first contact and refreshes the display name.
func (c *APIClient) RegisterPlayer(playerID, displayName string) (*handler.PlayerResponse, error) {
	var out handler.PlayerResponse
	err := c.call(http.MethodPost, "/players/register", handler.RegisterPlayerRequest{
		PlayerID:    playerID,
		DisplayName: displayName,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// EnsureRegistered registers the player unless the same id and display name
// were registered recently.
func (c *APIClient) EnsureRegistered(playerID, displayName string) error {
	if name, ok := c.registered.Get(playerID); ok && name == displayName {
		return nil
	}
	if _, err := c.RegisterPlayer(playerID, displayName); err != nil {
		return err
	}
	c.registered.Add(playerID, displayName)
	return nil
}

// GetProfile retrieves balances, collection and build.
func (c *APIClient) GetProfile(playerID string) (*handler.ProfileResponse, error) {
	params := url.Values{}
	params.Set("player_id", playerID)

	var out handler.ProfileResponse
	if err := c.call(http.MethodGet, "/players/profile?"+params.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OpenChest spends one chest.
func (c *APIClient) OpenChest(playerID string) (*domain.ChestResult, error) {
	var out domain.ChestResult
	if err := c.call(http.MethodPost, "/inventory/open-chest", handler.OpenChestRequest{PlayerID: playerID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Equip equips the item at a 1-based inventory position.
func (c *APIClient) Equip(playerID string, position int) (*domain.EquipResult, error) {
	var out domain.EquipResult
	if err := c.call(http.MethodPost, "/inventory/equip", handler.EquipRequest{PlayerID: playerID, Position: position}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Unequip clears a slot.
func (c *APIClient) Unequip(playerID, slot string) (*handler.UnequipResponse, error) {
	var out handler.UnequipResponse
	if err := c.call(http.MethodPost, "/inventory/unequip", handler.UnequipRequest{PlayerID: playerID, Slot: slot}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BrowseMarket lists every active listing in order.
func (c *APIClient) BrowseMarket() ([]handler.ListingView, error) {
	var out handler.MarketResponse
	if err := c.call(http.MethodGet, "/market", nil, &out); err != nil {
		return nil, err
	}
	return out.Listings, nil
}

// ListItem puts the item at a 1-based inventory position up for sale.
func (c *APIClient) ListItem(playerID string, position, price int) (*handler.ListingView, error) {
	var out handler.ListingView
	err := c.call(http.MethodPost, "/market/list", handler.ListItemRequest{
		PlayerID: playerID,
		Position: position,
		Price:    price,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// listingAction pins the listing a player sees at number to its id, so the
// write addresses that listing even if others sell in the meantime. Numbers
// the browse does not cover are sent as-is for the API to reject.
func (c *APIClient) listingAction(playerID string, number int) (handler.ListingActionRequest, error) {
	req := handler.ListingActionRequest{PlayerID: playerID, Number: number}
	listings, err := c.BrowseMarket()
	if err != nil {
		return req, err
	}
	for _, l := range listings {
		if l.Number == number && l.ID != uuid.Nil {
			id := l.ID
			req.ListingID = &id
			break
		}
	}
	return req, nil
}

// BuyListing buys the listing with the given 1-based number.
func (c *APIClient) BuyListing(playerID string, number int) (*domain.Sale, error) {
	req, err := c.listingAction(playerID, number)
	if err != nil {
		return nil, err
	}
	var out domain.Sale
	if err := c.call(http.MethodPost, "/market/buy", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelListing withdraws one of the caller's listings.
func (c *APIClient) CancelListing(playerID string, number int) (*handler.ListingView, error) {
	req, err := c.listingAction(playerID, number)
	if err != nil {
		return nil, err
	}
	var out handler.ListingView
	if err := c.call(http.MethodPost, "/market/cancel", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// JoinTournament takes a seat at the table.
func (c *APIClient) JoinTournament(playerID string) (*domain.JoinResult, error) {
	var out domain.JoinResult
	if err := c.call(http.MethodPost, "/tournament/join", handler.JoinRequest{PlayerID: playerID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TournamentStatus returns the current roster.
func (c *APIClient) TournamentStatus() (*domain.QueueStatus, error) {
	var out domain.QueueStatus
	if err := c.call(http.MethodGet, "/tournament", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResolveTournament settles the table; the API checks callerID is an admin.
func (c *APIClient) ResolveTournament(callerID, winnerID string) (*domain.Settlement, error) {
	var out domain.Settlement
	err := c.call(http.MethodPost, "/tournament/resolve", handler.ResolveRequest{
		CallerID: callerID,
		WinnerID: winnerID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Healthy reports whether the API answers its liveness probe.
func (c *APIClient) Healthy() bool {
	resp, err := c.Client.Get(c.BaseURL + "/healthz")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// IsAPIError reports whether err is an APIError with the given code.
func IsAPIError(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}
