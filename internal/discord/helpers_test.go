package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CashPoolRPG_Go/internal/handler"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext wires a fake economy API and a Discord session whose REST calls
// are captured instead of sent.
type TestContext struct {
	Server    *httptest.Server
	Mux       *http.ServeMux
	APIClient *APIClient
	Session   *discordgo.Session

	mu    sync.Mutex
	edits []discordgo.WebhookEdit
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewAPIClient(server.URL, "test-api-key")
	client.sleep = func(time.Duration) {}

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	tc := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
	}

	session.Client = &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			if req.Method == http.MethodPatch && strings.Contains(req.URL.Path, "/messages/@original") {
				var edit discordgo.WebhookEdit
				if err := json.NewDecoder(req.Body).Decode(&edit); err == nil {
					tc.mu.Lock()
					tc.edits = append(tc.edits, edit)
					tc.mu.Unlock()
				}
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
				Request:    req,
			}, nil
		},
	}}

	return tc
}

// LastEdit returns the most recent edit of the deferred reply.
func (tc *TestContext) LastEdit(t *testing.T) discordgo.WebhookEdit {
	t.Helper()
	tc.mu.Lock()
	defer tc.mu.Unlock()
	require.NotEmpty(t, tc.edits, "no interaction response was sent")
	return tc.edits[len(tc.edits)-1]
}

// LastEmbed returns the embed of the most recent edit.
func (tc *TestContext) LastEmbed(t *testing.T) *discordgo.MessageEmbed {
	t.Helper()
	edit := tc.LastEdit(t)
	require.NotNil(t, edit.Embeds, "last reply was not an embed")
	require.Len(t, *edit.Embeds, 1)
	return (*edit.Embeds)[0]
}

// LastContent returns the plain text of the most recent edit.
func (tc *TestContext) LastContent(t *testing.T) string {
	t.Helper()
	edit := tc.LastEdit(t)
	require.NotNil(t, edit.Content, "last reply was not plain text")
	return *edit.Content
}

// HandleRegister accepts every registration.
func (tc *TestContext) HandleRegister() {
	tc.Mux.HandleFunc("POST /api/v1/players/register", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]any{"player_id": "1001", "display_name": "Alice"})
	})
}

var testListingID = uuid.MustParse("6f1c2b1e-5d0a-4a8e-9a61-2f4b0c7d9e10")

// HandleMarket serves a market with a single listing numbered 1.
func (tc *TestContext) HandleMarket() {
	tc.Mux.HandleFunc("GET /api/v1/market", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, handler.MarketResponse{Listings: []handler.ListingView{
			{Number: 1, ID: testListingID, SellerID: "1002", SellerName: "Bob", Price: 50},
		}})
	})
}

// WriteJSON writes data with status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func intOpt(name string, v int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(v),
	}
}

func stringOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: v,
	}
}

func userOpt(name, id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionUser,
		Value: id,
	}
}

// newInteraction builds a guild slash command from user 1001.
func newInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:    "interaction-1",
		AppID: "app-1",
		Token: "token-1",
		Type:  discordgo.InteractionApplicationCommand,
		Member: &discordgo.Member{
			Nick: "Alice",
			User: &discordgo.User{ID: "1001", Username: "alice"},
		},
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: opts,
		},
	}}
}
