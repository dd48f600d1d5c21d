package domain

import (
	"fmt"
	"slices"
)

// QueueCapacity is the number of seats at the single tournament table.
const QueueCapacity = 5

// QueueState describes where the table is in its lifecycle.
type QueueState string

const (
	QueueOpen QueueState = "open"
	QueueFull QueueState = "full"
)

// TournamentQueue is the ordered roster waiting for resolution.
type TournamentQueue struct {
	Players []string `json:"players"`
}

func (q *TournamentQueue) Size() int { return len(q.Players) }

func (q *TournamentQueue) Contains(id string) bool {
	return slices.Contains(q.Players, id)
}

func (q *TournamentQueue) State() QueueState {
	if len(q.Players) >= QueueCapacity {
		return QueueFull
	}
	return QueueOpen
}

// Clone returns an independent copy.
func (q *TournamentQueue) Clone() *TournamentQueue {
	if q == nil {
		return &TournamentQueue{Players: []string{}}
	}
	return &TournamentQueue{Players: slices.Clone(q.Players)}
}

// Validate enforces capacity and uniqueness on a persisted queue.
func (q *TournamentQueue) Validate() error {
	if len(q.Players) > QueueCapacity {
		return fmt.Errorf("tournament queue holds %d players, capacity is %d", len(q.Players), QueueCapacity)
	}
	seen := make(map[string]struct{}, len(q.Players))
	for _, id := range q.Players {
		if id == "" {
			return fmt.Errorf("tournament queue holds an empty identity")
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("tournament queue holds %s twice", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// QueueEntry is a roster line for display.
type QueueEntry struct {
	Position    int    `json:"position"`
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
}

// QueueStatus is a read-only view of the table.
type QueueStatus struct {
	Entries  []QueueEntry `json:"entries"`
	Size     int          `json:"size"`
	Capacity int          `json:"capacity"`
	State    QueueState   `json:"state"`
}

// JoinResult reports a seat taken at the table.
type JoinResult struct {
	Position int        `json:"position"`
	Size     int        `json:"size"`
	Capacity int        `json:"capacity"`
	State    QueueState `json:"state"`
}

// Payout is the chest award for one participant.
type Payout struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Chests      int    `json:"chests_awarded"`
}

// Settlement summarizes a resolved tournament. BuyInPot is recorded only;
// no money moves through this system.
type Settlement struct {
	WinnerID    string   `json:"winner_id"`
	WinnerName  string   `json:"winner_name"`
	Payouts     []Payout `json:"payouts"`
	TotalChests int      `json:"total_chests"`
	BuyInPot    int      `json:"buy_in_pot"`
}
