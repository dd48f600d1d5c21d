package database

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
)

// The three persisted documents are stored as JSON in every backend. Decoding
// always validates, so a corrupt row surfaces as domain.ErrStorage instead of
// reaching the services.

// EncodePlayer serializes a profile after checking its invariants.
func EncodePlayer(p *domain.Player) ([]byte, error) {
	if p == nil {
		return nil, domain.StorageError(ErrMsgEncodePlayer, fmt.Errorf("nil player"))
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, domain.StorageError(ErrMsgEncodePlayer, err)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, domain.StorageError(ErrMsgEncodePlayer, err)
	}
	return data, nil
}

// DecodePlayer parses and validates a stored profile. The key the row was
// stored under must match the document's own id.
func DecodePlayer(key string, data []byte) (*domain.Player, error) {
	var p domain.Player
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, domain.StorageError(ErrMsgDecodePlayer, err)
	}
	p.Normalize()
	if p.ID != key {
		return nil, domain.StorageError(ErrMsgDecodePlayer, fmt.Errorf("document id %q stored under %q", p.ID, key))
	}
	if err := p.Validate(); err != nil {
		return nil, domain.StorageError(ErrMsgDecodePlayer, err)
	}
	return &p, nil
}

// EncodeListings serializes the marketplace sequence.
func EncodeListings(listings []domain.Listing) ([]byte, error) {
	if listings == nil {
		listings = []domain.Listing{}
	}
	if err := domain.ValidateListings(listings); err != nil {
		return nil, domain.StorageError(ErrMsgEncodeListings, err)
	}
	data, err := json.Marshal(listings)
	if err != nil {
		return nil, domain.StorageError(ErrMsgEncodeListings, err)
	}
	return data, nil
}

// DecodeListings parses and validates the marketplace sequence.
func DecodeListings(data []byte) ([]domain.Listing, error) {
	listings := []domain.Listing{}
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, domain.StorageError(ErrMsgDecodeListings, err)
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	if err := domain.ValidateListings(listings); err != nil {
		return nil, domain.StorageError(ErrMsgDecodeListings, err)
	}
	return listings, nil
}

// EncodeQueue serializes the tournament roster.
func EncodeQueue(q *domain.TournamentQueue) ([]byte, error) {
	q = q.Clone()
	if err := q.Validate(); err != nil {
		return nil, domain.StorageError(ErrMsgEncodeQueue, err)
	}
	if q.Players == nil {
		q.Players = []string{}
	}
	data, err := json.Marshal(q)
	if err != nil {
		return nil, domain.StorageError(ErrMsgEncodeQueue, err)
	}
	return data, nil
}

// DecodeQueue parses and validates the tournament roster.
func DecodeQueue(data []byte) (*domain.TournamentQueue, error) {
	var q domain.TournamentQueue
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, domain.StorageError(ErrMsgDecodeQueue, err)
	}
	if q.Players == nil {
		q.Players = []string{}
	}
	if err := q.Validate(); err != nil {
		return nil, domain.StorageError(ErrMsgDecodeQueue, err)
	}
	return &q, nil
}
