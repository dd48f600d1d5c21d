package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Categories
	ErrMsgNotFound             = "not found"
	ErrMsgInvalidInput         = "invalid input"
	ErrMsgInsufficientResource = "insufficient resource"
	ErrMsgStateConflict        = "state conflict"
	ErrMsgUnauthorized         = "unauthorized"
	ErrMsgStorage              = "storage error"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Inventory errors
	ErrMsgInvalidIndex      = "invalid index"
	ErrMsgInvalidSlot       = "invalid slot"
	ErrMsgSlotEmpty         = "slot is empty"
	ErrMsgNoChestsAvailable = "no chests available"

	// Market errors
	ErrMsgInvalidPrice      = "price must be a positive integer no larger than 1000000000"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgSelfPurchase      = "cannot buy your own listing"
	ErrMsgNotListingOwner   = "only the seller can cancel a listing"
	ErrMsgListingNotFound   = "listing not found"

	// Tournament errors
	ErrMsgAlreadyQueued   = "already queued"
	ErrMsgQueueFull       = "tournament queue is full"
	ErrMsgEmptyQueue      = "tournament queue is empty"
	ErrMsgPlayerNotQueued = "player is not in the tournament queue"
	ErrMsgNotAdmin        = "administrator privileges required"
)

// Error categories. Every specific error below wraps exactly one of these, so
// callers at the transport boundary can branch with errors.Is on the category.
var (
	ErrNotFound             = errors.New(ErrMsgNotFound)
	ErrInvalidInput         = errors.New(ErrMsgInvalidInput)
	ErrInsufficientResource = errors.New(ErrMsgInsufficientResource)
	ErrStateConflict        = errors.New(ErrMsgStateConflict)
	ErrUnauthorized         = errors.New(ErrMsgUnauthorized)
	ErrStorage              = errors.New(ErrMsgStorage)
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound = categorized(ErrNotFound, ErrMsgPlayerNotFound)

	// Inventory errors
	ErrInvalidIndex      = categorized(ErrNotFound, ErrMsgInvalidIndex)
	ErrInvalidSlot       = categorized(ErrInvalidInput, ErrMsgInvalidSlot)
	ErrSlotEmpty         = categorized(ErrStateConflict, ErrMsgSlotEmpty)
	ErrNoChestsAvailable = categorized(ErrInsufficientResource, ErrMsgNoChestsAvailable)

	// Market errors
	ErrInvalidPrice      = categorized(ErrInvalidInput, ErrMsgInvalidPrice)
	ErrInsufficientFunds = categorized(ErrInsufficientResource, ErrMsgInsufficientFunds)
	ErrSelfPurchase      = categorized(ErrInvalidInput, ErrMsgSelfPurchase)
	ErrNotListingOwner   = categorized(ErrUnauthorized, ErrMsgNotListingOwner)
	ErrListingNotFound   = categorized(ErrNotFound, ErrMsgListingNotFound)

	// Tournament errors
	ErrAlreadyQueued   = categorized(ErrStateConflict, ErrMsgAlreadyQueued)
	ErrQueueFull       = categorized(ErrStateConflict, ErrMsgQueueFull)
	ErrEmptyQueue      = categorized(ErrStateConflict, ErrMsgEmptyQueue)
	ErrPlayerNotQueued = categorized(ErrNotFound, ErrMsgPlayerNotQueued)
	ErrNotAdmin        = categorized(ErrUnauthorized, ErrMsgNotAdmin)
)

// categorized builds a sentinel whose message is msg and which unwraps to category.
func categorized(category error, msg string) error {
	return &domainError{category: category, msg: msg}
}

type domainError struct {
	category error
	msg      string
}

func (e *domainError) Error() string { return e.msg }

func (e *domainError) Unwrap() error { return e.category }

// StorageError wraps a persistence failure so it is reported under ErrStorage.
func StorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
