package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgStorageUnavailable    = "The economy store is unavailable. Please try again."
	ErrMsgNotAdmin              = "Only administrators can resolve tournaments"
	ErrMsgListingRefRequired    = "Either number or listing_id is required"
)

// Error codes returned alongside the message so chat transports can pick
// their own wording per category.
const (
	ErrCodeNotFound             = "not_found"
	ErrCodeInvalidInput         = "invalid_input"
	ErrCodeInsufficientResource = "insufficient_resource"
	ErrCodeStateConflict        = "state_conflict"
	ErrCodeUnauthorized         = "unauthorized"
	ErrCodeStorage              = "storage_error"
	ErrCodeInternal             = "internal"
)

// Operation names used in logs
const (
	OpRegisterPlayer = "Register player"
	OpGetProfile     = "Get profile"
	OpOpenChest      = "Open chest"
	OpEquip          = "Equip"
	OpUnequip        = "Unequip"
	OpBrowseMarket   = "Browse market"
	OpListItem       = "List item"
	OpBuyListing     = "Buy listing"
	OpCancelListing  = "Cancel listing"
	OpJoinTournament = "Join tournament"
	OpQueueStatus    = "Tournament status"
	OpResolve        = "Resolve tournament"
)
