package market

// Formatted error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgGetPlayerFailed         = "failed to get player: %w"
	ErrMsgSavePlayerFailed        = "failed to save player: %w"
	ErrMsgGetListingsFailed       = "failed to get listings: %w"
	ErrMsgSaveListingsFailed      = "failed to save listings: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgUnknownSeller           = "listing %s references unknown seller %s"
)

// Log messages
const (
	LogMsgListItemCalled    = "ListItem called"
	LogMsgItemListed        = "Item listed"
	LogMsgBuyCalled         = "Buy called"
	LogMsgListingSold       = "Listing sold"
	LogMsgInsufficientFunds = "Purchase rejected, insufficient funds"
	LogMsgCancelCalled      = "CancelListing called"
	LogMsgListingCancelled  = "Listing cancelled"
	LogMsgBrowseCalled      = "Browse called"
)

// Metric operation labels
const (
	OpListItem      = "list_item"
	OpBrowse        = "browse"
	OpBuy           = "buy"
	OpCancelListing = "cancel_listing"
)
