package player

import "time"

// Registration cache defaults
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 10 * time.Minute
)

// Formatted error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgGetPlayerFailed         = "failed to get player: %w"
	ErrMsgSavePlayerFailed        = "failed to save player: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgRegisterCalled   = "Register called"
	LogMsgPlayerCreated    = "Player profile created"
	LogMsgPlayerRenamed    = "Player display name refreshed"
	LogMsgGetProfileCalled = "GetProfile called"
)

// Metric operation labels
const (
	OpRegister   = "register"
	OpGetProfile = "get_profile"
)
