package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingApp         = "Starting CashPool RPG"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Storage Configuration
// =============================================================================

const (
	// PoolMaxConnIdleTime closes idle postgres connections after this long
	PoolMaxConnIdleTime = 5 * time.Minute

	// PoolMaxConnLifetime recycles postgres connections after this long
	PoolMaxConnLifetime = time.Hour
)

const (
	LogMsgStoreOpened        = "Economy store opened"
	LogMsgRarityTableLoaded  = "Rarity table loaded"
	ErrMsgFailedConnectDB    = "failed to connect to database"
	ErrMsgFailedMigrateDB    = "failed to migrate database"
	ErrMsgFailedOpenStore    = "failed to open economy store"
	ErrMsgFailedLoadRarity   = "failed to load rarity table"
	ErrMsgFailedCreateEngine = "failed to create loot engine"
	ErrMsgUnknownStoreDriver = "unknown store driver"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoreCloseFailed     = "Economy store close failed"
)
