package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// Migration dialects
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString  = "failed to parse connection string"
	ErrMsgFailedToCreatePool       = "failed to create connection pool"
	ErrMsgFailedToPingDatabase     = "failed to ping database"
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToRunMigrations    = "failed to run migrations"
	ErrMsgUnknownDialect           = "unknown migration dialect"
)

// Error Messages - Documents
const (
	ErrMsgEncodePlayer   = "encode player"
	ErrMsgDecodePlayer   = "decode player"
	ErrMsgEncodeListings = "encode listings"
	ErrMsgDecodeListings = "decode listings"
	ErrMsgEncodeQueue    = "encode tournament queue"
	ErrMsgDecodeQueue    = "decode tournament queue"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
