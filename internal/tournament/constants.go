package tournament

// Chest awards on resolution
const (
	ParticipationChests = 1
	WinnerBonusChests   = 1
)

// Formatted error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgGetPlayerFailed         = "failed to get player: %w"
	ErrMsgSavePlayerFailed        = "failed to save player: %w"
	ErrMsgGetQueueFailed          = "failed to get tournament queue: %w"
	ErrMsgSaveQueueFailed         = "failed to save tournament queue: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgUnknownParticipant      = "queued player %s has no profile"
)

// Log messages
const (
	LogMsgJoinCalled        = "Join called"
	LogMsgPlayerQueued      = "Player joined tournament queue"
	LogMsgQueueFull         = "Join rejected, tournament queue is full"
	LogMsgResolveCalled     = "Resolve called"
	LogMsgTournamentSettled = "Tournament resolved"
)

// Metric operation labels
const (
	OpJoin    = "join"
	OpStatus  = "status"
	OpResolve = "resolve"
)
