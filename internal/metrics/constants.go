package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNamePlayersRegistered   = "players_registered_total"
	MetricNameChestsOpened        = "chests_opened_total"
	MetricNameTokensGranted       = "tokens_granted_total"
	MetricNameListingsCreated     = "market_listings_created_total"
	MetricNameListingsCancelled   = "market_listings_cancelled_total"
	MetricNameSales               = "market_sales_total"
	MetricNameFeesCollected       = "market_fees_collected_total"
	MetricNameMarketVolume        = "market_volume_tokens_total"
	MetricNameTournamentJoins     = "tournament_joins_total"
	MetricNameTournamentsResolved = "tournaments_resolved_total"
	MetricNameChestsAwarded       = "tournament_chests_awarded_total"
	MetricNameStorageErrors       = "storage_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextPlayersRegistered   = "Total number of new player profiles created"
	HelpTextChestsOpened        = "Total number of chests opened, by rarity rolled"
	HelpTextTokensGranted       = "Total tokens granted by chest bonuses"
	HelpTextListingsCreated     = "Total number of marketplace listings created"
	HelpTextListingsCancelled   = "Total number of marketplace listings cancelled by their seller"
	HelpTextSales               = "Total number of marketplace sales, by item rarity"
	HelpTextFeesCollected       = "Total tokens retained as marketplace fees"
	HelpTextMarketVolume        = "Total tokens paid by buyers on the marketplace"
	HelpTextTournamentJoins     = "Total number of tournament queue joins"
	HelpTextTournamentsResolved = "Total number of tournaments resolved"
	HelpTextChestsAwarded       = "Total chests awarded by tournament resolution"
	HelpTextStorageErrors       = "Total number of failed store operations, by operation"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelRarity    = "rarity"
	LabelOperation = "operation"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines latency buckets in seconds
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
