package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	PlayersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlayersRegistered,
			Help: HelpTextPlayersRegistered,
		},
	)

	ChestsOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChestsOpened,
			Help: HelpTextChestsOpened,
		},
		[]string{LabelRarity},
	)

	TokensGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTokensGranted,
			Help: HelpTextTokensGranted,
		},
	)

	ListingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameListingsCreated,
			Help: HelpTextListingsCreated,
		},
	)

	ListingsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameListingsCancelled,
			Help: HelpTextListingsCancelled,
		},
	)

	Sales = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSales,
			Help: HelpTextSales,
		},
		[]string{LabelRarity},
	)

	FeesCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFeesCollected,
			Help: HelpTextFeesCollected,
		},
	)

	MarketVolume = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMarketVolume,
			Help: HelpTextMarketVolume,
		},
	)

	TournamentJoins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTournamentJoins,
			Help: HelpTextTournamentJoins,
		},
	)

	TournamentsResolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTournamentsResolved,
			Help: HelpTextTournamentsResolved,
		},
	)

	ChestsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameChestsAwarded,
			Help: HelpTextChestsAwarded,
		},
	)

	StorageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStorageErrors,
			Help: HelpTextStorageErrors,
		},
		[]string{LabelOperation},
	)
)

// RecordStorageError counts err against op when it is a persistence failure.
// Domain rejections are not counted.
func RecordStorageError(op string, err error) {
	if errors.Is(err, domain.ErrStorage) {
		StorageErrors.WithLabelValues(op).Inc()
	}
}
