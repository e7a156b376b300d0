package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/modbot-io/guildcache/cache")

// DefaultQueryTimeout bounds every store round trip. It prevents indefinite
// hangs on slow or unresponsive Redis; callers treat the resulting error as
// transient and decide their own retry policy.
const DefaultQueryTimeout = 5 * time.Second

// PresenceTTL is how long an online set survives without a refresh. Presence
// is rebuilt from full roster snapshots, so a stale set ages out on its own.
const PresenceTTL = time.Hour

// MessageTTL is how long mirrored messages are retained.
const MessageTTL = 24 * time.Hour

type config struct {
	queryTimeout time.Duration
	presenceTTL  time.Duration
	messageTTL   time.Duration
	log          *zap.Logger
}

// Option configures a Client.
type Option func(*config)

func defaultConfig() config {
	return config{
		queryTimeout: DefaultQueryTimeout,
		presenceTTL:  PresenceTTL,
		messageTTL:   MessageTTL,
		log:          zap.NewNop(),
	}
}

// WithQueryTimeout sets the per-operation timeout for store round trips.
// Defaults to DefaultQueryTimeout.
func WithQueryTimeout(d time.Duration) Option {
	return func(c *config) { c.queryTimeout = d }
}

// WithPresenceTTL overrides the online-set TTL. Defaults to PresenceTTL.
func WithPresenceTTL(d time.Duration) Option {
	return func(c *config) { c.presenceTTL = d }
}

// WithMessageTTL overrides the message retention window. Defaults to
// MessageTTL.
func WithMessageTTL(d time.Duration) Option {
	return func(c *config) { c.messageTTL = d }
}

// WithLogger sets the logger used for debug-level skip/drop reporting.
// Defaults to a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) { c.log = log }
}

// Client provides every mirror operation over one shared Redis handle.
// The handle is internally synchronized, so a single Client may be used from
// any number of goroutines. The caller owns the handle's lifecycle — Client
// never closes it.
type Client struct {
	rdb redis.UniversalClient
	cfg config
}

// New returns a Client over the given Redis handle.
func New(rdb redis.UniversalClient, opts ...Option) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Client{rdb: rdb, cfg: cfg}
}

func (c *Client) queryCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, c.cfg.queryTimeout)
}
