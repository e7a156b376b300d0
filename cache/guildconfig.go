package cache

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/modbot-io/guildcache/codec"
	"github.com/modbot-io/guildcache/keys"
	"github.com/modbot-io/guildcache/models"
)

// ConfigKind subkeys one configuration record within a guild's config
// container. Persisted values — fixed forever, append-only.
type ConfigKind byte

const (
	ConfigKindLogging      ConfigKind = 0
	ConfigKindModeration   ConfigKind = 1
	ConfigKindVerification ConfigKind = 2
	ConfigKindMusic        ConfigKind = 3
	ConfigKindAnnouncement ConfigKind = 4
)

// GuildConfig is the capability a per-guild configuration record implements.
// Each kind lives under its own subkey and is fetched and replaced
// independently of the others.
type GuildConfig interface {
	// ConfigKind returns the record's fixed subkey. Must be constant per type.
	ConfigKind() ConfigKind
}

// LoggingConfig controls where moderation and message logs are emitted.
type LoggingConfig struct {
	ModlogChannelID        models.ChannelID `msgpack:"modlog_channel_id,omitempty"`
	DeletedMessageLogging  bool             `msgpack:"deleted_message_logging,omitempty"`
	EditedMessageLogging   bool             `msgpack:"edited_message_logging,omitempty"`
}

func (LoggingConfig) ConfigKind() ConfigKind { return ConfigKindLogging }

// ModerationConfig holds the guild's moderation settings.
type ModerationConfig struct {
	MutedRoleID     models.RoleID `msgpack:"muted_role_id,omitempty"`
	EscalationSteps []string      `msgpack:"escalation_steps,omitempty"`
}

func (ModerationConfig) ConfigKind() ConfigKind { return ConfigKindModeration }

// VerificationConfig holds the member verification/approval settings.
type VerificationConfig struct {
	Enabled           bool          `msgpack:"enabled,omitempty"`
	VerifiedRoleID    models.RoleID `msgpack:"verified_role_id,omitempty"`
	MinimumAccountAge uint32        `msgpack:"minimum_account_age,omitempty"`
}

func (VerificationConfig) ConfigKind() ConfigKind { return ConfigKindVerification }

// MusicConfig holds the playback settings.
type MusicConfig struct {
	VoiceChannelID models.ChannelID `msgpack:"voice_channel_id,omitempty"`
	TextChannelID  models.ChannelID `msgpack:"text_channel_id,omitempty"`
	Volume         uint8            `msgpack:"volume,omitempty"`
}

func (MusicConfig) ConfigKind() ConfigKind { return ConfigKindMusic }

// AnnouncementConfig holds join/leave/ban announcement routing.
type AnnouncementConfig struct {
	JoinChannelID  models.ChannelID `msgpack:"join_channel_id,omitempty"`
	LeaveChannelID models.ChannelID `msgpack:"leave_channel_id,omitempty"`
	BanChannelID   models.ChannelID `msgpack:"ban_channel_id,omitempty"`
}

func (AnnouncementConfig) ConfigKind() ConfigKind { return ConfigKindAnnouncement }

func configField(kind ConfigKind) string {
	return string([]byte{byte(kind)})
}

// FetchConfig returns the guild's configuration record of T's kind, or
// found=false when none is stored.
func FetchConfig[T GuildConfig](ctx context.Context, c *Client, guildID models.GuildID) (T, bool, error) {
	var zero T
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	data, err := c.rdb.HGet(qctx, string(keys.GuildConfig(guildID)), configField(zero.ConfigKind())).Bytes()
	if err == redis.Nil {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	var cfg T
	if err := codec.UnmarshalCompressed(data, &cfg); err != nil {
		return zero, false, errors.Wrapf(err, "guild %s config kind %d", guildID, zero.ConfigKind())
	}
	return cfg, true, nil
}

// FetchConfigOrDefault is FetchConfig with absence mapped to the zero-value
// record. It never reports absence: an unconfigured guild behaves as one
// configured with defaults.
func FetchConfigOrDefault[T GuildConfig](ctx context.Context, c *Client, guildID models.GuildID) (T, error) {
	cfg, _, err := FetchConfig[T](ctx, c, guildID)
	return cfg, err
}

// SetConfig replaces the subkeyed record for cfg's kind, leaving the guild's
// other config kinds untouched.
func SetConfig(ctx context.Context, c *Client, guildID models.GuildID, cfg GuildConfig) error {
	data, err := codec.MarshalCompressed(cfg)
	if err != nil {
		return err
	}
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	return c.rdb.HSet(qctx, string(keys.GuildConfig(guildID)), configField(cfg.ConfigKind()), data).Err()
}
