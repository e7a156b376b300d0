package cache

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/modbot-io/guildcache/codec"
	"github.com/modbot-io/guildcache/keys"
	"github.com/modbot-io/guildcache/models"
)

// SavePlaybackState replaces the guild's playback queue record. Durable —
// there is no TTL; the record lives until ClearPlaybackState.
func (c *Client) SavePlaybackState(ctx context.Context, guildID models.GuildID, state *models.PlaybackState) error {
	data, err := codec.MarshalCompressed(state)
	if err != nil {
		return err
	}
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	return c.rdb.Set(qctx, string(keys.PlaybackQueue(guildID)), data, 0).Err()
}

// PlaybackState returns the guild's stored playback queue, or found=false
// when playback state was never saved or has been cleared.
func (c *Client) PlaybackState(ctx context.Context, guildID models.GuildID) (models.PlaybackState, bool, error) {
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	data, err := c.rdb.Get(qctx, string(keys.PlaybackQueue(guildID))).Bytes()
	if err == redis.Nil {
		return models.PlaybackState{}, false, nil
	}
	if err != nil {
		return models.PlaybackState{}, false, err
	}
	var state models.PlaybackState
	if err := codec.UnmarshalCompressed(data, &state); err != nil {
		return models.PlaybackState{}, false, errors.Wrapf(err, "guild %s playback state", guildID)
	}
	return state, true, nil
}

// ClearPlaybackState drops the guild's playback queue record, typically when
// playback ends.
func (c *Client) ClearPlaybackState(ctx context.Context, guildID models.GuildID) error {
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	return c.rdb.Del(qctx, string(keys.PlaybackQueue(guildID))).Err()
}
