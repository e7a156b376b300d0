package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/modbot-io/guildcache/keys"
	"github.com/modbot-io/guildcache/models"
)

// SaveVoiceState records which channel a user occupies. A state with a zero
// ChannelID means the user left voice and removes their entry instead.
func (c *Client) SaveVoiceState(ctx context.Context, state models.VoiceState) error {
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	key := string(keys.VoiceState(state.GuildID))
	if state.ChannelID == 0 {
		return c.rdb.HDel(qctx, key, state.UserID.String()).Err()
	}
	return c.rdb.HSet(qctx, key, state.UserID.String(), state.ChannelID.String()).Err()
}

// UpdateGuildVoiceStates rebuilds the guild's entire voice occupancy map
// from a full snapshot, atomically.
func (c *Client) UpdateGuildVoiceStates(ctx context.Context, g *models.Guild) error {
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	key := string(keys.VoiceState(g.ID))
	pipe := c.rdb.TxPipeline()
	pipe.Del(qctx, key)
	for _, state := range g.VoiceStates {
		if state.ChannelID == 0 {
			continue
		}
		pipe.HSet(qctx, key, state.UserID.String(), state.ChannelID.String())
	}
	_, err := pipe.Exec(qctx)
	return err
}

// VoiceChannel returns the channel a user currently occupies, or found=false
// when they are not in voice.
func (c *Client) VoiceChannel(ctx context.Context, guildID models.GuildID, userID models.UserID) (models.ChannelID, bool, error) {
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	val, err := c.rdb.HGet(qctx, string(keys.VoiceState(guildID)), userID.String()).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := models.ParseSnowflake(val)
	if err != nil {
		return 0, false, err
	}
	return models.ChannelID(id), true, nil
}

// VoiceChannels returns the guild's full voice occupancy map. Entries whose
// fields or values do not parse are skipped.
func (c *Client) VoiceChannels(ctx context.Context, guildID models.GuildID) (map[models.UserID]models.ChannelID, error) {
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	fields, err := c.rdb.HGetAll(qctx, string(keys.VoiceState(guildID))).Result()
	if err != nil {
		return nil, err
	}
	occupancy := make(map[models.UserID]models.ChannelID, len(fields))
	for user, channel := range fields {
		userID, err := models.ParseSnowflake(user)
		if err != nil {
			continue
		}
		channelID, err := models.ParseSnowflake(channel)
		if err != nil {
			continue
		}
		occupancy[models.UserID(userID)] = models.ChannelID(channelID)
	}
	return occupancy, nil
}

// ClearVoiceStates drops the guild's voice occupancy map.
func (c *Client) ClearVoiceStates(ctx context.Context, guildID models.GuildID) error {
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	return c.rdb.Del(qctx, string(keys.VoiceState(guildID))).Err()
}
