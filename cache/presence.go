package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/modbot-io/guildcache/keys"
	"github.com/modbot-io/guildcache/models"
)

// SetOnline replaces the guild's online member set and resets its TTL, as
// one MULTI/EXEC batch. Presence is recomputed from full roster snapshots,
// so the set is always rebuilt from scratch — never patched.
func (c *Client) SetOnline(ctx context.Context, guildID models.GuildID, members []models.UserID) error {
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	key := string(keys.OnlineStatus(guildID))
	pipe := c.rdb.TxPipeline()
	pipe.Del(qctx, key)
	if len(members) > 0 {
		ids := make([]any, len(members))
		for i, id := range members {
			ids[i] = id.String()
		}
		pipe.SAdd(qctx, key, ids...)
	}
	pipe.Expire(qctx, key, c.cfg.presenceTTL)
	_, err := pipe.Exec(qctx)
	return err
}

// FindOnline returns the subset of candidates currently in the guild's
// online set, probed with one pipelined membership check per candidate
// rather than a full set fetch. Result order follows candidate order.
func (c *Client) FindOnline(ctx context.Context, guildID models.GuildID, candidates []models.UserID) ([]models.UserID, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	key := string(keys.OnlineStatus(guildID))
	pipe := c.rdb.Pipeline()
	probes := make([]*redis.BoolCmd, len(candidates))
	for i, id := range candidates {
		probes[i] = pipe.SIsMember(qctx, key, id.String())
	}
	if _, err := pipe.Exec(qctx); err != nil {
		return nil, err
	}
	online := make([]models.UserID, 0, len(candidates))
	for i, probe := range probes {
		if probe.Val() {
			online = append(online, candidates[i])
		}
	}
	return online, nil
}
