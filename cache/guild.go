package cache

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/modbot-io/guildcache/codec"
	"github.com/modbot-io/guildcache/keys"
	"github.com/modbot-io/guildcache/models"
)

// SaveResource writes one resource record into its guild's container. The
// container is created implicitly by the first write; the record is replaced
// wholesale, never merged.
func SaveResource(ctx context.Context, c *Client, guildID models.GuildID, r GuildResource) error {
	data, err := codec.Marshal(r)
	if err != nil {
		return err
	}
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	field := keys.GuildField(r.ResourceKind(), r.ResourceID())
	return c.rdb.HSet(qctx, string(keys.GuildState(guildID)), field, data).Err()
}

// SaveGuild replaces the guild's entire container with the snapshot's guild
// record plus every role and channel, as one MULTI/EXEC batch. Readers see
// either the old container or the new one, never a half-replaced mix.
func SaveGuild(ctx context.Context, c *Client, g *models.Guild) error {
	ctx, span := tracer.Start(ctx, "cache.SaveGuild")
	defer span.End()

	// Marshal everything up front so a bad record can't abort mid-batch.
	pairs := make([]any, 0, 2*(1+len(g.Roles)+len(g.Channels)))
	add := func(r GuildResource) error {
		data, err := codec.Marshal(r)
		if err != nil {
			return err
		}
		pairs = append(pairs, keys.GuildField(r.ResourceKind(), r.ResourceID()), data)
		return nil
	}
	if err := add(NewCachedGuild(g)); err != nil {
		return err
	}
	for _, role := range g.Roles {
		if err := add(NewCachedRole(role)); err != nil {
			return errors.Wrapf(err, "role %s", role.ID)
		}
	}
	for _, ch := range g.Channels {
		if err := add(NewCachedChannel(ch)); err != nil {
			return errors.Wrapf(err, "channel %s", ch.ID)
		}
	}

	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	key := string(keys.GuildState(g.ID))
	pipe := c.rdb.TxPipeline()
	pipe.Del(qctx, key)
	pipe.HSet(qctx, key, pairs...)
	_, err := pipe.Exec(qctx)
	return err
}

// FetchResource returns one record from the guild's container, or
// found=false when either the container or the field is absent. Absence is
// not an error.
func FetchResource[T GuildResource](ctx context.Context, c *Client, guildID models.GuildID, resourceID models.Snowflake) (T, bool, error) {
	var zero T
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	field := keys.GuildField(zero.ResourceKind(), resourceID)
	data, err := c.rdb.HGet(qctx, string(keys.GuildState(guildID)), field).Bytes()
	if err == redis.Nil {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	var rec T
	if err := codec.Unmarshal(data, &rec); err != nil {
		return zero, false, errors.Wrapf(err, "guild %s resource %s", guildID, resourceID)
	}
	return rec, true, nil
}

// FetchResources performs a batched lookup. Zero ids return an empty result
// without touching the store; one id defers to FetchResource; more issue a
// single multiplexed round trip. Absent ids are dropped from the result, so
// the result may be shorter than the request.
func FetchResources[T GuildResource](ctx context.Context, c *Client, guildID models.GuildID, resourceIDs []models.Snowflake) ([]T, error) {
	switch len(resourceIDs) {
	case 0:
		return nil, nil
	case 1:
		rec, found, err := FetchResource[T](ctx, c, guildID, resourceIDs[0])
		if err != nil || !found {
			return nil, err
		}
		return []T{rec}, nil
	}

	var zero T
	fields := make([]string, len(resourceIDs))
	for i, id := range resourceIDs {
		fields[i] = keys.GuildField(zero.ResourceKind(), id)
	}
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	vals, err := c.rdb.HMGet(qctx, string(keys.GuildState(guildID)), fields...).Result()
	if err != nil {
		return nil, err
	}
	recs := make([]T, 0, len(vals))
	for i, val := range vals {
		if val == nil {
			continue
		}
		raw, ok := val.(string)
		if !ok {
			return nil, errors.Newf("guild %s resource %s: unexpected reply type %T", guildID, resourceIDs[i], val)
		}
		var rec T
		if err := codec.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, errors.Wrapf(err, "guild %s resource %s", guildID, resourceIDs[i])
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// FetchAllResources scans the guild's container and decodes every record of
// T's kind, keyed by resource id. Fields of other kinds are skipped, as are
// unrecognized fields and records that fail to decode — one poison entry
// must not hide the rest of the guild. Skipped corruption is reported at
// debug level.
//
// The scan reads the whole container regardless of how few records match,
// so cost grows with total container size. Acceptable for ordinary guilds;
// avoid calling it in tight loops for very large ones.
func FetchAllResources[T GuildResource](ctx context.Context, c *Client, guildID models.GuildID) (map[models.Snowflake]T, error) {
	ctx, span := tracer.Start(ctx, "cache.FetchAllResources")
	defer span.End()

	var zero T
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	fields, err := c.rdb.HGetAll(qctx, string(keys.GuildState(guildID))).Result()
	if err != nil {
		return nil, err
	}
	recs := make(map[models.Snowflake]T)
	var skipped int
	for field, raw := range fields {
		kind, id, ok := keys.ParseGuildField(field)
		if !ok {
			skipped++
			continue
		}
		if kind != zero.ResourceKind() {
			continue
		}
		var rec T
		if err := codec.Unmarshal([]byte(raw), &rec); err != nil {
			skipped++
			continue
		}
		recs[id] = rec
	}
	if skipped > 0 {
		c.cfg.log.Debug("skipped undecodable guild container entries",
			zap.String("guild_id", guildID.String()),
			zap.Int("skipped", skipped))
	}
	return recs, nil
}

// DeleteResource removes one record of T's kind from the guild's container.
func DeleteResource[T GuildResource](ctx context.Context, c *Client, guildID models.GuildID, resourceID models.Snowflake) error {
	var zero T
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	field := keys.GuildField(zero.ResourceKind(), resourceID)
	return c.rdb.HDel(qctx, string(keys.GuildState(guildID)), field).Err()
}

// DeleteGuild removes the guild's entire container.
func (c *Client) DeleteGuild(ctx context.Context, guildID models.GuildID) error {
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	return c.rdb.Del(qctx, string(keys.GuildState(guildID))).Err()
}
