package cache

import (
	"context"
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"github.com/modbot-io/guildcache/keys"
	"github.com/modbot-io/guildcache/models"
)

// SaveResumeSessions stores reconnect state for a shard group, one JSON
// entry per shard. Entries that fail to serialize are dropped rather than
// failing the batch — partial session recovery beats none. The group key
// distinguishes independent deployments sharing one store.
func (c *Client) SaveResumeSessions(ctx context.Context, group string, sessions map[int]models.ResumeSession) error {
	pairs := make([]any, 0, 2*len(sessions))
	var dropped int
	for shard, session := range sessions {
		data, err := json.Marshal(session)
		if err != nil {
			dropped++
			continue
		}
		pairs = append(pairs, strconv.Itoa(shard), data)
	}
	if dropped > 0 {
		c.cfg.log.Debug("dropped unserializable resume sessions",
			zap.String("group", group),
			zap.Int("dropped", dropped))
	}
	if len(pairs) == 0 {
		return nil
	}
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	return c.rdb.HSet(qctx, string(keys.ResumeState(group)), pairs...).Err()
}

// ResumeSessions returns the shard group's stored reconnect state. Entries
// that fail to parse — shard field or session body — are dropped from the
// result; the read as a whole only fails on a transport error.
func (c *Client) ResumeSessions(ctx context.Context, group string) (map[int]models.ResumeSession, error) {
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	fields, err := c.rdb.HGetAll(qctx, string(keys.ResumeState(group))).Result()
	if err != nil {
		return nil, err
	}
	sessions := make(map[int]models.ResumeSession, len(fields))
	var dropped int
	for field, raw := range fields {
		shard, err := strconv.Atoi(field)
		if err != nil {
			dropped++
			continue
		}
		var session models.ResumeSession
		if err := json.Unmarshal([]byte(raw), &session); err != nil {
			dropped++
			continue
		}
		sessions[shard] = session
	}
	if dropped > 0 {
		c.cfg.log.Debug("dropped undecodable resume sessions",
			zap.String("group", group),
			zap.Int("dropped", dropped))
	}
	return sessions, nil
}
