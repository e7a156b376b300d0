package cache

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/modbot-io/guildcache/codec"
	"github.com/modbot-io/guildcache/keys"
	"github.com/modbot-io/guildcache/models"
)

// CachedUser is the author subset kept with a mirrored message.
type CachedUser struct {
	ID            models.UserID `msgpack:"id"`
	Username      string        `msgpack:"username"`
	Discriminator uint16        `msgpack:"discriminator"`
	Bot           bool          `msgpack:"bot,omitempty"`
	AvatarHash    string        `msgpack:"avatar,omitempty"`
}

// CachedMessage is the stored form of one mirrored message. The message and
// channel ids are excluded from the payload — they are already in the store
// key — and reconstructed on read. Space optimization only; readers always
// see them populated.
type CachedMessage struct {
	ID        models.MessageID `msgpack:"-"`
	ChannelID models.ChannelID `msgpack:"-"`
	GuildID   models.GuildID   `msgpack:"guild_id,omitempty"`
	Content   string           `msgpack:"content"`
	Author    CachedUser       `msgpack:"author"`
}

// PutMessage mirrors a live message for the retention window (MessageTTL by
// default). Entries expire on their own; explicit deletion exists for
// moderation flows that must drop them early.
func (c *Client) PutMessage(ctx context.Context, m *models.Message) error {
	rec := CachedMessage{
		GuildID: m.GuildID,
		Content: m.Content,
		Author: CachedUser{
			ID:            m.Author.ID,
			Username:      m.Author.Username,
			Discriminator: m.Author.Discriminator,
			Bot:           m.Author.Bot,
			AvatarHash:    m.Author.AvatarHash,
		},
	}
	data, err := codec.Marshal(rec)
	if err != nil {
		return err
	}
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	key := string(keys.Messages(m.ChannelID, m.ID))
	return c.rdb.Set(qctx, key, data, c.cfg.messageTTL).Err()
}

// Message returns one mirrored message, or found=false when it was never
// cached or has aged out.
func (c *Client) Message(ctx context.Context, channelID models.ChannelID, messageID models.MessageID) (CachedMessage, bool, error) {
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	data, err := c.rdb.Get(qctx, string(keys.Messages(channelID, messageID))).Bytes()
	if err == redis.Nil {
		return CachedMessage{}, false, nil
	}
	if err != nil {
		return CachedMessage{}, false, err
	}
	var rec CachedMessage
	if err := codec.Unmarshal(data, &rec); err != nil {
		return CachedMessage{}, false, errors.Wrapf(err, "message %s/%s", channelID, messageID)
	}
	rec.ID = messageID
	rec.ChannelID = channelID
	return rec, true, nil
}

// DeleteMessage drops one mirrored message.
func (c *Client) DeleteMessage(ctx context.Context, channelID models.ChannelID, messageID models.MessageID) error {
	return c.BulkDeleteMessages(ctx, channelID, []models.MessageID{messageID})
}

// BulkDeleteMessages drops many mirrored messages from one channel in a
// single round trip. Used after moderation bulk deletes to keep the mirror
// consistent with the origin.
func (c *Client) BulkDeleteMessages(ctx context.Context, channelID models.ChannelID, messageIDs []models.MessageID) error {
	if len(messageIDs) == 0 {
		return nil
	}
	delKeys := make([]string, len(messageIDs))
	for i, id := range messageIDs {
		delKeys[i] = string(keys.Messages(channelID, id))
	}
	qctx, cancel := c.queryCtx(ctx)
	defer cancel()
	return c.rdb.Del(qctx, delKeys...).Err()
}
