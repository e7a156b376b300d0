package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modbot-io/guildcache/models"
)

func testMessage() *models.Message {
	return &models.Message{
		ID:        9001,
		ChannelID: 4001,
		GuildID:   1000,
		Content:   "hello there",
		Author: models.User{
			ID:            5001,
			Username:      "someone",
			Discriminator: 1234,
		},
	}
}

func TestMessagePutAndGet(t *testing.T) {
	_, _, c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.PutMessage(ctx, testMessage()))

	got, found, err := c.Message(ctx, 4001, 9001)
	require.NoError(t, err)
	require.True(t, found)
	// Ids come back from the key even though the payload omits them.
	assert.Equal(t, models.MessageID(9001), got.ID)
	assert.Equal(t, models.ChannelID(4001), got.ChannelID)
	assert.Equal(t, "hello there", got.Content)
	assert.Equal(t, "someone", got.Author.Username)
}

func TestMessageAbsent(t *testing.T) {
	_, _, c := newTestClient(t)

	_, found, err := c.Message(context.Background(), 4001, 404)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMessageExpiry(t *testing.T) {
	mr, _, c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.PutMessage(ctx, testMessage()))
	mr.FastForward(MessageTTL + time.Minute)

	_, found, err := c.Message(ctx, 4001, 9001)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMessageBulkDelete(t *testing.T) {
	_, _, c := newTestClient(t)
	ctx := context.Background()

	for _, id := range []models.MessageID{9001, 9002, 9003} {
		m := testMessage()
		m.ID = id
		require.NoError(t, c.PutMessage(ctx, m))
	}

	require.NoError(t, c.BulkDeleteMessages(ctx, 4001, []models.MessageID{9001, 9003}))

	_, found, err := c.Message(ctx, 4001, 9001)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = c.Message(ctx, 4001, 9002)
	require.NoError(t, err)
	assert.True(t, found)

	// Empty id list is a no-op.
	require.NoError(t, c.BulkDeleteMessages(ctx, 4001, nil))
}
