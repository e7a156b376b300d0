package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modbot-io/guildcache/keys"
	"github.com/modbot-io/guildcache/models"
)

func TestResumeSessionsRoundTrip(t *testing.T) {
	_, _, c := newTestClient(t)
	ctx := context.Background()

	in := map[int]models.ResumeSession{
		0: {SessionID: "abc", SequenceNumber: 100},
		1: {SessionID: "def", SequenceNumber: 250},
	}
	require.NoError(t, c.SaveResumeSessions(ctx, "main", in))

	got, err := c.ResumeSessions(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestResumeSessionsEmptyGroup(t *testing.T) {
	_, _, c := newTestClient(t)

	got, err := c.ResumeSessions(context.Background(), "nothing-here")
	require.NoError(t, err)
	assert.Empty(t, got)

	// Saving an empty map is a no-op, not an error.
	require.NoError(t, c.SaveResumeSessions(context.Background(), "nothing-here", nil))
}

func TestResumeSessionsDropBadEntries(t *testing.T) {
	_, rdb, c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SaveResumeSessions(ctx, "main", map[int]models.ResumeSession{
		0: {SessionID: "abc", SequenceNumber: 100},
	}))

	key := string(keys.ResumeState("main"))
	// A shard whose body is not JSON, and a field that is not a shard number.
	require.NoError(t, rdb.HSet(ctx, key, "1", "{not json").Err())
	require.NoError(t, rdb.HSet(ctx, key, "not-a-shard", `{"session_id":"x","sequence":1}`).Err())

	got, err := c.ResumeSessions(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, map[int]models.ResumeSession{
		0: {SessionID: "abc", SequenceNumber: 100},
	}, got)
}

func TestResumeSessionsOverwritePerShard(t *testing.T) {
	_, _, c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SaveResumeSessions(ctx, "main", map[int]models.ResumeSession{
		0: {SessionID: "abc", SequenceNumber: 100},
		1: {SessionID: "def", SequenceNumber: 250},
	}))
	require.NoError(t, c.SaveResumeSessions(ctx, "main", map[int]models.ResumeSession{
		1: {SessionID: "ghi", SequenceNumber: 300},
	}))

	got, err := c.ResumeSessions(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, map[int]models.ResumeSession{
		0: {SessionID: "abc", SequenceNumber: 100},
		1: {SessionID: "ghi", SequenceNumber: 300},
	}, got)
}
