package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modbot-io/guildcache/models"
)

func TestVoiceStateSaveAndLookup(t *testing.T) {
	_, _, c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SaveVoiceState(ctx, models.VoiceState{GuildID: 1000, ChannelID: 4005, UserID: 11}))

	ch, found, err := c.VoiceChannel(ctx, 1000, 11)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.ChannelID(4005), ch)

	_, found, err = c.VoiceChannel(ctx, 1000, 22)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestVoiceStateLeaveRemovesEntry(t *testing.T) {
	_, _, c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SaveVoiceState(ctx, models.VoiceState{GuildID: 1000, ChannelID: 4005, UserID: 11}))
	require.NoError(t, c.SaveVoiceState(ctx, models.VoiceState{GuildID: 1000, ChannelID: 0, UserID: 11}))

	_, found, err := c.VoiceChannel(ctx, 1000, 11)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateGuildVoiceStates(t *testing.T) {
	_, _, c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SaveVoiceState(ctx, models.VoiceState{GuildID: 1000, ChannelID: 4005, UserID: 99}))

	g := testGuild()
	g.VoiceStates = []models.VoiceState{
		{GuildID: 1000, ChannelID: 4005, UserID: 11},
		{GuildID: 1000, ChannelID: 4006, UserID: 22},
		{GuildID: 1000, ChannelID: 0, UserID: 33}, // not in voice, skipped
	}
	require.NoError(t, c.UpdateGuildVoiceStates(ctx, g))

	occupancy, err := c.VoiceChannels(ctx, 1000)
	require.NoError(t, err)
	assert.Equal(t, map[models.UserID]models.ChannelID{
		11: 4005,
		22: 4006,
	}, occupancy)
}

func TestClearVoiceStates(t *testing.T) {
	_, _, c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SaveVoiceState(ctx, models.VoiceState{GuildID: 1000, ChannelID: 4005, UserID: 11}))
	require.NoError(t, c.ClearVoiceStates(ctx, 1000))

	occupancy, err := c.VoiceChannels(ctx, 1000)
	require.NoError(t, err)
	assert.Empty(t, occupancy)
}
