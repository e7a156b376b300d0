package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/modbot-io/guildcache/models"
)

func newTestClient(t *testing.T, opts ...Option) (*miniredis.Miniredis, *redis.Client, *Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb, New(rdb, opts...)
}

func testGuild() *models.Guild {
	return &models.Guild{
		ID:      1000,
		Name:    "test guild",
		OwnerID: 2000,
		Roles: []models.Role{
			{ID: 1000, Name: "everyone", Position: 0, Permissions: models.PermissionViewChannel},
			{ID: 3001, Name: "member", Position: 1, Permissions: models.PermissionSendMessages},
			{ID: 3002, Name: "admin", Position: 2, Permissions: models.PermissionAdministrator},
		},
		Channels: []models.GuildChannel{
			{ID: 4001, Name: "general"},
			{ID: 4002, Name: "modlog"},
		},
	}
}

func mustSaveGuild(t *testing.T, c *Client, g *models.Guild) {
	t.Helper()
	if err := SaveGuild(context.Background(), c, g); err != nil {
		t.Fatalf("SaveGuild: %v", err)
	}
}
