package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modbot-io/guildcache/models"
)

func TestRoleSetHighest(t *testing.T) {
	set := RoleSet{
		{ID: 1, Name: "low", Position: 1},
		{ID: 2, Name: "high", Position: 5},
		{ID: 3, Name: "mid", Position: 3},
	}
	highest, ok := set.Highest()
	assert.True(t, ok)
	assert.Equal(t, "high", highest.Name)

	_, ok = RoleSet{}.Highest()
	assert.False(t, ok)
}

func TestRoleSetHighestPositionTie(t *testing.T) {
	set := RoleSet{
		{ID: 20, Position: 2},
		{ID: 10, Position: 2},
	}
	highest, ok := set.Highest()
	assert.True(t, ok)
	assert.Equal(t, models.RoleID(20), highest.ID)
}

func TestRoleSetCompare(t *testing.T) {
	mod := RoleSet{{ID: 1, Position: 5}}
	member := RoleSet{{ID: 2, Position: 1}}
	empty := RoleSet{}

	assert.Positive(t, mod.Compare(member))
	assert.Negative(t, member.Compare(mod))
	assert.Positive(t, member.Compare(empty))
	assert.Negative(t, empty.Compare(member))
	assert.Zero(t, empty.Compare(RoleSet{}))
}

func TestRoleSetPermissionsUnion(t *testing.T) {
	set := RoleSet{
		{ID: 1, Permissions: models.PermissionSendMessages},
		{ID: 2, Permissions: models.PermissionKickMembers},
	}
	perms := set.Permissions()
	assert.True(t, perms.Has(models.PermissionSendMessages))
	assert.True(t, perms.Has(models.PermissionKickMembers))
	assert.False(t, perms.Has(models.PermissionBanMembers))
}

func TestRoleSetAdministratorEscalation(t *testing.T) {
	set := RoleSet{{ID: 1, Permissions: models.PermissionAdministrator}}
	assert.Equal(t, models.PermissionsAll, set.Permissions())
}

func TestClientRoleSetDropsAbsent(t *testing.T) {
	_, _, c := newTestClient(t)
	ctx := context.Background()
	mustSaveGuild(t, c, testGuild())

	set, err := c.RoleSet(ctx, 1000, []models.RoleID{3001, 8888})
	require.NoError(t, err)
	assert.Len(t, set, 1)
}

// Covers the whole permission matrix for one guild: plain member, admin-role
// member, and owner.
func TestGuildPermissions(t *testing.T) {
	_, _, c := newTestClient(t)
	ctx := context.Background()
	mustSaveGuild(t, c, testGuild())

	// Member with the plain role: exactly its union, plus everyone's bits.
	perms, err := c.GuildPermissions(ctx, 1000, 5001, []models.RoleID{3001})
	require.NoError(t, err)
	assert.True(t, perms.Has(models.PermissionSendMessages))
	assert.True(t, perms.Has(models.PermissionViewChannel)) // implicit everyone role
	assert.False(t, perms.Has(models.PermissionAdministrator))
	assert.NotEqual(t, models.PermissionsAll, perms)

	// Member with the admin role: full set via escalation.
	perms, err = c.GuildPermissions(ctx, 1000, 5002, []models.RoleID{3001, 3002})
	require.NoError(t, err)
	assert.Equal(t, models.PermissionsAll, perms)

	// Owner with zero roles: full set before any role math.
	perms, err = c.GuildPermissions(ctx, 1000, 2000, nil)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionsAll, perms)
}

func TestGuildPermissionsUnknownGuildFailsClosed(t *testing.T) {
	_, _, c := newTestClient(t)

	perms, err := c.GuildPermissions(context.Background(), 424242, 5001, []models.RoleID{3001})
	require.NoError(t, err)
	assert.Equal(t, models.PermissionsNone, perms)
}

func TestGuildPermissionsMemberWithNoRoles(t *testing.T) {
	_, _, c := newTestClient(t)
	ctx := context.Background()
	mustSaveGuild(t, c, testGuild())

	// Only the implicit everyone role applies.
	perms, err := c.GuildPermissions(ctx, 1000, 5003, nil)
	require.NoError(t, err)
	assert.True(t, perms.Has(models.PermissionViewChannel))
	assert.False(t, perms.Has(models.PermissionSendMessages))
}
