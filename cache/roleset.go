package cache

import (
	"context"

	"github.com/modbot-io/guildcache/models"
)

// RoleSet is the resolved collection of one member's role records. It is
// built transiently for permission and hierarchy checks and never persisted
// as its own entity.
type RoleSet []CachedRole

// Highest returns the highest-ranked role in the set. ok is false for an
// empty set.
func (s RoleSet) Highest() (CachedRole, bool) {
	if len(s) == 0 {
		return CachedRole{}, false
	}
	highest := s[0]
	for _, role := range s[1:] {
		if role.Compare(highest) > 0 {
			highest = role
		}
	}
	return highest, true
}

// Compare orders two sets by their highest roles. An empty set ranks below
// any non-empty set; two empty sets are equal. Used for hierarchy checks
// such as "can moderator A act on member B".
func (s RoleSet) Compare(other RoleSet) int {
	left, lok := s.Highest()
	right, rok := other.Highest()
	switch {
	case lok && rok:
		return left.Compare(right)
	case lok:
		return 1
	case rok:
		return -1
	default:
		return 0
	}
}

// Permissions unions the permission bits of every role in the set. A union
// containing the administrator bit escalates to the full set: administrator
// is a set-level property, which is why it is applied here after
// aggregation and not per role.
func (s RoleSet) Permissions() models.Permissions {
	perms := models.PermissionsNone
	for _, role := range s {
		perms |= role.Permissions
	}
	if perms.Has(models.PermissionAdministrator) {
		return models.PermissionsAll
	}
	return perms
}

// RoleSet resolves the given role ids against the guild's container. Ids
// with no cached record are silently dropped.
func (c *Client) RoleSet(ctx context.Context, guildID models.GuildID, roleIDs []models.RoleID) (RoleSet, error) {
	ids := make([]models.Snowflake, len(roleIDs))
	for i, id := range roleIDs {
		ids[i] = id.Snowflake()
	}
	roles, err := FetchResources[CachedRole](ctx, c, guildID, ids)
	if err != nil {
		return nil, err
	}
	return RoleSet(roles), nil
}

// GuildPermissions computes a member's effective guild-level permissions.
//
// Resolution order is load-bearing: an absent guild fails closed to the
// empty set; the recorded owner gets the full set before any role math; and
// only then is the member's role union (including the guild's implicit
// everyone role, whose id equals the guild id) aggregated, with the
// administrator escalation applied to the union.
func (c *Client) GuildPermissions(ctx context.Context, guildID models.GuildID, userID models.UserID, roleIDs []models.RoleID) (models.Permissions, error) {
	ctx, span := tracer.Start(ctx, "cache.GuildPermissions")
	defer span.End()

	guild, found, err := FetchResource[CachedGuild](ctx, c, guildID, guildID.Snowflake())
	if err != nil {
		return models.PermissionsNone, err
	}
	if !found {
		return models.PermissionsNone, nil
	}
	if guild.OwnerID == userID {
		return models.PermissionsAll, nil
	}

	withEveryone := make([]models.RoleID, 0, len(roleIDs)+1)
	withEveryone = append(withEveryone, roleIDs...)
	withEveryone = append(withEveryone, models.RoleID(guildID))
	set, err := c.RoleSet(ctx, guildID, withEveryone)
	if err != nil {
		return models.PermissionsNone, err
	}
	return set.Permissions(), nil
}
