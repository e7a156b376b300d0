package cache

import (
	"github.com/modbot-io/guildcache/keys"
	"github.com/modbot-io/guildcache/models"
)

// GuildResource is the capability a record type implements to live inside a
// guild state container. The kind tag multiplexes heterogeneous kinds into
// one hash; the id addresses the record within its kind. Adding a new
// resource kind means adding a record type with an unused tag — the engine
// in guild.go never changes.
type GuildResource interface {
	// ResourceKind returns the fixed tag byte for this record type.
	// Must be constant per type.
	ResourceKind() keys.ResourceKind
	// ResourceID identifies the record within its guild.
	ResourceID() models.Snowflake
}

// CachedGuild is the stored form of the guild record itself. It is a
// singleton within its container: its hash field is the bare kind tag.
type CachedGuild struct {
	ID            models.GuildID `msgpack:"id"`
	Name          string         `msgpack:"name"`
	Features      []string       `msgpack:"features,omitempty"`
	OwnerID       models.UserID  `msgpack:"owner_id"`
	VanityURLCode string         `msgpack:"vanity_url_code,omitempty"`
}

func (g CachedGuild) ResourceKind() keys.ResourceKind { return keys.KindGuild }
func (g CachedGuild) ResourceID() models.Snowflake    { return g.ID.Snowflake() }

// NewCachedGuild converts a full guild snapshot into its stored record.
// Role, channel, and voice state lists are stored separately.
func NewCachedGuild(g *models.Guild) CachedGuild {
	return CachedGuild{
		ID:            g.ID,
		Name:          g.Name,
		Features:      g.Features,
		OwnerID:       g.OwnerID,
		VanityURLCode: g.VanityURLCode,
	}
}

// NewCachedPartialGuild converts an incremental guild update into the same
// stored record as NewCachedGuild. Both overwrite the singleton wholesale.
func NewCachedPartialGuild(g *models.PartialGuild) CachedGuild {
	return CachedGuild{
		ID:            g.ID,
		Name:          g.Name,
		Features:      g.Features,
		OwnerID:       g.OwnerID,
		VanityURLCode: g.VanityURLCode,
	}
}

// CachedRole is the stored form of one guild role.
type CachedRole struct {
	ID          models.RoleID      `msgpack:"id"`
	Name        string             `msgpack:"name"`
	Position    int                `msgpack:"position"`
	Permissions models.Permissions `msgpack:"permissions"`
}

func (r CachedRole) ResourceKind() keys.ResourceKind { return keys.KindRole }
func (r CachedRole) ResourceID() models.Snowflake    { return r.ID.Snowflake() }

// Compare orders roles by guild hierarchy: higher position outranks lower;
// equal positions break toward the higher ID.
func (r CachedRole) Compare(other CachedRole) int {
	switch {
	case r.Position != other.Position:
		if r.Position < other.Position {
			return -1
		}
		return 1
	case r.ID != other.ID:
		if r.ID < other.ID {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func NewCachedRole(r models.Role) CachedRole {
	return CachedRole{
		ID:          r.ID,
		Name:        r.Name,
		Position:    r.Position,
		Permissions: r.Permissions,
	}
}

// CachedChannel is the stored form of one guild channel.
type CachedChannel struct {
	ID   models.ChannelID `msgpack:"id"`
	Name string           `msgpack:"name"`
}

func (ch CachedChannel) ResourceKind() keys.ResourceKind { return keys.KindChannel }
func (ch CachedChannel) ResourceID() models.Snowflake    { return ch.ID.Snowflake() }

func NewCachedChannel(ch models.GuildChannel) CachedChannel {
	return CachedChannel{ID: ch.ID, Name: ch.Name}
}
