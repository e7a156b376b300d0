// Package keys encodes the composite identifiers used to address mirrored
// guild state in Redis.
//
// Two layers of keys exist. Top-level keys select an entry in the store and
// are write-only: they are built from typed constructors and never parsed
// back. Guild hash fields multiplex heterogeneous resource kinds inside one
// per-guild container and must round-trip, because bulk scans recover the
// kind and resource id from the field bytes.
//
// Both layers are byte-stable: the same logical identifier always encodes to
// the same bytes, and identifiers differing in category or any id never
// collide (distinct leading tag bytes per category, fixed-width big-endian
// ids after the tag).
package keys

import (
	"encoding/binary"

	"github.com/modbot-io/guildcache/models"
)

// Key is a canonical top-level store key. Redis keys are binary-safe, so the
// encoding is a raw tag byte followed by fixed-width ids rather than a
// printable string; compactness matters more than readability at this volume.
type Key string

// Top-level key categories. The tag byte is part of the persisted layout:
// never reorder or reuse a value, only append.
const (
	tagGuildConfig   byte = 0
	tagOnlineStatus  byte = 1
	tagGuildState    byte = 2
	tagMessages      byte = 3
	tagVoiceState    byte = 4
	tagResumeState   byte = 5
	tagPlaybackQueue byte = 6
)

func encode(tag byte, ids ...models.Snowflake) Key {
	buf := make([]byte, 1+8*len(ids))
	buf[0] = tag
	for i, id := range ids {
		binary.BigEndian.PutUint64(buf[1+8*i:], uint64(id))
	}
	return Key(buf)
}

// GuildConfig addresses the per-guild configuration container.
func GuildConfig(id models.GuildID) Key {
	return encode(tagGuildConfig, id.Snowflake())
}

// OnlineStatus addresses the guild's online member set.
func OnlineStatus(id models.GuildID) Key {
	return encode(tagOnlineStatus, id.Snowflake())
}

// GuildState addresses the guild's resource container.
func GuildState(id models.GuildID) Key {
	return encode(tagGuildState, id.Snowflake())
}

// Messages addresses one cached message.
func Messages(channelID models.ChannelID, messageID models.MessageID) Key {
	return encode(tagMessages, channelID.Snowflake(), messageID.Snowflake())
}

// VoiceState addresses the guild's voice occupancy map.
func VoiceState(id models.GuildID) Key {
	return encode(tagVoiceState, id.Snowflake())
}

// ResumeState addresses the resume-session container for one shard group.
// The group key is an external identifier, stored verbatim after the tag.
func ResumeState(group string) Key {
	return Key(append([]byte{tagResumeState}, group...))
}

// PlaybackQueue addresses the guild's playback queue record.
func PlaybackQueue(id models.GuildID) Key {
	return encode(tagPlaybackQueue, id.Snowflake())
}

// ResourceKind tags one resource kind inside a guild state container.
// Like the top-level tags these are persisted: a kind's value is fixed
// forever and new kinds take the next unused value.
type ResourceKind byte

const (
	KindGuild   ResourceKind = 1
	KindRole    ResourceKind = 2
	KindChannel ResourceKind = 3
)

// GuildField encodes a guild hash field for one resource. The guild record
// is a singleton per container, so KindGuild encodes as the bare tag; every
// other kind appends the resource's id.
func GuildField(kind ResourceKind, id models.Snowflake) string {
	if kind == KindGuild {
		return string([]byte{byte(kind)})
	}
	var buf [9]byte
	buf[0] = byte(kind)
	binary.BigEndian.PutUint64(buf[1:], uint64(id))
	return string(buf[:])
}

// ParseGuildField decodes a guild hash field back into its kind and resource
// id. It is total: fields that are malformed or carry an unrecognized kind
// return ok=false so that bulk scans can skip them instead of failing.
func ParseGuildField(field string) (kind ResourceKind, id models.Snowflake, ok bool) {
	if len(field) == 0 {
		return 0, 0, false
	}
	kind = ResourceKind(field[0])
	switch kind {
	case KindGuild:
		if len(field) != 1 {
			return 0, 0, false
		}
		return kind, 0, true
	case KindRole, KindChannel:
		if len(field) != 9 {
			return 0, 0, false
		}
		return kind, models.Snowflake(binary.BigEndian.Uint64([]byte(field[1:]))), true
	default:
		return 0, 0, false
	}
}
