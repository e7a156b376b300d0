package models

import "strconv"

// Snowflake is the platform-issued 64-bit identifier shared by every entity
// kind. The typed aliases below exist so that a RoleID can never be passed
// where a ChannelID is expected; convert through Snowflake() at boundaries
// that are genuinely kind-agnostic (key encoding, generic cache lookups).
type Snowflake uint64

func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// ParseSnowflake parses the decimal form used on the wire and in CLI input.
func ParseSnowflake(s string) (Snowflake, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return Snowflake(v), err
}

type GuildID Snowflake

func (id GuildID) Snowflake() Snowflake { return Snowflake(id) }
func (id GuildID) String() string       { return Snowflake(id).String() }

type ChannelID Snowflake

func (id ChannelID) Snowflake() Snowflake { return Snowflake(id) }
func (id ChannelID) String() string       { return Snowflake(id).String() }

type RoleID Snowflake

func (id RoleID) Snowflake() Snowflake { return Snowflake(id) }
func (id RoleID) String() string       { return Snowflake(id).String() }

type UserID Snowflake

func (id UserID) Snowflake() Snowflake { return Snowflake(id) }
func (id UserID) String() string       { return Snowflake(id).String() }

type MessageID Snowflake

func (id MessageID) Snowflake() Snowflake { return Snowflake(id) }
func (id MessageID) String() string       { return Snowflake(id).String() }
