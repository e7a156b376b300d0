package models

// Guild is a full guild snapshot as delivered by the event source on initial
// sync. Every field is authoritative at delivery time; the cache overwrites
// wholesale, it never merges.
type Guild struct {
	ID            GuildID
	Name          string
	OwnerID       UserID
	Features      []string
	VanityURLCode string
	Roles         []Role
	Channels      []GuildChannel
	VoiceStates   []VoiceState
}

// PartialGuild is the reduced guild object delivered on incremental guild
// updates. It carries the guild-level fields but not the role/channel lists,
// so it can only refresh the singleton guild record.
type PartialGuild struct {
	ID            GuildID
	Name          string
	OwnerID       UserID
	Features      []string
	VanityURLCode string
}

// Role is a guild role. Position orders roles within the guild: a higher
// position outranks a lower one.
type Role struct {
	ID          RoleID
	Name        string
	Position    int
	Permissions Permissions
}

// GuildChannel is a channel belonging to a guild.
type GuildChannel struct {
	ID   ChannelID
	Name string
}

// VoiceState records which voice channel a user currently occupies.
// A zero ChannelID means the user has left voice entirely.
type VoiceState struct {
	GuildID   GuildID
	ChannelID ChannelID
	UserID    UserID
}
