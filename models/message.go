package models

// User is the author subset of a platform user that the message mirror keeps.
type User struct {
	ID            UserID
	Username      string
	Discriminator uint16
	Bot           bool
	AvatarHash    string
}

// Message is a live chat message as delivered by the event source.
type Message struct {
	ID        MessageID
	ChannelID ChannelID
	GuildID   GuildID
	Content   string
	Author    User
}
