package models

// Track is one queued playback entry.
type Track struct {
	URL         string `msgpack:"url"`
	Title       string `msgpack:"title"`
	RequestedBy UserID `msgpack:"requested_by"`
}

// PlaybackState is the full playback queue for one guild. It is saved as a
// single record and replaced wholesale on every change; there is no
// incremental queue mutation through the cache.
type PlaybackState struct {
	ChannelID ChannelID `msgpack:"channel_id"`
	Volume    int       `msgpack:"volume"`
	Paused    bool      `msgpack:"paused"`
	Tracks    []Track   `msgpack:"tracks"`
}
