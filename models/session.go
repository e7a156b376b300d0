package models

// ResumeSession is the reconnect state for one gateway shard. It is stored
// as JSON rather than the binary codec so operators can inspect it with
// plain redis tooling during incident recovery.
type ResumeSession struct {
	SessionID      string `json:"session_id"`
	SequenceNumber uint64 `json:"sequence"`
}
