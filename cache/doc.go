// Package cache mirrors a chat platform's guild state into Redis so that
// sibling services can answer permission, presence, and lookup questions
// without a synchronous round trip to the origin API.
//
// # Client
//
// Every operation goes through a [Client] wrapping an injected
// redis.UniversalClient. The handle is internally synchronized and shared;
// the caller owns its lifecycle. Construction uses functional options:
//
//	c := cache.New(rdb,
//	    cache.WithLogger(log),
//	    cache.WithQueryTimeout(2*time.Second),
//	)
//
// Each round trip is bounded by the configured query timeout. The cache
// never retries internally — a timeout or transport error propagates to the
// caller, who knows whether the surrounding operation is worth retrying.
//
// # Guild resources
//
// Each guild owns one Redis hash holding the guild record plus every role
// and channel, multiplexed by a one-byte kind tag in the field (see the keys
// package). Record types implement [GuildResource]; package-level generic
// functions dispatch on the record type because Go interfaces cannot carry
// type parameters:
//
//	role, found, err := cache.FetchResource[cache.CachedRole](ctx, c, guildID, roleID.Snowflake())
//
// [SaveGuild] replaces a guild's container atomically via MULTI/EXEC:
// concurrent readers observe the old snapshot or the new one, never a mix.
// [FetchResources] batches lookups and silently drops absent ids, so its
// result may be shorter than its argument. [FetchAllResources] scans the
// whole container and skips entries that are unrecognized or fail to
// decode — one poison record cannot hide a guild's remaining resources.
//
// The mirror is written by a single authoritative event consumer per guild;
// this package provides atomicity for its batches but no cross-writer
// coordination.
//
// # Permissions
//
// [Client.GuildPermissions] resolves a member's effective guild-level
// permissions from the mirrored records: absent guild fails closed, the
// owner gets every permission before any role math, and the member's role
// union (with the implicit everyone role) escalates to the full set when it
// contains the administrator bit. [RoleSet] also orders members for
// hierarchy checks via its highest role.
//
// # Ancillary state
//
// Presence ([Client.SetOnline], [Client.FindOnline]) is an ephemeral
// TTL-bound member set, rebuilt wholesale from roster snapshots. Messages
// ([Client.PutMessage], [Client.Message]) are mirrored for a day with their
// ids stripped into the key. Per-guild configuration ([FetchConfigOrDefault],
// [SetConfig]) is durable and subkeyed by [ConfigKind]. Voice occupancy,
// gateway resume sessions (best-effort JSON, inspectable with redis-cli),
// and the playback queue round out the mirrored surface.
//
// # Absence versus failure
//
// A missing key or field is never an error: reads return found=false (or an
// empty/zero result where the contract says so, as in [FetchConfigOrDefault]).
// Errors mean the store was unreachable or a stored payload is corrupt.
package cache
