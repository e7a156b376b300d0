package models

// Permissions is the guild-level permission bit-set. Bit positions follow the
// chat platform's wire values; the set is additive and order-independent, so
// a member's effective permissions are the union of their roles' bits (plus
// the owner and administrator escalations applied by the cache layer).
type Permissions uint64

const (
	PermissionCreateInstantInvite Permissions = 1 << 0
	PermissionKickMembers         Permissions = 1 << 1
	PermissionBanMembers          Permissions = 1 << 2
	PermissionAdministrator       Permissions = 1 << 3
	PermissionManageChannels      Permissions = 1 << 4
	PermissionManageGuild         Permissions = 1 << 5
	PermissionAddReactions        Permissions = 1 << 6
	PermissionViewAuditLog        Permissions = 1 << 7
	PermissionPrioritySpeaker     Permissions = 1 << 8
	PermissionStream              Permissions = 1 << 9
	PermissionViewChannel         Permissions = 1 << 10
	PermissionSendMessages        Permissions = 1 << 11
	PermissionSendTTSMessages     Permissions = 1 << 12
	PermissionManageMessages      Permissions = 1 << 13
	PermissionEmbedLinks          Permissions = 1 << 14
	PermissionAttachFiles         Permissions = 1 << 15
	PermissionReadMessageHistory  Permissions = 1 << 16
	PermissionMentionEveryone     Permissions = 1 << 17
	PermissionUseExternalEmojis   Permissions = 1 << 18
	PermissionViewGuildInsights   Permissions = 1 << 19
	PermissionConnect             Permissions = 1 << 20
	PermissionSpeak               Permissions = 1 << 21
	PermissionMuteMembers         Permissions = 1 << 22
	PermissionDeafenMembers       Permissions = 1 << 23
	PermissionMoveMembers         Permissions = 1 << 24
	PermissionUseVAD              Permissions = 1 << 25
	PermissionChangeNickname      Permissions = 1 << 26
	PermissionManageNicknames     Permissions = 1 << 27
	PermissionManageRoles         Permissions = 1 << 28
	PermissionManageWebhooks      Permissions = 1 << 29
	PermissionManageExpressions   Permissions = 1 << 30
	PermissionUseApplicationCmds  Permissions = 1 << 31
	PermissionManageEvents        Permissions = 1 << 33
	PermissionManageThreads       Permissions = 1 << 34
	PermissionCreatePublicThreads Permissions = 1 << 35
	PermissionSendThreadMessages  Permissions = 1 << 38
	PermissionModerateMembers     Permissions = 1 << 40
)

// PermissionsNone is the empty set, returned when permission resolution
// fails closed (unknown guild, no resolvable roles).
const PermissionsNone Permissions = 0

// PermissionsAll is the union of every defined permission bit. Returned for
// the guild owner and for any member whose role union includes
// PermissionAdministrator.
const PermissionsAll Permissions = PermissionCreateInstantInvite |
	PermissionKickMembers | PermissionBanMembers | PermissionAdministrator |
	PermissionManageChannels | PermissionManageGuild | PermissionAddReactions |
	PermissionViewAuditLog | PermissionPrioritySpeaker | PermissionStream |
	PermissionViewChannel | PermissionSendMessages | PermissionSendTTSMessages |
	PermissionManageMessages | PermissionEmbedLinks | PermissionAttachFiles |
	PermissionReadMessageHistory | PermissionMentionEveryone |
	PermissionUseExternalEmojis | PermissionViewGuildInsights |
	PermissionConnect | PermissionSpeak | PermissionMuteMembers |
	PermissionDeafenMembers | PermissionMoveMembers | PermissionUseVAD |
	PermissionChangeNickname | PermissionManageNicknames |
	PermissionManageRoles | PermissionManageWebhooks |
	PermissionManageExpressions | PermissionUseApplicationCmds |
	PermissionManageEvents | PermissionManageThreads |
	PermissionCreatePublicThreads | PermissionSendThreadMessages |
	PermissionModerateMembers

// Has reports whether every bit in p is present in the set.
func (p Permissions) Has(perm Permissions) bool {
	return p&perm == perm
}
