package admin

// UnbanCallbackPrefix prefixes the callback data of the ban list buttons.
const UnbanCallbackPrefix = "unban_"

const (
	msgDenied          = "❌ You don't have permission to run this command."
	msgDeniedCallback  = "❌ You don't have permission for this action."
	msgBanUsage        = "ℹ️ Usage: /ban [user_id]"
	msgUnbanUsage      = "ℹ️ Usage: /unban [user_id]"
	msgBanned          = "✅ User %s is banned permanently."
	msgUnbanned        = "✅ User %s is unbanned."
	msgNotBanned       = "ℹ️ User %s was not banned."
	msgBlacklistEmpty  = "📭 The ban list is empty."
	msgBlacklist       = "🚫 Banned users (total %d):\n%s"
	msgBlacklistItem   = "🔹 %s"
	msgUnbanButton     = "Unban %s"
	msgMaintenance     = "✅ Maintenance mode %s."
	msgFlushed         = "✅ Bot state reset: %d sessions dropped."
	msgCallbackUnban   = "User %s unbanned"
	msgCallbackNoop    = "ℹ️ User is already unbanned."
	msgCallbackInvalid = "⚠️ Unknown action."

	notifyBanned           = "🚨 User %s was banned by admin %s"
	notifyUnbanned         = "🔓 User %s was unbanned by admin %s"
	notifyUnbannedFromList = "🔓 User %s was unbanned from the ban list by admin %s"
	notifyMaintenance      = "🔧 Maintenance mode %s by admin %s"
	notifyFlushed          = "🔄 Sessions flushed by admin %s"
)

func maintenanceStatus(on bool) string {
	if on {
		return "turned on"
	}
	return "turned off"
}
