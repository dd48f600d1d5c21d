package discord

// Friendly message constants for Discord responses
const (
	// Economy
	MsgInsufficientFunds = "⚠️ **Not Enough Tokens!**\nYou can't afford that listing."
	MsgNoChests          = "📦 **No Chests**\nWin a seat at a tournament to earn more."
	MsgSelfPurchase      = "🪞 **That's Yours**\nUse /unlist to take back your own listing."
	MsgNotListingOwner   = "🚫 **Not Your Listing**\nOnly the seller can unlist an item."
	MsgInvalidPrice      = "🏷️ **Invalid Price**\nPrices must be a whole number above zero."
	MsgListingGone       = "💨 **Listing Gone**\nIt was sold or withdrawn. Check /market again."

	// Items & Inventory
	MsgInvalidPosition = "❓ **Nothing There**\nCheck the number against /profile or /market."
	MsgSlotEmpty       = "🫥 **Slot Empty**\nThere is nothing equipped there."
	MsgInvalidSlot     = "❓ **Unknown Slot**\nSlots are head, body, weapon, legs and trinket."

	// Player
	MsgPlayerNotFound = "👤 **Player Not Found**\nHave they used /start yet?"

	// Tournament
	MsgAlreadyQueued   = "🪑 **Already Seated**\nYou're already waiting at the table."
	MsgQueueFull       = "🈵 **Table Full**\nWait for the current tournament to be resolved."
	MsgEmptyQueue      = "🪑 **Empty Table**\nNobody has joined the tournament yet."
	MsgPlayerNotQueued = "🎲 **Not Seated**\nThe winner must be one of the queued players."
	MsgNotAdmin        = "🔒 **Admins Only**\nOnly administrators can resolve a tournament."

	MsgGenericError      = "❌ Something went wrong."
	MsgServerUnavailable = "Error connecting to game server."
	MsgOutcomeUnknown    = "⏳ **No Reply**\nThe game server took too long. Check /profile before trying again."
)

// Footer constants for standardized embed footers.
const (
	FooterCashPool      = "CashPool RPG"
	FooterCashPoolAdmin = "CashPool RPG Admin"
)

// Embed colors
const (
	ColorInfo    = 0x3498db
	ColorSuccess = 0x2ecc71
	ColorMarket  = 0xf39c12
	ColorTourney = 0x9b59b6
	ColorAdmin   = 0x95a5a6
)
