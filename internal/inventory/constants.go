package inventory

// Formatted error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgGetPlayerFailed         = "failed to get player: %w"
	ErrMsgSavePlayerFailed        = "failed to save player: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgOpenChestCalled = "OpenChest called"
	LogMsgChestOpened     = "Chest opened"
	LogMsgEquipCalled     = "Equip called"
	LogMsgItemEquipped    = "Item equipped"
	LogMsgUnequipCalled   = "Unequip called"
	LogMsgItemUnequipped  = "Item unequipped"
	LogMsgNoChests        = "Open chest rejected, no chests available"
)

// Metric operation labels
const (
	OpOpenChest  = "open_chest"
	OpEquip      = "equip"
	OpUnequip    = "unequip"
	OpTotalPower = "total_power"
)
