package domain

// ChestResult is the outcome of opening one chest.
type ChestResult struct {
	Item            Item `json:"item"`
	TokenBonus      int  `json:"token_bonus"`
	ChestsRemaining int  `json:"chests_remaining"`
	Tokens          int  `json:"tokens"`
}

// EquipResult reports an equip; Replaced is set when the slot was occupied.
type EquipResult struct {
	Equipped Item  `json:"equipped"`
	Replaced *Item `json:"replaced,omitempty"`
}

// Profile is the read view of a player: balances, collection and build.
type Profile struct {
	Player     *Player       `json:"player"`
	Equipped   map[Slot]Item `json:"equipped"`
	TotalPower int           `json:"total_power"`
}
