package rarity

// TotalWeight is the required sum of all tier weights, so each weight reads as a percentage.
const TotalWeight = 100

// BasisPointsDenominator converts fee basis points to a fraction.
const BasisPointsDenominator = 10000

// ConfigVersion is the expected version string for rarity table configs.
const ConfigVersion = "1.0"

// SchemaPath is the embedded schema every config is validated against.
const SchemaPath = "schema/rarity_table.schema.json"

// Error Messages
const (
	ErrMsgNoTiers           = "rarity table defines no tiers"
	ErrMsgUnknownRarity     = "unknown rarity"
	ErrMsgDuplicateTier     = "duplicate tier"
	ErrMsgNonPositiveWeight = "weight must be positive"
	ErrMsgFeeOutOfRange     = "fee must be between 0 and 10000 basis points"
	ErrMsgEmptyCatalog      = "item catalog is empty"
	ErrMsgUnnamedItem       = "catalog entry has no name"
	ErrMsgWeightSum         = "tier weights must sum to 100"
	ErrMsgInvalidBonusRange = "invalid token bonus range"
	ErrMsgUnsupportedFormat = "unsupported rarity table format"
	ErrMsgVersionMismatch   = "unsupported rarity table version"
)
