package constant

// MovementType classifies a single immutable ledger event.
type MovementType string

const (
	MovementInbound    MovementType = "INBOUND"
	MovementReserved   MovementType = "RESERVED"
	MovementOutbound   MovementType = "OUTBOUND"
	MovementTransfer   MovementType = "TRANSFER"
	MovementAdjustment MovementType = "ADJUSTMENT"
)
