package ir

// IrID identifies a binding (local variable, parameter, struct field).
// Equality is identity only; fresh values come from Ctx.NewID.
type IrID uint32

// ItemID identifies an item (function) allocated in a Ctx.
type ItemID uint32

// Invalid ID constants (zero is sentinel).
const (
	NoIrID   IrID   = 0
	NoItemID ItemID = 0
)

// IsValid returns true if the ID is valid (non-zero).
func (id IrID) IsValid() bool   { return id != NoIrID }
func (id ItemID) IsValid() bool { return id != NoItemID }
