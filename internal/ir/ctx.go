package ir

import (
	"fmt"

	"fortio.org/safecast"

	"corund/internal/types"
)

const exprChunk = 256

// Param is a function parameter binding.
type Param struct {
	ID   IrID
	Type types.TypeID
}

// Function is an item declared in a Ctx.
type Function struct {
	Name   string
	Params []Param
	Return types.TypeID
}

// Ctx owns every IR allocation of one compilation. Nodes are appended to
// fixed-size chunks so returned pointers stay valid for the whole lifetime
// of the Ctx; nothing is freed individually.
type Ctx struct {
	Types *types.Interner

	chunks [][]Expr
	items  []Function
	nextID uint32
}

// NewCtx creates an arena over the given interner (a fresh one if nil).
func NewCtx(in *types.Interner) *Ctx {
	if in == nil {
		in = types.NewInterner()
	}
	return &Ctx{
		Types: in,
		items: make([]Function, 1, 16), // reserve 0 as NoItemID
	}
}

// NewID returns a fresh binding identifier.
func (c *Ctx) NewID() IrID {
	c.nextID++
	return IrID(c.nextID)
}

// NewFunction declares a function item and returns its handle.
func (c *Ctx) NewFunction(name string, params []Param, ret types.TypeID) ItemID {
	n, err := safecast.Conv[uint32](len(c.items))
	if err != nil {
		panic(fmt.Errorf("ir: item arena overflow: %w", err))
	}
	c.items = append(c.items, Function{
		Name:   name,
		Params: append([]Param(nil), params...),
		Return: ret,
	})
	return ItemID(n)
}

// Function returns the declaration behind id.
func (c *Ctx) Function(id ItemID) *Function {
	if !id.IsValid() || int(id) >= len(c.items) {
		panic(fmt.Sprintf("ir: unknown item %d", id))
	}
	return &c.items[id]
}

// Len reports how many expressions were allocated.
func (c *Ctx) Len() int {
	if len(c.chunks) == 0 {
		return 0
	}
	return (len(c.chunks)-1)*exprChunk + len(c.chunks[len(c.chunks)-1])
}

func (c *Ctx) alloc(e Expr) *Expr {
	if len(c.chunks) == 0 || len(c.chunks[len(c.chunks)-1]) == exprChunk {
		c.chunks = append(c.chunks, make([]Expr, 0, exprChunk))
	}
	last := len(c.chunks) - 1
	c.chunks[last] = append(c.chunks[last], e)
	return &c.chunks[last][len(c.chunks[last])-1]
}
