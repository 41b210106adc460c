package types

import (
	"fmt"
	"strings"
)

// String renders the type in source syntax: `&mut [u8; 4]`, `(i32, bool)`,
// `fn(usize) -> !`.
func (in *Interner) String(id TypeID) string {
	tt, ok := in.Lookup(id)
	if !ok {
		return "<invalid>"
	}
	switch tt.Kind {
	case KindVoid:
		return "()"
	case KindNever:
		return "!"
	case KindBool:
		return "bool"
	case KindInt:
		prefix := "u"
		if tt.Signed {
			prefix = "i"
		}
		if tt.Width == WidthSize {
			return prefix + "size"
		}
		return fmt.Sprintf("%s%d", prefix, tt.Width)
	case KindPointer:
		if tt.Const {
			return "&" + in.String(tt.Elem)
		}
		return "&mut " + in.String(tt.Elem)
	case KindArray:
		return fmt.Sprintf("[%s; %d]", in.String(tt.Elem), tt.Count)
	case KindTuple:
		info, _ := in.TupleInfo(id)
		parts := make([]string, 0, len(info.Elems))
		for _, e := range info.Elems {
			parts = append(parts, in.String(e))
		}
		if len(parts) == 1 {
			return "(" + parts[0] + ",)"
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KindFn:
		info, _ := in.FnInfo(id)
		parts := make([]string, 0, len(info.Params))
		for _, p := range info.Params {
			parts = append(parts, in.String(p))
		}
		return "fn(" + strings.Join(parts, ", ") + ") -> " + in.String(info.Result)
	default:
		return tt.Kind.String()
	}
}
