package resolve

import "fmt"

// Error codes raised by the resolver. The values belong to the stable
// E-numbered taxonomy re-exported by the public package; reserved
// codes of that taxonomy never originate here.
const (
	codeNestedWrapper   = "E0001"
	codeBareTuple       = "E0002"
	codeRecursiveSchema = "E0004"
	codeEmptyStruct     = "E0005"
	codeMultiField      = "E0010"
)

// Error is a coded resolution failure tied to one declaration.
type Error struct {
	Code        string
	Declaration string
	Message     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("resolve: %s at %q: %s", e.Code, e.Declaration, e.Message)
}

func coded(code, decl, format string, args ...any) *Error {
	return &Error{Code: code, Declaration: decl, Message: fmt.Sprintf(format, args...)}
}
