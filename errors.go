package borshgen

import (
	"errors"
	"fmt"

	"github.com/nordwire/borshgen/internal/resolve"
)

// Error codes (exported consts for IDE completion and type safety by convention).
// The taxonomy is closed and the values are stable. Reserved codes are
// kept for schema shapes the resolver does not reach yet.
const (
	CodeNestedWrapper   = "E0001"
	CodeBareTuple       = "E0002"
	CodeFloatPrimitive  = "E0003" // reserved
	CodeRecursiveSchema = "E0004"
	CodeEmptyStruct     = "E0005"
	CodeSmartPointer    = "E0006" // reserved
	CodeIdentifier      = "E0007" // reserved
	CodeMultiParameter  = "E0008" // reserved
	CodeMapSet          = "E0009" // reserved
	CodeMultiField      = "E0010"
)

// codeTexts holds one canonical remediation line per code.
var codeTexts = map[string]string{
	CodeNestedWrapper:   "layers of single-field wrappers are not allowed; flatten the wrapping or write a custom schema",
	CodeBareTuple:       "tuples are not allowed in the public type surface; replace them with named structs or fixed-size arrays",
	CodeFloatPrimitive:  "f32 and f64 are not supported as non-deterministic types",
	CodeRecursiveSchema: "recursive types are not supported; express recursion through indexes or a custom schema",
	CodeEmptyStruct:     "unit and empty types are not supported",
	CodeSmartPointer:    "pointer-like wrapper types are not supported; simplify the declaration",
	CodeIdentifier:      "every declaration name must also be a valid target-language symbol",
	CodeMultiParameter:  "only one type parameter is allowed per generic type",
	CodeMapSet:          "maps and sets are not supported; replace them with a sequence of two-field structs",
	CodeMultiField:      "an unnamed-field struct or union variant payload carries exactly zero or one field",
}

// CodeText returns the canonical description of a generation error
// code, or the empty string for unknown codes.
func CodeText(code string) string { return codeTexts[code] }

// Error is a coded generation failure tied to one declaration.
type Error struct {
	Code        string // one of the codes listed above
	Declaration string
	Message     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("borshgen: %s at %q: %s", e.Code, e.Declaration, e.Message)
}

// IsCode reports whether err is a generation failure carrying the
// given code. It unwraps through errors.As.
func IsCode(err error, code string) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Code == code
}

// fromResolve lifts resolver failures into the public error type.
// Anything else passes through untouched.
func fromResolve(err error) error {
	var re *resolve.Error
	if errors.As(err, &re) {
		return &Error{Code: re.Code, Declaration: re.Declaration, Message: re.Message}
	}
	return err
}
