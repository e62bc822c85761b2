// Package schema models a borsh schema container: a root declaration
// plus a map of declaration -> definition describing every type
// reachable from the root. It is the input side of the generator and
// knows nothing about any target language.
package schema

// A Declaration uniquely names one schema type. Generic instantiations
// arrive with synthesized names such as "Option<u32>" or "(A, B)".
type Declaration = string

// Definition describes the shape of one declaration. The set of
// implementations is closed: Primitive, Sequence, Tuple, Enum and
// Struct.
type Definition interface {
	isDefinition()
}

// Primitive is a fixed-size scalar. Size is the encoded width in
// bytes.
type Primitive struct {
	Size uint8
}

// Range bounds the element count of a Sequence.
type Range struct {
	Start uint64
	End   uint64
}

// Sequence is a run of identically-typed elements. LengthWidth is the
// width in bytes of the encoded length prefix; zero means the length
// is fixed at LengthRange.Start and no prefix is encoded.
type Sequence struct {
	LengthWidth uint8
	LengthRange Range
	Elements    Declaration
}

// Tuple is an ordered, heterogeneous product without field names. The
// generator tolerates tuples only as the world root.
type Tuple struct {
	Elements []Declaration
}

// EnumVariant is one tagged alternative of an Enum.
type EnumVariant struct {
	Discriminant int64
	Name         string
	Declaration  Declaration
}

// Enum is a tagged union. TagWidth is the encoded width of the
// discriminant in bytes.
type Enum struct {
	TagWidth uint8
	Variants []EnumVariant
}

// Struct is a product type whose layout is one of NamedFields,
// UnnamedFields or EmptyFields.
type Struct struct {
	Fields Fields
}

// Fields enumerates the three field layouts a Struct can carry.
type Fields interface {
	isFields()
}

// NamedField couples one struct field name with its declaration.
type NamedField struct {
	Name        string
	Declaration Declaration
}

// NamedFields is an ordered list of named struct fields.
type NamedFields []NamedField

// UnnamedFields is an ordered list of positional field declarations.
type UnnamedFields []Declaration

// EmptyFields marks a unit struct with no payload.
type EmptyFields struct{}

func (Primitive) isDefinition() {}
func (Sequence) isDefinition()  {}
func (Tuple) isDefinition()     {}
func (Enum) isDefinition()      {}
func (Struct) isDefinition()    {}

func (NamedFields) isFields()   {}
func (UnnamedFields) isFields() {}
func (EmptyFields) isFields()   {}
