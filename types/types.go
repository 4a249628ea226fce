// Package types provides the public API for tensor type strings and
// interned type identities.
//
// A type string is the canonical textual form of a tensor type, e.g.
// "float16" (a scalar) or "tensor(float)" (an unshaped dense tensor).
// This package converts between type strings and TypeProto descriptors
// and interns each distinct canonical type once per process, so type
// identity elsewhere in a system is a cheap handle comparison.
//
// # Example Usage
//
//	// Parse and format
//	tp, err := types.Parse("tensor(float)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, _ := types.Format(tp) // "tensor(float)"
//
//	// Intern: equal canonical forms share one handle
//	a, _ := types.InternFromString("tensor( float )")
//	b, _ := types.InternFromString("tensor(float)")
//	fmt.Println(a == b) // true
package types

import (
	itypes "github.com/neuroformat/neuroformat/internal/types"
)

// DataType identifies the element type of a tensor. Values match the
// ONNX TensorProto.DataType wire enum.
type DataType = itypes.DataType

// Tensor element data types.
const (
	Undefined  DataType = itypes.Undefined
	Float      DataType = itypes.Float
	Uint8      DataType = itypes.Uint8
	Int8       DataType = itypes.Int8
	Uint16     DataType = itypes.Uint16
	Int16      DataType = itypes.Int16
	Int32      DataType = itypes.Int32
	Int64      DataType = itypes.Int64
	String     DataType = itypes.String
	Bool       DataType = itypes.Bool
	Float16    DataType = itypes.Float16
	Double     DataType = itypes.Double
	Uint32     DataType = itypes.Uint32
	Uint64     DataType = itypes.Uint64
	Complex64  DataType = itypes.Complex64
	Complex128 DataType = itypes.Complex128
)

// TypeProto describes the type of a value.
type TypeProto = itypes.TypeProto

// TensorTypeProto describes a tensor's element type and shape.
type TensorTypeProto = itypes.TensorTypeProto

// TensorShapeProto describes tensor dimensions.
type TensorShapeProto = itypes.TensorShapeProto

// DimensionProto describes a single dimension.
type DimensionProto = itypes.DimensionProto

// Interner deduplicates type descriptors by canonical string.
type Interner = itypes.Interner

// InternedType is a stable, equality-comparable handle for one
// canonical type.
type InternedType = itypes.InternedType

// Errors reported by this package.
var (
	ErrInvalidTypeString     = itypes.ErrInvalidTypeString
	ErrUnsupportedDescriptor = itypes.ErrUnsupportedDescriptor
	ErrUnknownElementCode    = itypes.ErrUnknownElementCode
	ErrForeignHandle         = itypes.ErrForeignHandle
)

// Parse converts a type string into a descriptor.
//
// "float" parses to a scalar (rank-0 shape); "tensor(float)" parses to
// an unshaped dense tensor. Unknown element names are rejected with
// ErrInvalidTypeString.
func Parse(text string) (*TypeProto, error) {
	return itypes.Parse(text)
}

// Format serializes a descriptor to its canonical type string.
func Format(tp *TypeProto) (string, error) {
	return itypes.Format(tp, "", "")
}

// FormatWith is Format with decoration strings wrapped around the
// result, for embedding the type in a larger template:
//
//	s, _ := types.FormatWith(tp, "seq(", ")")
func FormatWith(tp *TypeProto, left, right string) (string, error) {
	return itypes.Format(tp, left, right)
}

// IsValidElementName reports whether name is a canonical element-type
// name such as "float" or "int64".
func IsValidElementName(name string) bool {
	return itypes.IsValidElementName(name)
}

// ElementNames returns all canonical element-type names.
func ElementNames() []string {
	return itypes.ElementNames()
}

// NewInterner creates an isolated interning table. Most callers should
// use the package-level Intern functions, which share the process-wide
// table.
func NewInterner() *Interner {
	return itypes.NewInterner()
}

// InternFromString interns the canonical form of text in the
// process-wide table and returns its stable handle.
func InternFromString(text string) (*InternedType, error) {
	return itypes.Default().InternString(text)
}

// InternFromDescriptor interns tp's canonical string in the
// process-wide table and returns its stable handle.
func InternFromDescriptor(tp *TypeProto) (*InternedType, error) {
	return itypes.Default().InternDescriptor(tp)
}

// Resolve returns the descriptor stored for a handle from the
// process-wide table.
func Resolve(it *InternedType) (*TypeProto, error) {
	return itypes.Default().Resolve(it)
}

// DecodeTypeProto decodes a TypeProto from protobuf wire bytes.
func DecodeTypeProto(data []byte) (*TypeProto, error) {
	return itypes.DecodeTypeProto(data)
}

// EncodeTypeProto encodes a TypeProto to protobuf wire bytes.
func EncodeTypeProto(tp *TypeProto) []byte {
	return itypes.EncodeTypeProto(tp)
}
