package types

import (
	"errors"
	"fmt"
)

// Errors reported by the type-string codec and the interner.
var (
	// ErrInvalidTypeString is returned by Parse when the input is not a
	// well-formed type string or names an unknown element type.
	ErrInvalidTypeString = errors.New("invalid type string")

	// ErrUnsupportedDescriptor is returned by Format for descriptors
	// outside the scalar/tensor subset this codec handles.
	ErrUnsupportedDescriptor = errors.New("unsupported type descriptor")

	// ErrUnknownElementCode is returned by Format when the descriptor's
	// element code has no canonical name.
	ErrUnknownElementCode = errors.New("unknown element type code")

	// ErrForeignHandle is returned by Interner.Resolve for a handle that
	// was not produced by that interner.
	ErrForeignHandle = errors.New("foreign interned type handle")
)

// Parse converts a type string into a descriptor.
//
// Two forms are accepted. "tensor(float)" yields an unshaped dense
// tensor: element type set, no shape. A bare element name such as
// "float" yields a scalar: a shape with zero dimensions. The two
// descriptors are distinct even though both only carry an element type.
// Whitespace around and inside the tensor form is ignored.
func Parse(text string) (*TypeProto, error) {
	s := NewStringSlice(text)
	if rest, ok := s.StripLeftPrefix("tensor"); ok {
		rest = rest.StripParensAndWhitespace()
		code, ok := elementCode(rest.String())
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTypeString, text)
		}
		return &TypeProto{TensorType: &TensorTypeProto{ElemType: code}}, nil
	}
	code, ok := elementCode(s.String())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTypeString, text)
	}
	return &TypeProto{TensorType: &TensorTypeProto{
		ElemType: code,
		Shape:    &TensorShapeProto{},
	}}, nil
}

// Format serializes a descriptor to its canonical type string, wrapped
// in the left and right decoration strings (pass "" for none).
//
// A rank-0 (scalar) descriptor formats as the bare element name; every
// other tensor descriptor formats as "tensor(name)". Shape dimensions
// are never serialized. Descriptors without a tensor variant are not
// supported.
func Format(tp *TypeProto, left, right string) (string, error) {
	if tp == nil || tp.TensorType == nil {
		return "", fmt.Errorf("%w: no tensor variant", ErrUnsupportedDescriptor)
	}
	t := tp.TensorType
	name, ok := elementName(t.ElemType)
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownElementCode, int32(t.ElemType))
	}
	if t.Shape != nil && len(t.Shape.Dims) == 0 {
		// Scalar case.
		return left + name + right, nil
	}
	return left + "tensor(" + name + ")" + right, nil
}
