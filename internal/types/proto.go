package types

// ONNX-style type descriptor messages (hand-written).

// DataType identifies the element type of a tensor.
// Values match the ONNX TensorProto.DataType wire enum.
type DataType int32

// Tensor element data types.
const (
	Undefined  DataType = 0
	Float      DataType = 1  // float32
	Uint8      DataType = 2  // uint8
	Int8       DataType = 3  // int8
	Uint16     DataType = 4  // uint16
	Int16      DataType = 5  // int16
	Int32      DataType = 6  // int32
	Int64      DataType = 7  // int64
	String     DataType = 8  // string
	Bool       DataType = 9  // bool
	Float16    DataType = 10 // float16
	Double     DataType = 11 // float64
	Uint32     DataType = 12 // uint32
	Uint64     DataType = 13 // uint64
	Complex64  DataType = 14 // complex64
	Complex128 DataType = 15 // complex128
)

// TypeProto describes the type of a value. Exactly one variant is
// populated; this library handles only the tensor variant.
type TypeProto struct {
	TensorType *TensorTypeProto // Tensor type (the only supported variant)
}

// TensorTypeProto describes a tensor's element type and shape.
//
// A nil Shape means the tensor is unshaped (element type known, no
// declared dimensions). A non-nil Shape with zero dimensions is a
// rank-0 tensor, i.e. a scalar. The two are distinct types.
type TensorTypeProto struct {
	ElemType DataType          // Element data type
	Shape    *TensorShapeProto // Tensor shape (nil = unshaped)
}

// TensorShapeProto describes tensor dimensions.
type TensorShapeProto struct {
	Dims []DimensionProto // Dimensions (empty = scalar)
}

// DimensionProto describes a single dimension.
type DimensionProto struct {
	DimValue int64  // Static dimension value (e.g., 224 for image size)
	DimParam string // Dynamic dimension name (e.g., "batch_size")
}

// Clone returns a deep copy of the descriptor.
func (tp *TypeProto) Clone() *TypeProto {
	if tp == nil {
		return nil
	}
	clone := &TypeProto{}
	if tp.TensorType != nil {
		clone.TensorType = &TensorTypeProto{
			ElemType: tp.TensorType.ElemType,
			Shape:    tp.TensorType.Shape.Clone(),
		}
	}
	return clone
}

// Clone returns a copy of the shape. A nil shape clones to nil, so the
// unshaped/scalar distinction survives copying.
func (s *TensorShapeProto) Clone() *TensorShapeProto {
	if s == nil {
		return nil
	}
	clone := &TensorShapeProto{}
	if s.Dims != nil {
		clone.Dims = make([]DimensionProto, len(s.Dims))
		copy(clone.Dims, s.Dims)
	}
	return clone
}

// Equal checks if two descriptors describe the same type.
func (tp *TypeProto) Equal(other *TypeProto) bool {
	if tp == nil || other == nil {
		return tp == other
	}
	a, b := tp.TensorType, other.TensorType
	if a == nil || b == nil {
		return a == b
	}
	if a.ElemType != b.ElemType {
		return false
	}
	if (a.Shape == nil) != (b.Shape == nil) {
		return false
	}
	if a.Shape == nil {
		return true
	}
	if len(a.Shape.Dims) != len(b.Shape.Dims) {
		return false
	}
	for i := range a.Shape.Dims {
		if a.Shape.Dims[i] != b.Shape.Dims[i] {
			return false
		}
	}
	return true
}
