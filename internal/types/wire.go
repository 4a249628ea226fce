package types

import (
	"errors"
	"fmt"
	"io"
)

// Protobuf wire codec for the TypeProto message family. Model loaders
// hand this package the raw type_proto bytes of a value_info entry and
// get a descriptor back; EncodeTypeProto is the inverse. Field numbers
// follow onnx.proto.

// Protobuf wire types.
const (
	wireVarint = 0 // int32, int64, uint32, uint64, bool, enum
	wire64Bit  = 1 // fixed64, sfixed64, double
	wireBytes  = 2 // string, bytes, embedded messages
	wire32Bit  = 5 // fixed32, sfixed32, float
)

// DecodeTypeProto decodes a TypeProto message from protobuf wire bytes.
func DecodeTypeProto(data []byte) (*TypeProto, error) {
	d := &wireDecoder{data: data}
	tp := &TypeProto{}
	if err := d.readTypeProto(tp); err != nil {
		return nil, fmt.Errorf("failed to decode type proto: %w", err)
	}
	return tp, nil
}

// wireDecoder implements a minimal protobuf wire format decoder.
type wireDecoder struct {
	data []byte
	pos  int
}

// readTypeProto reads TypeProto message.
func (d *wireDecoder) readTypeProto(m *TypeProto) error {
	for d.pos < len(d.data) {
		fieldNum, wireType, err := d.readTag()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		switch fieldNum {
		case 1: // tensor_type
			data, err2 := d.readBytes()
			if err2 != nil {
				return err2
			}
			sub := &wireDecoder{data: data}
			m.TensorType = &TensorTypeProto{}
			if err2 := sub.readTensorTypeProto(m.TensorType); err2 != nil {
				return err2
			}
			continue
		default:
			err = d.skipField(wireType)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// readTensorTypeProto reads TensorTypeProto message. An empty shape
// field still allocates Shape, so a wire-encoded scalar decodes as a
// scalar and not as an unshaped tensor.
func (d *wireDecoder) readTensorTypeProto(m *TensorTypeProto) error {
	for d.pos < len(d.data) {
		fieldNum, wireType, err := d.readTag()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		switch fieldNum {
		case 1: // elem_type
			v, err2 := d.readVarint()
			if err2 != nil {
				return err2
			}
			m.ElemType = DataType(v)
			continue
		case 2: // shape
			data, err2 := d.readBytes()
			if err2 != nil {
				return err2
			}
			sub := &wireDecoder{data: data}
			m.Shape = &TensorShapeProto{}
			if err2 := sub.readTensorShapeProto(m.Shape); err2 != nil {
				return err2
			}
			continue
		default:
			err = d.skipField(wireType)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// readTensorShapeProto reads TensorShapeProto message.
func (d *wireDecoder) readTensorShapeProto(m *TensorShapeProto) error {
	for d.pos < len(d.data) {
		fieldNum, wireType, err := d.readTag()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		switch fieldNum {
		case 1: // dim
			data, err2 := d.readBytes()
			if err2 != nil {
				return err2
			}
			sub := &wireDecoder{data: data}
			dim := DimensionProto{}
			if err2 := sub.readDimensionProto(&dim); err2 != nil {
				return err2
			}
			m.Dims = append(m.Dims, dim)
			continue
		default:
			err = d.skipField(wireType)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// readDimensionProto reads DimensionProto message.
func (d *wireDecoder) readDimensionProto(m *DimensionProto) error {
	for d.pos < len(d.data) {
		fieldNum, wireType, err := d.readTag()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		switch fieldNum {
		case 1: // dim_value
			m.DimValue, err = d.readVarint()
		case 2: // dim_param
			data, err2 := d.readBytes()
			if err2 != nil {
				return err2
			}
			m.DimParam = string(data)
			continue
		default:
			err = d.skipField(wireType)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// readTag reads a field tag and splits it into field number and wire type.
func (d *wireDecoder) readTag() (fieldNum, wireType int, err error) {
	tag, err := d.readVarint()
	if err != nil {
		return 0, 0, err
	}
	fieldNum = int(tag >> 3)
	wireType = int(tag & 0x7)
	return fieldNum, wireType, nil
}

// readVarint reads a varint-encoded int64.
func (d *wireDecoder) readVarint() (int64, error) {
	var result uint64
	var shift uint
	for {
		if d.pos >= len(d.data) {
			return 0, io.EOF
		}
		b := d.data[d.pos]
		d.pos++
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
		if shift >= 64 {
			return 0, errors.New("varint overflow")
		}
	}
	return int64(result), nil
}

// readBytes reads a length-delimited byte slice.
func (d *wireDecoder) readBytes() ([]byte, error) {
	length, err := d.readVarint()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, errors.New("negative length")
	}
	end := d.pos + int(length)
	if end > len(d.data) {
		return nil, io.ErrUnexpectedEOF
	}
	result := d.data[d.pos:end]
	d.pos = end
	return result, nil
}

// skipField skips a field based on wire type.
func (d *wireDecoder) skipField(wireType int) error {
	switch wireType {
	case wireVarint:
		_, err := d.readVarint()
		return err
	case wire64Bit:
		if d.pos+8 > len(d.data) {
			return io.ErrUnexpectedEOF
		}
		d.pos += 8
		return nil
	case wireBytes:
		_, err := d.readBytes()
		return err
	case wire32Bit:
		if d.pos+4 > len(d.data) {
			return io.ErrUnexpectedEOF
		}
		d.pos += 4
		return nil
	default:
		return fmt.Errorf("unknown wire type: %d", wireType)
	}
}

// EncodeTypeProto encodes a TypeProto message to protobuf wire bytes.
func EncodeTypeProto(tp *TypeProto) []byte {
	if tp == nil || tp.TensorType == nil {
		return nil
	}
	body := encodeTensorTypeProto(tp.TensorType)
	return appendMessage(nil, 1, body)
}

func encodeTensorTypeProto(m *TensorTypeProto) []byte {
	var buf []byte
	if m.ElemType != Undefined {
		buf = appendTag(buf, 1, wireVarint)
		buf = appendVarint(buf, int64(m.ElemType))
	}
	if m.Shape != nil {
		buf = appendMessage(buf, 2, encodeTensorShapeProto(m.Shape))
	}
	return buf
}

func encodeTensorShapeProto(m *TensorShapeProto) []byte {
	var buf []byte
	for i := range m.Dims {
		buf = appendMessage(buf, 1, encodeDimensionProto(&m.Dims[i]))
	}
	return buf
}

func encodeDimensionProto(m *DimensionProto) []byte {
	var buf []byte
	if m.DimParam != "" {
		buf = appendTag(buf, 2, wireBytes)
		buf = appendVarint(buf, int64(len(m.DimParam)))
		buf = append(buf, m.DimParam...)
		return buf
	}
	buf = appendTag(buf, 1, wireVarint)
	buf = appendVarint(buf, m.DimValue)
	return buf
}

// appendMessage appends a length-delimited submessage field. The field
// is written even when body is empty: an empty shape message is how the
// scalar case travels on the wire.
func appendMessage(buf []byte, fieldNum int, body []byte) []byte {
	buf = appendTag(buf, fieldNum, wireBytes)
	buf = appendVarint(buf, int64(len(body)))
	return append(buf, body...)
}

func appendTag(buf []byte, fieldNum, wireType int) []byte {
	return appendVarint(buf, int64(fieldNum)<<3|int64(wireType))
}

func appendVarint(buf []byte, v int64) []byte {
	u := uint64(v)
	for u >= 0x80 {
		buf = append(buf, byte(u)|0x80)
		u >>= 7
	}
	return append(buf, byte(u))
}
