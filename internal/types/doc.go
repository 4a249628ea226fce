// Package types implements the canonical type-string codec and the
// process-wide type interning table.
//
// A type string is the human-readable form of a tensor type: "float" is
// a scalar, "tensor(float)" an unshaped dense tensor. Parse and Format
// convert between type strings and TypeProto descriptors; the Interner
// deduplicates descriptors by canonical string so that one handle per
// type exists in a process and type identity is a pointer comparison.
//
// Key components:
//   - StringSlice: zero-copy string view used by the hand-rolled parser
//   - Parse/Format: type string <-> TypeProto conversion
//   - Interner/InternedType: canonical type table with stable handles
//   - DecodeTypeProto/EncodeTypeProto: protobuf wire codec for TypeProto
//
// Only scalar and dense-tensor element types are supported; sequence,
// map, and sparse-tensor type strings are out of scope.
package types
