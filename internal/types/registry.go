package types

import "sync"

// registry holds the bidirectional mapping between canonical element-type
// names and DataType codes, plus the set of allowed names. It is built
// once on first use and never mutated afterwards, so reads need no lock.
type registry struct {
	nameToCode map[string]DataType
	codeToName map[DataType]string
	allowed    map[string]struct{}
}

var (
	registryOnce sync.Once
	registryInst *registry
)

// elementTypes returns the process-wide element-type table, building it
// on first call.
func elementTypes() *registry {
	registryOnce.Do(func() {
		// Canonical name strings. These must match the DataTypes in the
		// TypeProto definitions. The complext64/complext128 spellings are
		// historical and are kept as-is: they are a wire contract shared
		// with other components.
		nameToCode := map[string]DataType{
			"float":       Float,
			"float16":     Float16,
			"double":      Double,
			"int8":        Int8,
			"int16":       Int16,
			"int32":       Int32,
			"int64":       Int64,
			"uint8":       Uint8,
			"uint16":      Uint16,
			"uint32":      Uint32,
			"uint64":      Uint64,
			"complext64":  Complex64,
			"complext128": Complex128,
			"string":      String,
			"bool":        Bool,
		}
		r := &registry{
			nameToCode: nameToCode,
			codeToName: make(map[DataType]string, len(nameToCode)),
			allowed:    make(map[string]struct{}, len(nameToCode)),
		}
		for name, code := range nameToCode {
			r.codeToName[code] = name
			r.allowed[name] = struct{}{}
		}
		registryInst = r
	})
	return registryInst
}

// IsValidElementName reports whether name is a canonical element-type
// name.
func IsValidElementName(name string) bool {
	_, ok := elementTypes().allowed[name]
	return ok
}

// elementCode looks up the DataType code for a canonical name.
func elementCode(name string) (DataType, bool) {
	code, ok := elementTypes().nameToCode[name]
	return code, ok
}

// elementName looks up the canonical name for a DataType code.
func elementName(code DataType) (string, bool) {
	name, ok := elementTypes().codeToName[code]
	return name, ok
}

// ElementNames returns all canonical element-type names. The order is
// unspecified.
func ElementNames() []string {
	r := elementTypes()
	names := make([]string, 0, len(r.allowed))
	for name := range r.allowed {
		names = append(names, name)
	}
	return names
}

// String returns the canonical name for the data type, or "unknown".
func (dt DataType) String() string {
	if name, ok := elementName(dt); ok {
		return name
	}
	return "unknown"
}
