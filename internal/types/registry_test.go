package types

import "testing"

var canonicalNames = []string{
	"float", "float16", "double",
	"int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64",
	"complext64", "complext128",
	"string", "bool",
}

func TestRegistryBijection(t *testing.T) {
	for _, name := range canonicalNames {
		code, ok := elementCode(name)
		if !ok {
			t.Errorf("elementCode(%q) missing", name)
			continue
		}
		back, ok := elementName(code)
		if !ok || back != name {
			t.Errorf("elementName(elementCode(%q)) = %q, %v", name, back, ok)
		}
	}

	if len(ElementNames()) != len(canonicalNames) {
		t.Errorf("registry has %d names, want %d", len(ElementNames()), len(canonicalNames))
	}
}

func TestIsValidElementName(t *testing.T) {
	for _, name := range canonicalNames {
		if !IsValidElementName(name) {
			t.Errorf("IsValidElementName(%q) = false", name)
		}
	}

	invalid := []string{"", "notatype", "Float", "float32", "complex64", "tensor(float)", " float"}
	for _, name := range invalid {
		if IsValidElementName(name) {
			t.Errorf("IsValidElementName(%q) = true, want false", name)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float, "float"},
		{Float16, "float16"},
		{Double, "double"},
		{Int64, "int64"},
		{Complex64, "complext64"},
		{Complex128, "complext128"},
		{Bool, "bool"},
		{Undefined, "unknown"},
		{DataType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("DataType(%d).String() = %q, want %q", int32(tt.dtype), got, tt.str)
		}
	}
}
