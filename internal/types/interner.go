package types

import (
	"fmt"
	"sync"
)

// InternedType is a stable handle for one canonical type. Handles from
// the same Interner compare equal (==) exactly when they denote the same
// canonical type string, so handle comparison replaces descriptor
// comparison throughout a process. Handles stay valid for the lifetime
// of their Interner; entries are never evicted.
type InternedType struct {
	name  string
	proto TypeProto
	owner *Interner
}

// Name returns the canonical type string for the handle.
func (it *InternedType) Name() string {
	return it.name
}

// String implements fmt.Stringer.
func (it *InternedType) String() string {
	if it == nil {
		return "<nil>"
	}
	return it.name
}

// Interner deduplicates type descriptors by canonical string. The table
// grows monotonically; safe for concurrent use.
type Interner struct {
	mu    sync.Mutex
	table map[string]*InternedType
}

// NewInterner creates an empty Interner. Components that want isolated
// type identity inject their own instance; everything else shares
// Default.
func NewInterner() *Interner {
	return &Interner{table: make(map[string]*InternedType)}
}

var (
	defaultOnce     sync.Once
	defaultInterner *Interner
)

// Default returns the process-wide interner, creating it on first use.
func Default() *Interner {
	defaultOnce.Do(func() {
		defaultInterner = NewInterner()
	})
	return defaultInterner
}

// InternDescriptor returns the handle for tp's canonical string,
// inserting a new entry if the string has not been interned yet. The
// descriptor is copied into the table; later mutation of tp does not
// affect the interned entry.
func (in *Interner) InternDescriptor(tp *TypeProto) (*InternedType, error) {
	name, err := Format(tp, "", "")
	if err != nil {
		return nil, err
	}
	// The lock covers the whole get-or-insert so two racing callers can
	// never create two handles for one canonical string.
	in.mu.Lock()
	defer in.mu.Unlock()
	if it, ok := in.table[name]; ok {
		return it, nil
	}
	it := &InternedType{name: name, proto: *tp.Clone(), owner: in}
	in.table[name] = it
	return it, nil
}

// InternString parses text and interns the resulting descriptor. Going
// through the descriptor normalizes whitespace and formatting variance:
// inputs that parse to the same type share one handle.
func (in *Interner) InternString(text string) (*InternedType, error) {
	tp, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return in.InternDescriptor(tp)
}

// Resolve returns a copy of the descriptor stored for handle. A nil
// handle or a handle produced by a different interner is rejected with
// ErrForeignHandle.
func (in *Interner) Resolve(it *InternedType) (*TypeProto, error) {
	if it == nil || it.owner != in {
		return nil, fmt.Errorf("%w: %v", ErrForeignHandle, it)
	}
	return it.proto.Clone(), nil
}

// Len returns the number of interned canonical types.
func (in *Interner) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.table)
}
