package types

// StringSlice is a read-only view over a region of a borrowed string.
// It is used to hand-roll the type-string parser without allocating:
// every strip operation returns a new, possibly shorter view of the same
// backing string together with a flag reporting whether anything was
// removed. The original string is never modified.
//
// A slice additionally tracks a capture window: the region consumed from
// the front since the last ResetCapture. Captured returns that window as
// a new slice.
type StringSlice struct {
	buf     string
	lo, hi  int // current view is buf[lo:hi]
	capture int // capture window is buf[capture:lo]
}

// NotFound is returned by Find when the byte does not occur in the view.
const NotFound = -1

// NewStringSlice returns a view over s with surrounding whitespace
// stripped. The caller must keep s alive for as long as the slice (or
// any slice derived from it) is in use.
func NewStringSlice(s string) StringSlice {
	ss := StringSlice{buf: s, lo: 0, hi: len(s)}
	ss, _ = ss.StripBothWhitespace()
	return ss
}

// String returns the text currently in view.
func (s StringSlice) String() string {
	return s.buf[s.lo:s.hi]
}

// Len returns the number of bytes in view.
func (s StringSlice) Len() int {
	return s.hi - s.lo
}

// Empty reports whether the view has zero length.
func (s StringSlice) Empty() bool {
	return s.lo == s.hi
}

// At returns the byte at index i of the view.
// Indexing outside [0, Len()) is a programmer error and panics.
func (s StringSlice) At(i int) byte {
	if i < 0 || i >= s.Len() {
		panic("types: StringSlice index out of range")
	}
	return s.buf[s.lo+i]
}

// StartsWith reports whether the view begins with prefix.
func (s StringSlice) StartsWith(prefix string) bool {
	return s.Len() >= len(prefix) && s.buf[s.lo:s.lo+len(prefix)] == prefix
}

// EndsWith reports whether the view ends with suffix.
func (s StringSlice) EndsWith(suffix string) bool {
	return s.Len() >= len(suffix) && s.buf[s.hi-len(suffix):s.hi] == suffix
}

// isSpace matches the ASCII whitespace set of the standard isspace
// predicate: space, tab, newline, vertical tab, form feed, carriage return.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// StripLeftWhitespace returns the view advanced past any leading
// whitespace and whether anything was stripped.
func (s StringSlice) StripLeftWhitespace() (StringSlice, bool) {
	n := 0
	for n < s.Len() && isSpace(s.buf[s.lo+n]) {
		n++
	}
	if n == 0 {
		return s, false
	}
	return s.StripLeftCount(n)
}

// StripRightWhitespace returns the view retracted past any trailing
// whitespace and whether anything was stripped.
func (s StringSlice) StripRightWhitespace() (StringSlice, bool) {
	n := 0
	for n < s.Len() && isSpace(s.buf[s.hi-1-n]) {
		n++
	}
	if n == 0 {
		return s, false
	}
	return s.StripRightCount(n)
}

// StripLeftCount removes exactly n bytes from the front. If n exceeds the
// view length the slice is returned unchanged and the result is false.
// Stripped bytes extend the capture window.
func (s StringSlice) StripLeftCount(n int) (StringSlice, bool) {
	if n < 0 || n > s.Len() {
		return s, false
	}
	s.lo += n
	return s, true
}

// StripRightCount removes exactly n bytes from the back. If n exceeds the
// view length the slice is returned unchanged and the result is false.
func (s StringSlice) StripRightCount(n int) (StringSlice, bool) {
	if n < 0 || n > s.Len() {
		return s, false
	}
	s.hi -= n
	return s, true
}

// StripLeftPrefix removes prefix from the front if the view starts with
// it; otherwise the slice is returned unchanged and the result is false.
func (s StringSlice) StripLeftPrefix(prefix string) (StringSlice, bool) {
	if !s.StartsWith(prefix) {
		return s, false
	}
	return s.StripLeftCount(len(prefix))
}

// StripRightSuffix removes suffix from the back if the view ends with
// it; otherwise the slice is returned unchanged and the result is false.
func (s StringSlice) StripRightSuffix(suffix string) (StringSlice, bool) {
	if !s.EndsWith(suffix) {
		return s, false
	}
	return s.StripRightCount(len(suffix))
}

// StripBothWhitespace strips whitespace from both ends. The result is
// true if either side stripped anything.
func (s StringSlice) StripBothWhitespace() (StringSlice, bool) {
	s, l := s.StripLeftWhitespace()
	s, r := s.StripRightWhitespace()
	return s, l || r
}

// StripParensAndWhitespace unwraps a parenthesized region: leading
// whitespace, one leading "(", whitespace on both sides, one trailing
// ")", trailing whitespace. Each step runs unconditionally in this exact
// order; individual steps may be no-ops. This is the only unwrapping
// rule the type-string grammar needs for "tensor( ... )".
func (s StringSlice) StripParensAndWhitespace() StringSlice {
	s, _ = s.StripLeftWhitespace()
	s, _ = s.StripLeftPrefix("(")
	s, _ = s.StripBothWhitespace()
	s, _ = s.StripRightSuffix(")")
	s, _ = s.StripRightWhitespace()
	return s
}

// Find returns the index of the first occurrence of ch in the view, or
// NotFound.
func (s StringSlice) Find(ch byte) int {
	for i := s.lo; i < s.hi; i++ {
		if s.buf[i] == ch {
			return i - s.lo
		}
	}
	return NotFound
}

// ResetCapture moves the capture window start to the current front edge,
// making the window empty.
func (s StringSlice) ResetCapture() StringSlice {
	s.capture = s.lo
	return s
}

// Captured returns a new slice over the bytes consumed from the front
// since the last ResetCapture (or construction). Like NewStringSlice,
// the returned view has surrounding whitespace stripped.
func (s StringSlice) Captured() StringSlice {
	c := StringSlice{buf: s.buf, lo: s.capture, hi: s.lo, capture: s.capture}
	c, _ = c.StripBothWhitespace()
	return c
}
