package types

import "testing"

func TestNewStringSliceTrimsWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"float", "float"},
		{"  float  ", "float"},
		{"\t tensor(float) \n", "tensor(float)"},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NewStringSlice(tt.in).String(); got != tt.want {
			t.Errorf("NewStringSlice(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStartsWithEndsWith(t *testing.T) {
	s := NewStringSlice("tensor(float)")

	if !s.StartsWith("tensor") {
		t.Error("expected StartsWith(\"tensor\") = true")
	}
	if s.StartsWith("tensor(float)x") {
		t.Error("StartsWith must be false when the probe is longer than the view")
	}
	if !s.EndsWith(")") {
		t.Error("expected EndsWith(\")\") = true")
	}
	if s.EndsWith("int") {
		t.Error("expected EndsWith(\"int\") = false")
	}
}

func TestStripCounts(t *testing.T) {
	s := NewStringSlice("tensor(float)")

	s2, ok := s.StripLeftCount(7)
	if !ok || s2.String() != "float)" {
		t.Errorf("StripLeftCount(7) = %q, %v", s2.String(), ok)
	}
	s3, ok := s2.StripRightCount(1)
	if !ok || s3.String() != "float" {
		t.Errorf("StripRightCount(1) = %q, %v", s3.String(), ok)
	}

	// Over-length strips are no-ops that report failure.
	if _, ok := s3.StripLeftCount(6); ok {
		t.Error("StripLeftCount past the end must fail")
	}
	if _, ok := s3.StripRightCount(6); ok {
		t.Error("StripRightCount past the end must fail")
	}

	// Value semantics: the original views are untouched.
	if s.String() != "tensor(float)" || s2.String() != "float)" {
		t.Error("strip must not mutate its receiver")
	}
}

func TestStripPrefixSuffix(t *testing.T) {
	s := NewStringSlice("tensor(int32)")

	s2, ok := s.StripLeftPrefix("tensor")
	if !ok || s2.String() != "(int32)" {
		t.Errorf("StripLeftPrefix(\"tensor\") = %q, %v", s2.String(), ok)
	}
	if _, ok := s.StripLeftPrefix("seq"); ok {
		t.Error("StripLeftPrefix on a non-prefix must be a failed no-op")
	}

	s3, ok := s2.StripRightSuffix(")")
	if !ok || s3.String() != "(int32" {
		t.Errorf("StripRightSuffix(\")\") = %q, %v", s3.String(), ok)
	}
	if _, ok := s3.StripRightSuffix(")"); ok {
		t.Error("StripRightSuffix on a non-suffix must be a failed no-op")
	}
}

func TestStripParensAndWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(float)", "float"},
		{" ( float ) ", "float"},
		{"\t(\tint64\t)\t", "int64"},
		{"float", "float"},   // no parens at all
		{"(float", "float"},  // unbalanced open
		{"float)", "float"},  // unbalanced close
		{"()", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NewStringSlice(tt.in).StripParensAndWhitespace().String(); got != tt.want {
			t.Errorf("StripParensAndWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFind(t *testing.T) {
	s := NewStringSlice("tensor(float)")

	if idx := s.Find('('); idx != 6 {
		t.Errorf("Find('(') = %d, want 6", idx)
	}
	if idx := s.Find('z'); idx != NotFound {
		t.Errorf("Find('z') = %d, want NotFound", idx)
	}
}

func TestAtAndLen(t *testing.T) {
	s := NewStringSlice("  abc  ")

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if s.At(0) != 'a' || s.At(2) != 'c' {
		t.Errorf("At() = %c, %c, want a, c", s.At(0), s.At(2))
	}
	if !NewStringSlice("   ").Empty() {
		t.Error("all-whitespace input must produce an empty view")
	}
}

func TestCapture(t *testing.T) {
	s := NewStringSlice("tensor(float)")
	s = s.ResetCapture()
	s, _ = s.StripLeftPrefix("tensor")
	s, _ = s.StripLeftPrefix("(")

	if got := s.Captured().String(); got != "tensor(" {
		t.Errorf("Captured() = %q, want %q", got, "tensor(")
	}

	// A reset empties the window.
	s = s.ResetCapture()
	if got := s.Captured().String(); got != "" {
		t.Errorf("Captured() after reset = %q, want empty", got)
	}

	// Only left strips feed the window.
	s, _ = s.StripRightSuffix(")")
	if got := s.Captured().String(); got != "" {
		t.Errorf("right strip must not extend the capture window, got %q", got)
	}
}
