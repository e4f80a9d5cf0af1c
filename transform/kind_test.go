package transform

import "testing"

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindIdentity, "Identity"},
		{KindLog10, "Log10"},
		{KindLn, "Ln"},
		{KindAbs, "Abs"},
		{KindNegate, "Negate"},
		{KindNormalize, "Normalize"},
		{KindStandardize, "Standardize"},
		{KindDerivative, "Derivative"},
		{KindCumulativeSum, "CumulativeSum"},
		{KindDiff, "Diff"},
		{KindScale, "Scale"},
		{KindOffset, "Offset"},
		{KindClamp, "Clamp"},
		{KindFFT, "FFT"},
		{KindCustom, "Custom"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Fatalf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		parsed, ok := ParseKind(kind.String())
		if !ok {
			t.Fatalf("ParseKind(%q): not found", kind.String())
		}
		if parsed != kind {
			t.Fatalf("ParseKind(%q) = %v, want %v", kind.String(), parsed, kind)
		}
	}
}

func TestParseKindRejectsUnknownNames(t *testing.T) {
	t.Parallel()

	// Matching is exact and case-sensitive, and Custom is not a name
	// that can be instantiated without a callback.
	for _, name := range []string{"", "identity", "LOG10", "Custom", "Gradient"} {
		if _, ok := ParseKind(name); ok {
			t.Fatalf("ParseKind(%q) unexpectedly resolved", name)
		}
	}
}

func TestKindsListing(t *testing.T) {
	t.Parallel()

	kinds := Kinds()
	if len(kinds) != 14 {
		t.Fatalf("len(Kinds()) = %d, want 14", len(kinds))
	}
	if kinds[0] != KindIdentity || kinds[len(kinds)-1] != KindFFT {
		t.Fatalf("Kinds() order wrong: starts %v, ends %v", kinds[0], kinds[len(kinds)-1])
	}
	for _, k := range kinds {
		if k == KindCustom {
			t.Fatalf("Kinds() must not contain KindCustom")
		}
	}

	// Each call returns a fresh slice.
	kinds[0] = KindFFT
	if Kinds()[0] != KindIdentity {
		t.Fatalf("Kinds() shares backing storage across calls")
	}
}
