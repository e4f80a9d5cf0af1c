package transform

import "testing"

func TestDefaultParams(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	want := Params{
		ScaleFactor:   1,
		ClampMax:      1,
		LogBase:       10,
		SkipNaN:       true,
		FFTSampleRate: 1,
	}
	if p != want {
		t.Fatalf("DefaultParams() = %+v, want %+v", p, want)
	}
}

func TestOptionsAdjustParams(t *testing.T) {
	t.Parallel()

	tr := New(KindScale,
		WithScaleFactor(2.5),
		WithOffset(-1),
		WithClampRange(5, 1),
		WithFFTDecibels(),
		WithFFTSampleRate(48000),
	)

	p := tr.Params()
	if p.ScaleFactor != 2.5 {
		t.Fatalf("ScaleFactor = %g, want 2.5", p.ScaleFactor)
	}
	if p.OffsetValue != -1 {
		t.Fatalf("OffsetValue = %g, want -1", p.OffsetValue)
	}
	// Inverted clamp bounds are stored untouched.
	if p.ClampMin != 5 || p.ClampMax != 1 {
		t.Fatalf("clamp bounds = [%g, %g], want [5, 1]", p.ClampMin, p.ClampMax)
	}
	if !p.FFTInDB {
		t.Fatalf("FFTInDB not set")
	}
	if p.FFTSampleRate != 48000 {
		t.Fatalf("FFTSampleRate = %g, want 48000", p.FFTSampleRate)
	}
}

func TestWithFFTSampleRateIgnoresNonPositive(t *testing.T) {
	t.Parallel()

	for _, rate := range []float64{0, -44100} {
		tr := New(KindFFT, WithFFTSampleRate(rate))
		if got := tr.Params().FFTSampleRate; got != 1 {
			t.Fatalf("WithFFTSampleRate(%g): rate = %g, want default 1", rate, got)
		}
	}
}

func TestWithParamsReplacesEverything(t *testing.T) {
	t.Parallel()

	custom := Params{
		ScaleFactor:   3,
		OffsetValue:   7,
		ClampMin:      -2,
		ClampMax:      2,
		LogBase:       2,
		FFTSampleRate: 8000,
	}
	tr := New(KindOffset, WithParams(custom))
	if got := tr.Params(); got != custom {
		t.Fatalf("Params() = %+v, want %+v", got, custom)
	}
}

func TestNewToleratesNilOption(t *testing.T) {
	t.Parallel()

	tr := New(KindScale, nil, WithScaleFactor(4))
	if got := tr.Params().ScaleFactor; got != 4 {
		t.Fatalf("ScaleFactor = %g, want 4", got)
	}
}
