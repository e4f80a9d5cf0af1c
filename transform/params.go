package transform

// Params holds the tunable settings consumed by parameterized transforms.
// Kinds that take no parameters ignore it entirely.
type Params struct {
	ScaleFactor   float64 // Scale: multiplier applied to y
	OffsetValue   float64 // Offset: addend applied to y
	ClampMin      float64 // Clamp: lower bound
	ClampMax      float64 // Clamp: upper bound
	LogBase       float64 // reserved for a configurable log base; Log10/Ln ignore it
	SkipNaN       bool    // reserved; NaN filtering of outputs is not implemented
	FFTInDB       bool    // FFT: output 20*log10(magnitude) instead of linear magnitude
	FFTSampleRate float64 // FFT: sample rate for the frequency axis
}

// DefaultParams returns the parameter defaults shared by all constructors.
func DefaultParams() Params {
	return Params{
		ScaleFactor:   1,
		OffsetValue:   0,
		ClampMin:      0,
		ClampMax:      1,
		LogBase:       10,
		SkipNaN:       true,
		FFTInDB:       false,
		FFTSampleRate: 1,
	}
}

// Option adjusts transform parameters at construction time.
type Option func(*Params)

// WithParams replaces the whole parameter set.
func WithParams(p Params) Option {
	return func(dst *Params) {
		*dst = p
	}
}

// WithScaleFactor sets the Scale multiplier.
func WithScaleFactor(factor float64) Option {
	return func(p *Params) {
		p.ScaleFactor = factor
	}
}

// WithOffset sets the Offset addend.
func WithOffset(offset float64) Option {
	return func(p *Params) {
		p.OffsetValue = offset
	}
}

// WithClampRange sets the Clamp bounds. The bounds are taken as given and
// never validated or reordered.
func WithClampRange(minVal, maxVal float64) Option {
	return func(p *Params) {
		p.ClampMin = minVal
		p.ClampMax = maxVal
	}
}

// WithFFTDecibels switches FFT output to 20*log10(magnitude).
func WithFFTDecibels() Option {
	return func(p *Params) {
		p.FFTInDB = true
	}
}

// WithFFTSampleRate sets the sample rate used for the FFT frequency axis.
// Non-positive rates are ignored; the FFT falls back to 1.0 at apply time.
func WithFFTSampleRate(rate float64) Option {
	return func(p *Params) {
		if rate > 0 {
			p.FFTSampleRate = rate
		}
	}
}
