package transform

import "math"

// registerDefaults seeds the registry with a few named convenience
// transforms so they resolve through Get like any custom entry.
func (r *Registry) registerDefaults() {
	r.Register("square", func(v float64) float64 { return v * v }, "y²")
	r.Register("sqrt", func(v float64) float64 {
		if v >= 0 {
			return math.Sqrt(v)
		}
		return 0
	}, "√y")
	r.Register("reciprocal", func(v float64) float64 {
		if v != 0 {
			return 1 / v
		}
		return 0
	}, "1/y")
	r.Register("exp", math.Exp, "e^y")
	r.Register("sin", math.Sin, "sin(y)")
	r.Register("cos", math.Cos, "cos(y)")
}
