package transform

import "strings"

// pipelineStep pairs a transform with an enabled flag so a step can be
// switched off without losing its configuration.
type pipelineStep struct {
	tr      Transform
	enabled bool
}

// Pipeline is an ordered chain of transforms applied in sequence, each
// step feeding its output into the next. Disabled steps are skipped.
//
// A Pipeline is not safe for concurrent use; guard it externally or
// keep one per goroutine.
type Pipeline struct {
	name  string
	steps []pipelineStep
}

// NewPipeline creates an empty pipeline with the given name.
func NewPipeline(name string) *Pipeline {
	return &Pipeline{name: name}
}

// Push appends a transform as an enabled step at the end of the chain.
func (p *Pipeline) Push(tr Transform) {
	p.steps = append(p.steps, pipelineStep{tr: tr, enabled: true})
}

// Insert places a transform as an enabled step at the given position.
// Indices outside [0, StepCount] are clamped to the nearest end.
func (p *Pipeline) Insert(index int, tr Transform) {
	if index < 0 {
		index = 0
	}
	if index > len(p.steps) {
		index = len(p.steps)
	}
	p.steps = append(p.steps, pipelineStep{})
	copy(p.steps[index+1:], p.steps[index:])
	p.steps[index] = pipelineStep{tr: tr, enabled: true}
}

// Remove deletes the step at index. Out-of-range indices are ignored.
func (p *Pipeline) Remove(index int) {
	if index < 0 || index >= len(p.steps) {
		return
	}
	p.steps = append(p.steps[:index], p.steps[index+1:]...)
}

// Clear removes all steps.
func (p *Pipeline) Clear() {
	p.steps = nil
}

// Move relocates the step at from to position to, shifting the steps
// in between. Nothing happens when either index is out of range or the
// positions are equal.
func (p *Pipeline) Move(from, to int) {
	if from < 0 || from >= len(p.steps) {
		return
	}
	if to < 0 || to >= len(p.steps) || from == to {
		return
	}

	step := p.steps[from]
	p.steps = append(p.steps[:from], p.steps[from+1:]...)
	p.steps = append(p.steps, pipelineStep{})
	copy(p.steps[to+1:], p.steps[to:])
	p.steps[to] = step
}

// SetEnabled switches the step at index on or off. Out-of-range
// indices are ignored.
func (p *Pipeline) SetEnabled(index int, enabled bool) {
	if index < 0 || index >= len(p.steps) {
		return
	}
	p.steps[index].enabled = enabled
}

// Enabled reports whether the step at index is enabled. Out-of-range
// indices report false.
func (p *Pipeline) Enabled(index int) bool {
	if index < 0 || index >= len(p.steps) {
		return false
	}
	return p.steps[index].enabled
}

// StepCount returns the number of steps, enabled or not.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// Step returns a pointer to the transform at index so callers can
// adjust its parameters in place. It returns nil when index is out of
// range.
func (p *Pipeline) Step(index int) *Transform {
	if index < 0 || index >= len(p.steps) {
		return nil
	}
	return &p.steps[index].tr
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string { return p.name }

// SetName renames the pipeline.
func (p *Pipeline) SetName(name string) { p.name = name }

// IsIdentity reports whether applying the pipeline would leave the
// data unchanged: no steps at all, or every enabled step is an
// identity transform.
func (p *Pipeline) IsIdentity() bool {
	for i := range p.steps {
		if p.steps[i].enabled && p.steps[i].tr.Kind() != KindIdentity {
			return false
		}
	}
	return true
}

// Apply runs the series through every enabled step in order and
// returns the final result. The inputs are never modified and the
// outputs are freshly allocated, truncated to the shorter input
// length.
func (p *Pipeline) Apply(xIn, yIn []float64) ([]float64, []float64) {
	if p.IsIdentity() {
		return applyIdentity(xIn, yIn)
	}

	// At least one enabled step runs here, so the returned slices are
	// that step's fresh allocations, never the caller's inputs.
	x, y := xIn, yIn
	for i := range p.steps {
		if !p.steps[i].enabled {
			continue
		}
		x, y = p.steps[i].tr.Apply(x, y)
	}

	return x, y
}

// Description summarizes the enabled steps, joined by " → ". An empty
// pipeline reports "Empty pipeline"; a non-empty pipeline with every
// step disabled reports "All steps disabled".
func (p *Pipeline) Description() string {
	if len(p.steps) == 0 {
		return "Empty pipeline"
	}

	parts := make([]string, 0, len(p.steps))
	for i := range p.steps {
		if p.steps[i].enabled {
			parts = append(parts, p.steps[i].tr.Description())
		}
	}
	if len(parts) == 0 {
		return "All steps disabled"
	}

	return strings.Join(parts, " → ")
}

// Clone returns a copy whose steps can be modified without affecting
// the original.
func (p *Pipeline) Clone() *Pipeline {
	return &Pipeline{
		name:  p.name,
		steps: append([]pipelineStep(nil), p.steps...),
	}
}
