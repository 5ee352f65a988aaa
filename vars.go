package axpy

// Vars declares the statement signature: which identifiers name sequence
// operands and which name broadcast scalars. A name holds exactly one
// kind at a time; re-setting it replaces the previous binding, so the
// same identifier can never act as both a scalar and a sequence within
// one statement.
//
// The zero value is ready to use.
type Vars struct {
	seqs    map[string][]float64
	scalars map[string]float64
}

// SetSeq binds name to a sequence operand. The destination must be bound
// this way; its slice is mutated in place when the loop runs.
func (v *Vars) SetSeq(name string, s []float64) {
	if v.seqs == nil {
		v.seqs = make(map[string][]float64)
	}
	delete(v.scalars, name)
	v.seqs[name] = s
}

// SetScalar binds name to a scalar operand broadcast across the pass.
func (v *Vars) SetScalar(name string, x float64) {
	if v.scalars == nil {
		v.scalars = make(map[string]float64)
	}
	delete(v.seqs, name)
	v.scalars[name] = x
}

func (v *Vars) seq(name string) ([]float64, bool) {
	s, ok := v.seqs[name]
	return s, ok
}

func (v *Vars) scalar(name string) (float64, bool) {
	x, ok := v.scalars[name]
	return x, ok
}
