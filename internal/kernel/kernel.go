// Package kernel provides the pure-Go fused loops behind the recognized
// expression shapes. Operands arrive pre-truncated to a common length;
// a length mismatch here is a binder bug, not user input, and panics.
// Every kernel reads an index before writing it, so operands may alias
// the destination as the same view.
package kernel

func checkLen(dst []float64, others ...[]float64) {
	for _, s := range others {
		if len(s) != len(dst) {
			panic("kernel: slice length mismatch")
		}
	}
}

// Fill sets every element: dst[i] = v.
func Fill(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}

// AddScalarInPlace adds a scalar to every element: dst[i] += v.
func AddScalarInPlace(dst []float64, v float64) {
	for i := range dst {
		dst[i] += v
	}
}

// DivScalarInPlace divides every element by a scalar: dst[i] /= v.
// The division is kept as written; multiplying by 1/v would round
// differently.
func DivScalarInPlace(dst []float64, v float64) {
	for i := range dst {
		dst[i] /= v
	}
}

// Neg negates element-wise: dst[i] = -x[i].
func Neg(dst, x []float64) {
	checkLen(dst, x)
	for i := range dst {
		dst[i] = -x[i]
	}
}

// Add performs element-wise addition: dst[i] = x[i] + y[i].
func Add(dst, x, y []float64) {
	checkLen(dst, x, y)
	for i := range dst {
		dst[i] = x[i] + y[i]
	}
}

// Sub performs element-wise subtraction: dst[i] = x[i] - y[i].
func Sub(dst, x, y []float64) {
	checkLen(dst, x, y)
	for i := range dst {
		dst[i] = x[i] - y[i]
	}
}

// SubInPlace performs in-place element-wise subtraction: dst[i] -= x[i].
func SubInPlace(dst, x []float64) {
	checkLen(dst, x)
	for i := range dst {
		dst[i] -= x[i]
	}
}

// DivInPlace performs in-place element-wise division: dst[i] /= x[i].
func DivInPlace(dst, x []float64) {
	checkLen(dst, x)
	for i := range dst {
		dst[i] /= x[i]
	}
}

// Div divides a sequence by a scalar: dst[i] = x[i] / v.
func Div(dst, x []float64, v float64) {
	checkLen(dst, x)
	for i := range dst {
		dst[i] = x[i] / v
	}
}

// Axpy performs dst[i] = a*x[i] + y[i]. x or y may alias dst.
func Axpy(dst []float64, a float64, x, y []float64) {
	checkLen(dst, x, y)
	for i := range dst {
		dst[i] = a*x[i] + y[i]
	}
}

// AxpyInPlace performs dst[i] += a*x[i].
func AxpyInPlace(dst []float64, a float64, x []float64) {
	checkLen(dst, x)
	for i := range dst {
		dst[i] += a * x[i]
	}
}
