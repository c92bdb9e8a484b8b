package grid

import (
	"gonum.org/v1/gonum/mat"
)

// Field is one cell-centered scalar over the padded grid. Rows are i, columns are j,
// DataP aliases the dense storage so hot loops can index it directly.
type Field struct {
	M      *mat.Dense
	DataP  []float64
	qx, qy int
}

func NewField(qx, qy int) Field {
	M := mat.NewDense(qx, qy, nil)
	return Field{
		M:     M,
		DataP: M.RawMatrix().Data,
		qx:    qx,
		qy:    qy,
	}
}

func (f Field) Dims() (qx, qy int) { return f.qx, f.qy }

func (f Field) Ind(i, j int) int { return i*f.qy + j }

func (f Field) At(i, j int) float64 { return f.DataP[i*f.qy+j] }

func (f Field) Set(i, j int, val float64) { f.DataP[i*f.qy+j] = val }

func (f Field) Copy() (R Field) {
	R = NewField(f.qx, f.qy)
	R.M.Copy(f.M)
	return
}

// CopyFrom overwrites the receiver's values, shapes must match
func (f Field) CopyFrom(g Field) {
	copy(f.DataP, g.DataP)
}

func (f Field) Fill(val float64) {
	for i := range f.DataP {
		f.DataP[i] = val
	}
}

func (f Field) Zero() { f.M.Zero() }
