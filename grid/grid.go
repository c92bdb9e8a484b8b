package grid

import (
	"fmt"
)

// Grid2D is a uniform cell-centered grid padded by Ng ghost layers on every side.
// Indices run 0..Qx-1 in x and 0..Qy-1 in y, the interior is ILo..IHi x JLo..JHi.
type Grid2D struct {
	Nx, Ny                 int
	Ng                     int
	Qx, Qy                 int
	ILo, IHi, JLo, JHi     int
	XMin, XMax, YMin, YMax float64
	Dx, Dy                 float64
	X, Y                   []float64 // Cell centers, including ghosts
}

func NewGrid2D(nx, ny, ng int, xmin, xmax, ymin, ymax float64) (g *Grid2D, err error) {
	switch {
	case nx < 1 || ny < 1:
		err = fmt.Errorf("grid needs at least one interior cell per direction, have %dx%d", nx, ny)
		return
	case ng < 1:
		err = fmt.Errorf("grid needs at least one ghost layer, have %d", ng)
		return
	case !(xmax > xmin) || !(ymax > ymin):
		err = fmt.Errorf("empty domain [%g,%g]x[%g,%g]", xmin, xmax, ymin, ymax)
		return
	}
	g = &Grid2D{
		Nx: nx, Ny: ny, Ng: ng,
		Qx: nx + 2*ng, Qy: ny + 2*ng,
		ILo: ng, IHi: ng + nx - 1,
		JLo: ng, JHi: ng + ny - 1,
		XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax,
		Dx: (xmax - xmin) / float64(nx),
		Dy: (ymax - ymin) / float64(ny),
	}
	g.X = make([]float64, g.Qx)
	for i := range g.X {
		g.X[i] = xmin + (float64(i-ng)+0.5)*g.Dx
	}
	g.Y = make([]float64, g.Qy)
	for j := range g.Y {
		g.Y[j] = ymin + (float64(j-ng)+0.5)*g.Dy
	}
	return
}

func (g *Grid2D) NewField() Field { return NewField(g.Qx, g.Qy) }

func (g *Grid2D) NewFields() (F [4]Field) {
	for n := range F {
		F[n] = g.NewField()
	}
	return
}

// Interior reports whether (i,j) is a non-ghost cell
func (g *Grid2D) Interior(i, j int) bool {
	return i >= g.ILo && i <= g.IHi && j >= g.JLo && j <= g.JHi
}

func (g *Grid2D) String() string {
	return fmt.Sprintf("%dx%d cells, %d ghosts, [%g,%g]x[%g,%g], dx=%g dy=%g",
		g.Nx, g.Ny, g.Ng, g.XMin, g.XMax, g.YMin, g.YMax, g.Dx, g.Dy)
}
