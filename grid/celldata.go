package grid

import (
	"github.com/notargets/ctu2d/types"
)

// CellData is the conserved solution (rho, rho*u, rho*v, E) on a grid
type CellData struct {
	Grid *Grid2D
	U    [4]Field
	BCs  BCObject
}

func NewCellData(g *Grid2D, bcs BCObject) (cd *CellData) {
	cd = &CellData{
		Grid: g,
		U:    g.NewFields(),
		BCs:  bcs,
	}
	return
}

func (cd *CellData) FillBCs() { cd.BCs.FillBCs(cd.Grid, cd.U) }

// State returns the conserved vector of one cell
func (cd *CellData) State(i, j int) (s [4]float64) {
	for n := 0; n < types.NVar; n++ {
		s[n] = cd.U[n].At(i, j)
	}
	return
}

func (cd *CellData) SetState(i, j int, s [4]float64) {
	for n := 0; n < types.NVar; n++ {
		cd.U[n].Set(i, j, s[n])
	}
}

func (cd *CellData) Copy() (R *CellData) {
	R = &CellData{Grid: cd.Grid, BCs: cd.BCs}
	for n := range cd.U {
		R.U[n] = cd.U[n].Copy()
	}
	return
}
