package CTU2D

import (
	"math"

	"github.com/notargets/ctu2d/grid"
	"github.com/notargets/ctu2d/types"
)

// artificialViscosity adds cvisc*max(-div(u)*h, 0)*(U[low]-U[cell]) to the
// fluxes of the faces in [ilo-1, ihi+1]^2, only where the flow converges
func (s *Solver) artificialViscosity(Q, U, Fx, Fy [4]grid.Field) error {
	if s.Config.CVisc == 0 {
		return nil
	}
	var (
		g     = s.Grid
		dx    = g.Dx
		dy    = g.Dy
		cvisc = s.Config.CVisc
		u     = Q[types.IU]
		v     = Q[types.IV]
	)
	return s.parallelRows(g.ILo-1, g.IHi+2, func(i0, i1 int) error {
		for i := i0; i < i1; i++ {
			for j := g.JLo - 1; j <= g.JHi+1; j++ {
				divUx := (u.At(i, j)-u.At(i-1, j))/dx +
					0.25*(v.At(i, j+1)+v.At(i-1, j+1)-v.At(i, j-1)-v.At(i-1, j-1))/dy
				divUy := 0.25*(u.At(i+1, j)+u.At(i+1, j-1)-u.At(i-1, j)-u.At(i-1, j-1))/dx +
					(v.At(i, j)-v.At(i, j-1))/dy
				aviscoX := cvisc * math.Max(-divUx*dx, 0)
				aviscoY := cvisc * math.Max(-divUy*dy, 0)
				for n := range U {
					k := U[n].Ind(i, j)
					Fx[n].DataP[k] += aviscoX * (U[n].At(i-1, j) - U[n].DataP[k])
					Fy[n].DataP[k] += aviscoY * (U[n].At(i, j-1) - U[n].DataP[k])
				}
			}
		}
		return nil
	})
}
