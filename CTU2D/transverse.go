package CTU2D

import (
	"github.com/notargets/ctu2d/grid"
)

// Transverse flux differences feeding the corner coupling. Each names the
// interface state it corrects; fluxes sit on the low face of their cell, so
// F_x[i,j] is at i-1/2 and F_y[i,j] at j-1/2.

// transverseXL is F_y[i-1,j+1] - F_y[i-1,j], for the left state of face i-1/2
func transverseXL(Fy [4]grid.Field, i, j int) (dF [4]float64) {
	for n := range dF {
		dF[n] = Fy[n].At(i-1, j+1) - Fy[n].At(i-1, j)
	}
	return
}

// transverseXR is F_y[i,j+1] - F_y[i,j], for the right state of face i-1/2
func transverseXR(Fy [4]grid.Field, i, j int) (dF [4]float64) {
	for n := range dF {
		dF[n] = Fy[n].At(i, j+1) - Fy[n].At(i, j)
	}
	return
}

// transverseYL is F_x[i+1,j-1] - F_x[i,j-1], for the lower state of face j-1/2
func transverseYL(Fx [4]grid.Field, i, j int) (dF [4]float64) {
	for n := range dF {
		dF[n] = Fx[n].At(i+1, j-1) - Fx[n].At(i, j-1)
	}
	return
}

// transverseYR is F_x[i+1,j] - F_x[i,j], for the upper state of face j-1/2
func transverseYR(Fx [4]grid.Field, i, j int) (dF [4]float64) {
	for n := range dF {
		dF[n] = Fx[n].At(i+1, j) - Fx[n].At(i, j)
	}
	return
}

func subtractScaled(U [4]grid.Field, i, j int, scale float64, dF [4]float64) {
	for n := range dF {
		k := U[n].Ind(i, j)
		U[n].DataP[k] -= scale * dF[n]
	}
}

// transverseCorrect applies half the transverse flux divergence over half a
// step to all four interface states of every cell in [ilo-1, ihi+1]^2
func (s *Solver) transverseCorrect(ws *workspace, dt float64) error {
	var (
		g     = s.Grid
		hdtdx = 0.5 * dt / g.Dx
		hdtdy = 0.5 * dt / g.Dy
		FxT   = ws.FxT
		FyT   = ws.FyT
		jBeg  = g.JLo - 1
		jEnd  = g.JHi + 1
	)
	return s.parallelRows(g.ILo-1, g.IHi+2, func(i0, i1 int) error {
		for i := i0; i < i1; i++ {
			for j := jBeg; j <= jEnd; j++ {
				subtractScaled(ws.Uxl, i, j, hdtdy, transverseXL(FyT, i, j))
				subtractScaled(ws.Uxr, i, j, hdtdy, transverseXR(FyT, i, j))
				subtractScaled(ws.Uyl, i, j, hdtdx, transverseYL(FxT, i, j))
				subtractScaled(ws.Uyr, i, j, hdtdx, transverseYR(FxT, i, j))
			}
		}
		return nil
	})
}
