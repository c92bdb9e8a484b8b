package CTU2D

import (
	"github.com/notargets/ctu2d/grid"
)

// workspace holds the scratch fields of one flux evaluation. It is owned by a
// single call between checkout and return to the pool.
type workspace struct {
	Q             [4]grid.Field // Primitives (rho, u, v, p)
	XiX, XiY, Xi  grid.Field    // Flattening coefficients
	DQx, DQy, DQ2 [4]grid.Field // Limited slopes, DQ2 holds MC2 slopes feeding MC4

	// Interface states, primitive after tracing, conserved after conversion
	Uxl, Uxr, Uyl, Uyr [4]grid.Field
	FxT, FyT           [4]grid.Field // Transverse fluxes from the first Riemann pass
}

func newWorkspace(g *grid.Grid2D) (ws *workspace) {
	ws = &workspace{
		Q:   g.NewFields(),
		XiX: g.NewField(),
		XiY: g.NewField(),
		Xi:  g.NewField(),
		DQx: g.NewFields(),
		DQy: g.NewFields(),
		DQ2: g.NewFields(),
		Uxl: g.NewFields(),
		Uxr: g.NewFields(),
		Uyl: g.NewFields(),
		Uyr: g.NewFields(),
		FxT: g.NewFields(),
		FyT: g.NewFields(),
	}
	return
}

func (ws *workspace) zero() {
	for _, F := range [][4]grid.Field{ws.Q, ws.DQx, ws.DQy, ws.DQ2, ws.Uxl, ws.Uxr, ws.Uyl, ws.Uyr, ws.FxT, ws.FyT} {
		for n := range F {
			F[n].Zero()
		}
	}
	ws.XiX.Zero()
	ws.XiY.Zero()
	ws.Xi.Zero()
}

func (s *Solver) getWorkspace() (ws *workspace) {
	ws = s.pool.Get().(*workspace)
	ws.zero()
	return
}

func (s *Solver) putWorkspace(ws *workspace) { s.pool.Put(ws) }
