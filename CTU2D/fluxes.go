package CTU2D

import (
	"fmt"

	"github.com/notargets/ctu2d/grid"
	"github.com/notargets/ctu2d/types"
	"github.com/notargets/ctu2d/utils"
)

// Fluxes returns the CTU interface fluxes for one step of size dt. Fx[i,j] is
// the flux through face i-1/2 and Fy[i,j] through j-1/2; both are set on
// [ilo-1, ihi+1]^2 and zero elsewhere. U is read only, its ghost cells must
// already hold boundary values. Physically valid states are a precondition:
// non-positive density reaches the sound speed unguarded and surfaces as NaN.
func (s *Solver) Fluxes(U [4]grid.Field, dt float64) (Fx, Fy [4]grid.Field, err error) {
	var (
		ws *workspace
	)
	if !(dt > 0) || !utils.IsFinite(dt) {
		err = fmt.Errorf("time step must be finite and > 0, have %v", dt)
		return
	}
	if err = s.checkFields(U); err != nil {
		return
	}
	ws = s.getWorkspace()
	defer s.putWorkspace(ws)

	if err = s.reconstruct(U, ws); err != nil {
		return
	}
	tracer := s.characteristicTracer(dt)
	if err = s.interfaceStates(types.XDir, ws.Q, ws.DQx, ws.Uxl, ws.Uxr, tracer); err != nil {
		return
	}
	if err = s.interfaceStates(types.YDir, ws.Q, ws.DQy, ws.Uyl, ws.Uyr, tracer); err != nil {
		return
	}
	if err = s.toConserved(ws.Uxl, ws.Uxr, ws.Uyl, ws.Uyr); err != nil {
		return
	}
	// Transverse fluxes, one face wider than the final ones
	g := s.Grid
	if err = s.riemannPass(types.XDir, ws.Uxl, ws.Uxr, ws.FxT,
		g.ILo-1, g.IHi+2, g.JLo-2, g.JHi+2); err != nil {
		return
	}
	if err = s.riemannPass(types.YDir, ws.Uyl, ws.Uyr, ws.FyT,
		g.ILo-2, g.IHi+2, g.JLo-1, g.JHi+2); err != nil {
		return
	}
	if err = s.transverseCorrect(ws, dt); err != nil {
		return
	}
	Fx, Fy = g.NewFields(), g.NewFields()
	if err = s.finalFluxes(ws, Fx, Fy); err != nil {
		return
	}
	err = s.artificialViscosity(ws.Q, U, Fx, Fy)
	return
}

// FluxesMOL returns fluxes from the spatial reconstruction alone, for use
// inside a Runge-Kutta integrator: no characteristic tracing and no
// transverse correction
func (s *Solver) FluxesMOL(U [4]grid.Field) (Fx, Fy [4]grid.Field, err error) {
	var (
		ws *workspace
	)
	if err = s.checkFields(U); err != nil {
		return
	}
	ws = s.getWorkspace()
	defer s.putWorkspace(ws)

	if err = s.reconstruct(U, ws); err != nil {
		return
	}
	if err = s.interfaceStates(types.XDir, ws.Q, ws.DQx, ws.Uxl, ws.Uxr, spatialTracer); err != nil {
		return
	}
	if err = s.interfaceStates(types.YDir, ws.Q, ws.DQy, ws.Uyl, ws.Uyr, spatialTracer); err != nil {
		return
	}
	if err = s.toConserved(ws.Uxl, ws.Uxr, ws.Uyl, ws.Uyr); err != nil {
		return
	}
	Fx, Fy = s.Grid.NewFields(), s.Grid.NewFields()
	if err = s.finalFluxes(ws, Fx, Fy); err != nil {
		return
	}
	err = s.artificialViscosity(ws.Q, U, Fx, Fy)
	return
}

// reconstruct derives primitives, flattening and the limited slopes in both directions
func (s *Solver) reconstruct(U [4]grid.Field, ws *workspace) (err error) {
	if err = s.primitives(U, ws.Q); err != nil {
		return
	}
	if err = s.flatten(ws); err != nil {
		return
	}
	if err = s.slopes(types.XDir, ws.Q, ws.Xi, ws.DQx, ws.DQ2); err != nil {
		return
	}
	return s.slopes(types.YDir, ws.Q, ws.Xi, ws.DQy, ws.DQ2)
}

func (s *Solver) finalFluxes(ws *workspace, Fx, Fy [4]grid.Field) (err error) {
	g := s.Grid
	if err = s.riemannPass(types.XDir, ws.Uxl, ws.Uxr, Fx,
		g.ILo-1, g.IHi+1, g.JLo-1, g.JHi+1); err != nil {
		return
	}
	return s.riemannPass(types.YDir, ws.Uyl, ws.Uyr, Fy,
		g.ILo-1, g.IHi+1, g.JLo-1, g.JHi+1)
}

// riemannPass solves the Riemann problem once per face over the inclusive
// range [iMin, iMax] x [jMin, jMax]
func (s *Solver) riemannPass(dir types.Direction, UL, UR, F [4]grid.Field, iMin, iMax, jMin, jMax int) error {
	return s.parallelRows(iMin, iMax+1, func(i0, i1 int) error {
		var (
			ul, ur, flux [4]float64
			err          error
		)
		for i := i0; i < i1; i++ {
			for j := jMin; j <= jMax; j++ {
				k := F[0].Ind(i, j)
				for n := range ul {
					ul[n], ur[n] = UL[n].DataP[k], UR[n].DataP[k]
				}
				if flux, err = s.RS.Flux(dir, ul, ur, s.onWall(dir, i, j)); err != nil {
					return fmt.Errorf("%s-flux at face (%d,%d): %w", dir, i, j, err)
				}
				for n := range flux {
					F[n].DataP[k] = flux[n]
				}
			}
		}
		return nil
	})
}

// onWall reports whether the face on the low side of (i,j) along dir lies on a solid boundary
func (s *Solver) onWall(dir types.Direction, i, j int) bool {
	g := s.Grid
	if dir == types.XDir {
		return (i == g.ILo && s.Walls.XL) || (i == g.IHi+1 && s.Walls.XR)
	}
	return (j == g.JLo && s.Walls.YL) || (j == g.JHi+1 && s.Walls.YR)
}
