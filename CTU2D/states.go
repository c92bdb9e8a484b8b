package CTU2D

import (
	"math"

	"github.com/notargets/ctu2d/grid"
	"github.com/notargets/ctu2d/types"
)

// eigenSystem returns the eigenvalues and the left/right eigenvectors (as rows)
// of the primitive variable Euler Jacobian normal to dir. The transverse
// velocity is a purely advected mode.
func eigenSystem(dir types.Direction, q [4]float64, cs float64) (ev [4]float64, lvec, rvec [4][4]float64) {
	var (
		nv, tv = dir.NormalVelocity()
		rho    = q[types.IRho]
		un     = q[nv]
		cs2    = cs * cs
	)
	ev = [4]float64{un - cs, un, un, un + cs}

	lvec[0][nv], lvec[0][types.IP] = -0.5*rho/cs, 0.5/cs2
	lvec[1][types.IRho], lvec[1][types.IP] = 1, -1/cs2
	lvec[2][tv] = 1
	lvec[3][nv], lvec[3][types.IP] = 0.5*rho/cs, 0.5/cs2

	rvec[0][types.IRho], rvec[0][nv], rvec[0][types.IP] = 1, -cs/rho, cs2
	rvec[1][types.IRho] = 1
	rvec[2][tv] = 1
	rvec[3][types.IRho], rvec[3][nv], rvec[3][types.IP] = 1, cs/rho, cs2
	return
}

// traceCell predicts the time centered primitive states on the low and high
// faces of a cell along dir. Only characteristics moving toward a face
// contribute to the correction of its reference state.
func traceCell(dir types.Direction, q, dq [4]float64, dtdx, gamma float64) (vLo, vHi [4]float64) {
	var (
		cs             = math.Sqrt(gamma * q[types.IP] / q[types.IRho])
		ev, lvec, rvec = eigenSystem(dir, q, cs)
		dtdx4          = 0.25 * dtdx
		betal, betar   [4]float64
	)
	for m := 0; m < 4; m++ {
		var proj float64
		for n := 0; n < 4; n++ {
			proj += lvec[m][n] * dq[n]
		}
		// A standing wave counts as right moving
		sgn := 1.
		if ev[m] < 0 {
			sgn = -1
		}
		betal[m] = dtdx4 * (ev[3] - ev[m]) * (sgn + 1) * proj
		betar[m] = dtdx4 * (ev[0] - ev[m]) * (1 - sgn) * proj
	}
	var (
		factorHi = 0.5 * (1 - dtdx*math.Max(ev[3], 0))
		factorLo = 0.5 * (1 + dtdx*math.Min(ev[0], 0))
	)
	for n := 0; n < 4; n++ {
		var sumL, sumR float64
		for m := 0; m < 4; m++ {
			sumL += betal[m] * rvec[m][n]
			sumR += betar[m] * rvec[m][n]
		}
		vHi[n] = q[n] + factorHi*dq[n] + sumL
		vLo[n] = q[n] - factorLo*dq[n] + sumR
	}
	return
}

// spatialCell is the reconstruction without the time centering, used by the
// method of lines flux
func spatialCell(q, dq [4]float64) (vLo, vHi [4]float64) {
	for n := range q {
		vHi[n] = q[n] + 0.5*dq[n]
		vLo[n] = q[n] - 0.5*dq[n]
	}
	return
}

type cellTracer func(dir types.Direction, q, dq [4]float64) (vLo, vHi [4]float64)

// interfaceStates traces every cell in [ilo-2, ihi+2]^2 along dir. The high
// face state of cell i becomes Vl at i+1 and the low face state Vr at i, so
// Vl[i] and Vr[i] bracket the face at i-1/2.
func (s *Solver) interfaceStates(dir types.Direction, Q, dq, Vl, Vr [4]grid.Field, trace cellTracer) error {
	var (
		g  = s.Grid
		st = s.stride(dir)
	)
	// Last cell whose high face is on the array
	iMax, jMax := g.IHi+2, g.JHi+2
	if dir == types.XDir {
		iMax = min(iMax, g.Qx-2)
	} else {
		jMax = min(jMax, g.Qy-2)
	}
	return s.parallelRows(g.ILo-2, g.IHi+3, func(i0, i1 int) error {
		var q, dqc [4]float64
		for i := i0; i < i1; i++ {
			for j := g.JLo - 2; j <= g.JHi+2; j++ {
				k := Q[0].Ind(i, j)
				for n := range q {
					q[n], dqc[n] = Q[n].DataP[k], dq[n].DataP[k]
				}
				vLo, vHi := trace(dir, q, dqc)
				for n := range q {
					Vr[n].DataP[k] = vLo[n]
				}
				if i <= iMax && j <= jMax {
					for n := range q {
						Vl[n].DataP[k+st] = vHi[n]
					}
				}
			}
		}
		return nil
	})
}

func (s *Solver) characteristicTracer(dt float64) cellTracer {
	var (
		dtdx = dt / s.Grid.Dx
		dtdy = dt / s.Grid.Dy
	)
	return func(dir types.Direction, q, dq [4]float64) (vLo, vHi [4]float64) {
		if dir == types.XDir {
			return traceCell(dir, q, dq, dtdx, s.gamma)
		}
		return traceCell(dir, q, dq, dtdy, s.gamma)
	}
}

func spatialTracer(_ types.Direction, q, dq [4]float64) (vLo, vHi [4]float64) {
	return spatialCell(q, dq)
}
