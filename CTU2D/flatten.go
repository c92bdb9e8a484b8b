package CTU2D

import (
	"math"

	"github.com/notargets/ctu2d/grid"
	"github.com/notargets/ctu2d/types"
	"github.com/notargets/ctu2d/utils"
)

// flattenCoef is the one dimensional shock detector on a 5 point pressure
// stencil p[-2..2] with normal velocities un[-1], un[1]. It is 1 away from
// shocks and ramps to 0 across [z0, z1] of the jump ratio in compressions.
func flattenCoef(pm2, pm1, pp1, pp2, unm1, unp1, delta, z0, z1 float64) (xi float64) {
	var (
		dp  = pp1 - pm1
		dp2 = pp2 - pm2
		z   = math.Abs(dp) / math.Max(math.Abs(dp2), utils.SmallP)
	)
	xi = 1
	if unm1-unp1 > 0 && math.Abs(dp)/math.Min(pp1, pm1) > delta {
		xi = utils.Clamp(1-(z-z0)/(z1-z0), 0, 1)
	}
	return
}

// flattenDir fills xi along one direction; cells without the full stencil stay at 1
func (s *Solver) flattenDir(dir types.Direction, Q [4]grid.Field, xi grid.Field) error {
	var (
		st                     = s.stride(dir)
		nv, _                  = dir.NormalVelocity()
		p, un                  = Q[types.IP].DataP, Q[nv].DataP
		iBeg, iEnd, jBeg, jEnd = s.span(dir, 2)
		cfg                    = s.Config
	)
	xi.Fill(1)
	return s.parallelRows(iBeg, iEnd, func(i0, i1 int) error {
		for i := i0; i < i1; i++ {
			for j := jBeg; j < jEnd; j++ {
				k := xi.Ind(i, j)
				xi.DataP[k] = flattenCoef(p[k-2*st], p[k-st], p[k+st], p[k+2*st],
					un[k-st], un[k+st], cfg.Delta, cfg.Z0, cfg.Z1)
			}
		}
		return nil
	})
}

// flattenMultiD combines both directions, also taking the coefficient of the
// neighbor on the high pressure side of each direction
func (s *Solver) flattenMultiD(Q [4]grid.Field, xiX, xiY, xi grid.Field) error {
	var (
		g  = s.Grid
		p  = Q[types.IP].DataP
		qy = g.Qy
	)
	return s.parallelRows(0, g.Qx, func(i0, i1 int) error {
		for i := i0; i < i1; i++ {
			for j := 0; j < qy; j++ {
				k := xi.Ind(i, j)
				if i < 1 || i > g.Qx-2 || j < 1 || j > qy-2 {
					xi.DataP[k] = math.Min(xiX.DataP[k], xiY.DataP[k])
					continue
				}
				kx, ky := k+qy, k+1
				if p[k+qy]-p[k-qy] >= 0 {
					kx = k - qy
				}
				if p[k+1]-p[k-1] >= 0 {
					ky = k - 1
				}
				xi.DataP[k] = math.Min(
					math.Min(xiX.DataP[k], xiX.DataP[kx]),
					math.Min(xiY.DataP[k], xiY.DataP[ky]))
			}
		}
		return nil
	})
}

// flatten fills ws.Xi, or sets it to 1 when flattening is off
func (s *Solver) flatten(ws *workspace) (err error) {
	if !s.Config.UseFlattening {
		ws.Xi.Fill(1)
		return
	}
	if err = s.flattenDir(types.XDir, ws.Q, ws.XiX); err != nil {
		return
	}
	if err = s.flattenDir(types.YDir, ws.Q, ws.XiY); err != nil {
		return
	}
	return s.flattenMultiD(ws.Q, ws.XiX, ws.XiY, ws.Xi)
}
