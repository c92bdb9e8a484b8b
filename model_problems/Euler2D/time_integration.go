package Euler2D

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/ctu2d/grid"
	"github.com/notargets/ctu2d/types"
	"github.com/notargets/ctu2d/utils"
)

var ErrUnphysicalState = errors.New("unphysical state")

type Method uint8

const (
	CTU Method = iota // Single stage unsplit update
	MOL               // Spatial fluxes only, two stage SSP Runge-Kutta
)

var (
	MethodNames = map[string]Method{
		"ctu": CTU,
		"mol": MOL,
		"rk2": MOL,
	}
	MethodPrintNames = []string{"Corner Transport Upwind", "Method of Lines, SSP Runge-Kutta 2"}
)

func (m Method) Print() (txt string) {
	if int(m) < len(MethodPrintNames) {
		txt = MethodPrintNames[m]
	}
	return
}

func NewMethod(label string) (m Method, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) == 0 {
		return CTU, nil
	}
	if m, ok = MethodNames[label]; !ok {
		err = fmt.Errorf("unable to use integration method named %s", label)
	}
	return
}

// CalculateDT is the CFL limited step, dt = CFL*min(dx/(|u|+c), dy/(|v|+c)),
// clipped so the run ends on FinalTime
func (c *Euler) CalculateDT() (dt float64, err error) {
	var (
		g  = c.Grid
		fs = c.FS
	)
	c.parallelRows(func(iMin, iMax int) {
		for i := iMin; i < iMax; i++ {
			var rowMax float64
			for j := g.JLo; j <= g.JHi; j++ {
				var (
					u  = fs.GetFlowFunction(c.U, i, j, XVelocity)
					v  = fs.GetFlowFunction(c.U, i, j, YVelocity)
					cs = fs.GetFlowFunction(c.U, i, j, SoundSpeed)
					r  = math.Max((math.Abs(u)+cs)/g.Dx, (math.Abs(v)+cs)/g.Dy)
				)
				if utils.IsNan(r) {
					rowMax = r
					break
				}
				rowMax = math.Max(rowMax, r)
			}
			c.rates[i-g.ILo] = rowMax
		}
	})
	if floats.HasNaN(c.rates) {
		err = fmt.Errorf("%w: wave speed undefined at t=%g", ErrUnphysicalState, c.Time)
		return
	}
	maxRate := floats.Max(c.rates)
	if !(maxRate > 0) || !utils.IsFinite(maxRate) {
		err = fmt.Errorf("%w: maximum wave speed rate %v at t=%g", ErrUnphysicalState, maxRate, c.Time)
		return
	}
	dt = c.CFL / maxRate
	if c.Time+dt > c.FinalTime {
		dt = c.FinalTime - c.Time
	}
	return
}

// Step advances the solution by dt and validates the result
func (c *Euler) Step(dt float64) (err error) {
	var (
		Fx, Fy [4]grid.Field
	)
	switch c.Method {
	case CTU:
		c.FillBCs()
		if Fx, Fy, err = c.Solver.Fluxes(c.U, dt); err != nil {
			return
		}
		c.ApplyFluxes(dt, Fx, Fy)
	case MOL:
		for n := 0; n < types.NVar; n++ {
			c.U0[n].CopyFrom(c.U[n])
		}
		for stage := 0; stage < 2; stage++ {
			c.FillBCs()
			if Fx, Fy, err = c.Solver.FluxesMOL(c.U); err != nil {
				return
			}
			c.ApplyFluxes(dt, Fx, Fy)
		}
		c.averageStages()
	}
	c.Time += dt
	c.Steps++
	if nf := c.Solver.FloorCount(); nf > 0 {
		c.logger.Warn("pressure floor applied",
			zap.Int64("cells", nf), zap.Int("step", c.Steps), zap.Float64("time", c.Time))
		c.Solver.ResetFloorCount()
	}
	if err = c.Validate(); err != nil {
		return
	}
	c.logger.Debug("step", zap.Int("step", c.Steps), zap.Float64("time", c.Time), zap.Float64("dt", dt))
	return
}

// ApplyFluxes updates the interior with the conservative difference of the
// face fluxes, Fx[i,j] being the flux through the low x face of cell (i,j)
func (c *Euler) ApplyFluxes(dt float64, Fx, Fy [4]grid.Field) {
	var (
		g          = c.Grid
		sx, sy     = g.Qy, 1
		dtdx, dtdy = dt / g.Dx, dt / g.Dy
	)
	c.parallelRows(func(iMin, iMax int) {
		for n := 0; n < types.NVar; n++ {
			u, fx, fy := c.U[n].DataP, Fx[n].DataP, Fy[n].DataP
			for i := iMin; i < iMax; i++ {
				for j := g.JLo; j <= g.JHi; j++ {
					k := c.U[n].Ind(i, j)
					u[k] -= dtdx*(fx[k+sx]-fx[k]) + dtdy*(fy[k+sy]-fy[k])
				}
			}
		}
	})
}

// averageStages completes SSP RK2: U = (U0 + U2)/2 over the interior
func (c *Euler) averageStages() {
	g := c.Grid
	c.parallelRows(func(iMin, iMax int) {
		for n := 0; n < types.NVar; n++ {
			for i := iMin; i < iMax; i++ {
				for j := g.JLo; j <= g.JHi; j++ {
					c.U[n].Set(i, j, 0.5*(c.U0[n].At(i, j)+c.U[n].At(i, j)))
				}
			}
		}
	})
}

// Validate rejects NaN or non-positive density and pressure in the interior
func (c *Euler) Validate() (err error) {
	g := c.Grid
	for i := g.ILo; i <= g.IHi; i++ {
		for j := g.JLo; j <= g.JHi; j++ {
			rho := c.U[types.IDens].At(i, j)
			p := c.FS.GetFlowFunction(c.U, i, j, StaticPressure)
			if !(rho > 0) || !(p > 0) {
				return fmt.Errorf("%w: cell (%d,%d) at x=%g y=%g t=%g has rho=%g p=%g",
					ErrUnphysicalState, i, j, g.X[i], g.Y[j], c.Time, rho, p)
			}
		}
	}
	return
}

func (c *Euler) parallelRows(work func(iMin, iMax int)) {
	var (
		pm = c.Partitions
		wg = sync.WaitGroup{}
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			iMin, iMax := pm.GetBucketRange(np)
			work(iMin, iMax)
			wg.Done()
		}(np)
	}
	wg.Wait()
}
