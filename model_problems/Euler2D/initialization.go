package Euler2D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/ctu2d/types"
	"github.com/notargets/ctu2d/utils"
)

type InitType uint

const (
	SOD InitType = iota
	SODY
	ADVECT
	CONTACT
	ACOUSTICPULSE
)

var (
	InitNames = map[string]InitType{
		"sod":           SOD,
		"sody":          SODY,
		"advect":        ADVECT,
		"contact":       CONTACT,
		"acousticpulse": ACOUSTICPULSE,
	}
	InitPrintNames = []string{
		"Sod Shock Tube in X",
		"Sod Shock Tube in Y",
		"Advected Density Wave",
		"Stationary Contact",
		"Acoustic Pulse",
	}
)

func (it InitType) Print() (txt string) {
	if int(it) < len(InitPrintNames) {
		txt = InitPrintNames[it]
	}
	return
}

func NewInitType(label string) (it InitType, err error) {
	var (
		ok bool
	)
	if len(label) == 0 {
		err = fmt.Errorf("empty init type, must be one of %v", InitPrintNames)
		return
	}
	label = strings.ToLower(strings.TrimSpace(label))
	label = strings.NewReplacer("_", "", "-", "").Replace(label)
	if it, ok = InitNames[label]; !ok {
		err = fmt.Errorf("unable to use init type named %s", label)
	}
	return
}

// Acoustic pulse background and amplitude
const (
	pulseRho0  = 1.4
	pulseDRho0 = 0.14
)

// InitialState is the primitive state (rho, u, v, p) at (x, y) for the case
func (c *Euler) InitialState(x, y float64) (rho, u, v, p float64) {
	var (
		g      = c.Grid
		xc, yc = 0.5 * (g.XMin + g.XMax), 0.5 * (g.YMin + g.YMax)
		lx, ly = g.XMax - g.XMin, g.YMax - g.YMin
	)
	switch c.Case {
	case SOD, SODY:
		s := x - xc
		if c.Case == SODY {
			s = y - yc
		}
		if s < 0 {
			rho, p = 1, 1
		} else {
			rho, p = 0.125, 0.1
		}
	case ADVECT:
		rho = 1 + 0.2*math.Sin(2*math.Pi*((x-g.XMin)/lx+(y-g.YMin)/ly))
		u, v, p = 1, 1, 1
	case CONTACT:
		rho, p = 1, 1
		if x >= xc {
			rho = 0.125
		}
	case ACOUSTICPULSE:
		rho = pulseRho0
		if r := math.Hypot(x-xc, y-yc); r <= 0.5 {
			rho += pulseDRho0 * math.Exp(-16*r*r) * utils.POW(math.Cos(math.Pi*r), 6)
		}
		p = math.Pow(rho/pulseRho0, c.FS.Gamma)
	}
	return
}

// InitializeSolution sets every interior cell from the case and fills the ghosts
func (c *Euler) InitializeSolution() {
	g := c.Grid
	for i := g.ILo; i <= g.IHi; i++ {
		for j := g.JLo; j <= g.JHi; j++ {
			Q := c.FS.Conserved(c.InitialState(g.X[i], g.Y[j]))
			for n := 0; n < types.NVar; n++ {
				c.U[n].Set(i, j, Q[n])
			}
		}
	}
	c.FillBCs()
}
