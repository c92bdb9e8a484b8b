package Euler2D

import (
	"math"

	"github.com/notargets/ctu2d/eos"
	"github.com/notargets/ctu2d/grid"
)

type FlowFunction uint8

func (pm FlowFunction) String() string {
	strings := []string{
		"Density",
		"XMomentum",
		"YMomentum",
		"Energy",
		"Mach",
		"Static Pressure",
		"Dynamic Pressure",
		"Sound Speed",
		"Velocity",
		"XVelocity",
		"YVelocity",
		"Enthalpy",
	}
	return strings[int(pm)]
}

const (
	Density FlowFunction = iota
	XMomentum
	YMomentum
	Energy
	Mach            // 4
	StaticPressure  // 5
	DynamicPressure // 6
	SoundSpeed      // 7
	Velocity        // 8
	XVelocity       // 9
	YVelocity       // 10
	Enthalpy        // 11
)

// FlowState derives flow functions from conserved variables for one gas
type FlowState struct {
	Gamma float64
	EOS   eos.EOS
}

func NewFlowState(e eos.EOS) (fs *FlowState) {
	return &FlowState{Gamma: e.Gamma(), EOS: e}
}

func (fs *FlowState) GetFlowFunction(U [4]grid.Field, i, j int, pf FlowFunction) (f float64) {
	ind := U[0].Ind(i, j)
	return fs.GetFlowFunctionBase(U[0].DataP[ind], U[1].DataP[ind], U[2].DataP[ind], U[3].DataP[ind], pf)
}

func (fs *FlowState) GetFlowFunctionQQ(Q [4]float64, pf FlowFunction) (f float64) {
	return fs.GetFlowFunctionBase(Q[0], Q[1], Q[2], Q[3], pf)
}

func (fs *FlowState) GetFlowFunctionBase(rho, rhoU, rhoV, E float64, pf FlowFunction) (f float64) {
	var (
		u, v = rhoU / rho, rhoV / rho
		q    = 0.5 * rho * (u*u + v*v)
		p    float64
	)
	switch pf {
	case Density:
		return rho
	case XMomentum:
		return rhoU
	case YMomentum:
		return rhoV
	case Energy:
		return E
	case XVelocity:
		return u
	case YVelocity:
		return v
	case Velocity:
		return math.Sqrt(u*u + v*v)
	case DynamicPressure:
		return q
	}
	p = fs.EOS.Pressure(rho, (E-q)/rho)
	switch pf {
	case StaticPressure:
		f = p
	case SoundSpeed:
		f = fs.EOS.SoundSpeed(rho, p)
	case Mach:
		f = math.Sqrt(u*u+v*v) / fs.EOS.SoundSpeed(rho, p)
	case Enthalpy:
		f = (E + p) / rho
	}
	return
}

// Conserved maps a primitive state (rho, u, v, p) to (rho, rhoU, rhoV, E)
func (fs *FlowState) Conserved(rho, u, v, p float64) (Q [4]float64) {
	Q[0] = rho
	Q[1] = rho * u
	Q[2] = rho * v
	Q[3] = eos.TotalEnergy(fs.EOS, rho, u, v, p)
	return
}
