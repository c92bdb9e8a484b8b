// Package eos holds the gamma-law pressure/energy closure consumed by the
// flux routines and the Riemann solvers.
package eos

import (
	"fmt"
	"math"
)

type EOS interface {
	Gamma() float64
	// Pressure from density and specific internal energy
	Pressure(rho, e float64) float64
	// RhoE is the internal energy density rho*e for a given pressure
	RhoE(p float64) float64
	SoundSpeed(rho, p float64) float64
}

type GammaLaw struct {
	gamma, gm1, oogm1 float64
}

func NewGammaLaw(gamma float64) (gl *GammaLaw, err error) {
	if !(gamma > 1) || math.IsInf(gamma, 0) {
		err = fmt.Errorf("ratio of specific heats must be finite and > 1, have %v", gamma)
		return
	}
	gl = &GammaLaw{
		gamma: gamma,
		gm1:   gamma - 1,
		oogm1: 1. / (gamma - 1),
	}
	return
}

func (gl *GammaLaw) Gamma() float64 { return gl.gamma }

func (gl *GammaLaw) Pressure(rho, e float64) float64 { return rho * e * gl.gm1 }

func (gl *GammaLaw) RhoE(p float64) float64 { return p * gl.oogm1 }

func (gl *GammaLaw) SoundSpeed(rho, p float64) float64 { return math.Sqrt(gl.gamma * p / rho) }

// TotalEnergy is the conserved energy density for a primitive state
func TotalEnergy(e EOS, rho, u, v, p float64) float64 {
	return e.RhoE(p) + 0.5*rho*(u*u+v*v)
}
