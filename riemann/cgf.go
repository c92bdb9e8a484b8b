package riemann

import (
	"math"

	"github.com/notargets/ctu2d/types"
	"github.com/notargets/ctu2d/utils"
)

// CGF is the linearized two-shock approximate solver of Colella, Glaz & Ferguson
type CGF struct {
	gamma float64
}

func NewCGF(gamma float64) *CGF { return &CGF{gamma: gamma} }

func (rs *CGF) Name() string { return CGF_TYPE.String() }

func (rs *CGF) Flux(dir types.Direction, UL, UR [4]float64, wall bool) (F [4]float64, err error) {
	var (
		gamma  = rs.gamma
		L      = newFaceState(dir, UL, gamma)
		R      = newFaceState(dir, UR, gamma)
		small  = utils.SmallRho * utils.SmallC
		Wl     = math.Max(small, math.Sqrt(gamma*L.p*L.rho))
		Wr     = math.Max(small, math.Sqrt(gamma*R.p*R.rho))
		pstar  = (Wl*R.p + Wr*L.p + Wl*Wr*(L.un-R.un)) / (Wl + Wr)
		ustar  = (Wl*L.un + Wr*R.un + L.p - R.p) / (Wl + Wr)
		st     faceState
		sgnm   = utils.Sign(ustar)
		cs     float64
		rhoSt  float64
		rhoeSt float64
		cSt    float64
	)
	pstar = math.Max(pstar, utils.SmallP)
	// Upwind side of the contact; a stationary contact averages both sides
	switch {
	case ustar > 0:
		st = L
	case ustar < 0:
		st = R
	default:
		st = faceState{
			rho:  0.5 * (L.rho + R.rho),
			un:   0.5 * (L.un + R.un),
			ut:   0.5 * (L.ut + R.ut),
			p:    0.5 * (L.p + R.p),
			rhoe: 0.5 * (L.rhoe + R.rhoe),
		}
	}
	st.rho = math.Max(st.rho, utils.SmallRho)
	cs = st.soundSpeed(gamma)
	// Star state linearized about the upwind state
	rhoSt = math.Max(st.rho+(pstar-st.p)/(cs*cs), utils.SmallRho)
	rhoeSt = st.rhoe + (pstar-st.p)*(st.rhoe/st.rho+st.p/st.rho)/(cs*cs)
	cSt = math.Max(math.Sqrt(gamma*pstar/rhoSt), utils.SmallC)

	var (
		spout = cs - sgnm*st.un
		spin  = cSt - sgnm*ustar
	)
	if pstar > st.p {
		// Shock: both edges travel at the shock speed
		ushock := 0.5 * (spin + spout)
		spin, spout = ushock, ushock
	}
	scr := spout - spin
	if scr == 0 {
		scr = utils.SmallC * 0.5 * (math.Abs(spout) + math.Abs(spin))
		if scr == 0 {
			scr = utils.SmallC
		}
	}
	frac := utils.Clamp(0.5*(1+(spout+spin)/scr), 0, 1)

	switch {
	case spout < 0:
		// Face lies outside the wave, upwind state stands
	case spin >= 0:
		st.rho, st.un, st.p, st.rhoe = rhoSt, ustar, pstar, rhoeSt
	default:
		st.rho = frac*rhoSt + (1-frac)*st.rho
		st.un = frac*ustar + (1-frac)*st.un
		st.p = frac*pstar + (1-frac)*st.p
		st.rhoe = frac*rhoeSt + (1-frac)*st.rhoe
	}
	if wall {
		st.un = 0
	}
	F = st.flux(dir)
	return
}
