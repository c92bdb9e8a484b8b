package riemann

import (
	"math"

	"github.com/notargets/ctu2d/types"
	"github.com/notargets/ctu2d/utils"
)

// HLLC is Toro's three-wave solver with wave speeds from an adaptive
// primitive-variable (PVRS/TRRS/TSRS) pressure estimate
type HLLC struct {
	gamma float64
}

func NewHLLC(gamma float64) *HLLC { return &HLLC{gamma: gamma} }

func (rs *HLLC) Name() string { return HLLC_TYPE.String() }

func (rs *HLLC) Flux(dir types.Direction, UL, UR [4]float64, wall bool) (F [4]float64, err error) {
	var (
		gamma = rs.gamma
		L     = newFaceState(dir, UL, gamma)
		R     = newFaceState(dir, UR, gamma)
		cL    = L.soundSpeed(gamma)
		cR    = R.soundSpeed(gamma)
		pstar = rs.pressureEstimate(L, R, cL, cR)
		SL    = L.un - cL*rs.qK(pstar, L.p)
		SR    = R.un + cR*rs.qK(pstar, R.p)
		dL    = L.rho * (SL - L.un)
		dR    = R.rho * (SR - R.un)
		Sc    = (R.p - L.p + dL*L.un - dR*R.un) / (dL - dR)
	)
	if wall {
		nm, _ := dir.NormalMomentum()
		F[nm] = L.p + dL*(Sc-L.un)
		return
	}
	switch {
	case SL >= 0:
		F = L.flux(dir)
	case Sc >= 0:
		F = rs.starFlux(dir, L, UL, SL, Sc)
	case SR > 0:
		F = rs.starFlux(dir, R, UR, SR, Sc)
	default:
		F = R.flux(dir)
	}
	return
}

// starFlux is F_K + S_K (U*_K - U_K)
func (rs *HLLC) starFlux(dir types.Direction, K faceState, UK [4]float64, SK, Sc float64) (F [4]float64) {
	var (
		nm, tm = dir.NormalMomentum()
		fac    = K.rho * (SK - K.un) / (SK - Sc)
		Ustar  [4]float64
	)
	Ustar[types.IDens] = fac
	Ustar[nm] = fac * Sc
	Ustar[tm] = fac * K.ut
	Ustar[types.IEner] = fac * (UK[types.IEner]/K.rho + (Sc-K.un)*(Sc+K.p/(K.rho*(SK-K.un))))
	F = K.flux(dir)
	for n := range F {
		F[n] += SK * (Ustar[n] - UK[n])
	}
	return
}

// qK scales the acoustic speed for a shock when p* exceeds the side pressure
func (rs *HLLC) qK(pstar, pK float64) float64 {
	if pstar <= pK {
		return 1
	}
	return math.Sqrt(1 + 0.5*(rs.gamma+1)/rs.gamma*(pstar/pK-1))
}

func (rs *HLLC) pressureEstimate(L, R faceState, cL, cR float64) (pstar float64) {
	var (
		gamma = rs.gamma
		pmin  = math.Min(L.p, R.p)
		pmax  = math.Max(L.p, R.p)
		ppv   = 0.5*(L.p+R.p) + 0.125*(L.un-R.un)*(L.rho+R.rho)*(cL+cR)
	)
	ppv = math.Max(ppv, 0)
	switch {
	case pmax/pmin <= 2 && pmin <= ppv && ppv <= pmax:
		pstar = ppv
	case ppv < pmin:
		// Two rarefactions
		z := 0.5 * (gamma - 1) / gamma
		plr := math.Pow(L.p/R.p, z)
		um := (plr*L.un/cL + R.un/cR + 2*(plr-1)/(gamma-1)) / (plr/cL + 1/cR)
		tL := math.Max(1+0.5*(gamma-1)*(L.un-um)/cL, 0)
		tR := math.Max(1+0.5*(gamma-1)*(um-R.un)/cR, 0)
		pstar = 0.5 * (L.p*math.Pow(tL, 1/z) + R.p*math.Pow(tR, 1/z))
	default:
		// Two shocks about the PVRS guess
		gL := math.Sqrt((2 / ((gamma + 1) * L.rho)) / (ppv + (gamma-1)/(gamma+1)*L.p))
		gR := math.Sqrt((2 / ((gamma + 1) * R.rho)) / (ppv + (gamma-1)/(gamma+1)*R.p))
		pstar = (gL*L.p + gR*R.p - (R.un - L.un)) / (gL + gR)
	}
	return math.Max(pstar, utils.SmallP)
}
