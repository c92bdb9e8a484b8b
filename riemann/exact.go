package riemann

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/ctu2d/types"
	"github.com/notargets/ctu2d/utils"
)

const (
	DefaultMaxIter   = 50
	DefaultTolerance = 1.e-10
)

// State1D is a primitive state normal to a face
type State1D struct {
	Rho, U, P float64
}

// Exact solves the Riemann problem by Newton iteration on the star pressure
// (Toro, ch. 4) and samples the self-similar solution on the face
type Exact struct {
	gamma   float64
	maxIter int
	tol     float64

	// gamma groupings
	g1, g2, g3, g4, g5, g6, g7 float64
}

func NewExact(gamma float64, maxIter int, tol float64) (rs *Exact) {
	rs = &Exact{
		gamma:   gamma,
		maxIter: maxIter,
		tol:     tol,
		g1:      (gamma - 1) / (2 * gamma),
		g2:      (gamma + 1) / (2 * gamma),
		g3:      2 * gamma / (gamma - 1),
		g4:      2 / (gamma - 1),
		g5:      2 / (gamma + 1),
		g6:      (gamma - 1) / (gamma + 1),
		g7:      (gamma - 1) / 2,
	}
	if rs.maxIter < 1 {
		rs.maxIter = DefaultMaxIter
	}
	if !(rs.tol > 0) {
		rs.tol = DefaultTolerance
	}
	return
}

func (rs *Exact) Name() string { return EXACT_TYPE.String() }

func (rs *Exact) Flux(dir types.Direction, UL, UR [4]float64, wall bool) (F [4]float64, err error) {
	var (
		L        = newFaceState(dir, UL, rs.gamma)
		R        = newFaceState(dir, UR, rs.gamma)
		sL       = State1D{Rho: L.rho, U: L.un, P: L.p}
		sR       = State1D{Rho: R.rho, U: R.un, P: R.p}
		pm, um   float64
		W        State1D
		fromLeft bool
		ut       float64
		cErr     *ConvergenceError
	)
	if pm, um, err = rs.StarState(sL, sR); err != nil {
		if errors.As(err, &cErr) {
			cErr.Dir = dir
		}
		return
	}
	W, fromLeft = rs.Sample(sL, sR, pm, um, 0)
	if fromLeft {
		ut = L.ut
	} else {
		ut = R.ut
	}
	st := faceState{
		rho:  W.Rho,
		un:   W.U,
		ut:   ut,
		p:    W.P,
		rhoe: W.P / (rs.gamma - 1),
	}
	if wall {
		st.un = 0
	}
	F = st.flux(dir)
	return
}

// StarState returns the pressure and velocity between the nonlinear waves
func (rs *Exact) StarState(L, R State1D) (pm, um float64, err error) {
	var (
		cL     = math.Sqrt(rs.gamma * L.P / L.Rho)
		cR     = math.Sqrt(rs.gamma * R.P / R.Rho)
		du     = R.U - L.U
		pold   float64
		change float64
	)
	if rs.g4*(cL+cR) <= du {
		err = fmt.Errorf("%w: du = %g, critical %g", ErrVacuum, du, rs.g4*(cL+cR))
		return
	}
	pold = rs.guessP(L, R, cL, cR)
	for iter := 1; iter <= rs.maxIter; iter++ {
		fL, fLd := rs.preFun(pold, L, cL)
		fR, fRd := rs.preFun(pold, R, cR)
		pm = pold - (fL+fR+du)/(fLd+fRd)
		change = 2 * math.Abs((pm-pold)/(pm+pold))
		if pm < 0 {
			pm = rs.tol
		}
		if change <= rs.tol {
			fL, _ = rs.preFun(pm, L, cL)
			fR, _ = rs.preFun(pm, R, cR)
			um = 0.5 * (L.U + R.U + fR - fL)
			return
		}
		pold = pm
	}
	err = &ConvergenceError{Iterations: rs.maxIter, Pressure: pm, Change: change}
	return
}

// guessP picks the PVRS, two-rarefaction or two-shock estimate
func (rs *Exact) guessP(L, R State1D, cL, cR float64) (pm float64) {
	var (
		qUser = 2.
		cup   = 0.25 * (L.Rho + R.Rho) * (cL + cR)
		ppv   = math.Max(0, 0.5*(L.P+R.P)+0.5*(L.U-R.U)*cup)
		pmin  = math.Min(L.P, R.P)
		pmax  = math.Max(L.P, R.P)
		qmax  = pmax / pmin
	)
	switch {
	case qmax <= qUser && pmin <= ppv && ppv <= pmax:
		pm = ppv
	case ppv < pmin:
		pq := math.Pow(L.P/R.P, rs.g1)
		um := (pq*L.U/cL + R.U/cR + rs.g4*(pq-1)) / (pq/cL + 1/cR)
		ptL := 1 + rs.g7*(L.U-um)/cL
		ptR := 1 + rs.g7*(um-R.U)/cR
		pm = 0.5 * (L.P*math.Pow(ptL, rs.g3) + R.P*math.Pow(ptR, rs.g3))
	default:
		geL := math.Sqrt((rs.g5 / L.Rho) / (rs.g6*L.P + ppv))
		geR := math.Sqrt((rs.g5 / R.Rho) / (rs.g6*R.P + ppv))
		pm = (geL*L.P + geR*R.P - (R.U - L.U)) / (geL + geR)
	}
	return math.Max(pm, utils.SmallP)
}

// preFun is the pressure function f_K and its derivative
func (rs *Exact) preFun(p float64, K State1D, cK float64) (f, fd float64) {
	if p <= K.P {
		prat := p / K.P
		f = rs.g4 * cK * (math.Pow(prat, rs.g1) - 1)
		fd = (1 / (K.Rho * cK)) * math.Pow(prat, -rs.g2)
		return
	}
	ak := rs.g5 / K.Rho
	bk := rs.g6 * K.P
	qrt := math.Sqrt(ak / (bk + p))
	f = (p - K.P) * qrt
	fd = (1 - 0.5*(p-K.P)/(bk+p)) * qrt
	return
}

// Sample evaluates the solution along x/t = s; fromLeft reports the side of the contact
func (rs *Exact) Sample(L, R State1D, pm, um, s float64) (W State1D, fromLeft bool) {
	var (
		cL = math.Sqrt(rs.gamma * L.P / L.Rho)
		cR = math.Sqrt(rs.gamma * R.P / R.Rho)
	)
	if s <= um {
		fromLeft = true
		if pm <= L.P {
			if s <= L.U-cL {
				W = L
				return
			}
			cmL := cL * math.Pow(pm/L.P, rs.g1)
			if s > um-cmL {
				W = State1D{Rho: L.Rho * math.Pow(pm/L.P, 1/rs.gamma), U: um, P: pm}
				return
			}
			u := rs.g5 * (cL + rs.g7*L.U + s)
			c := rs.g5 * (cL + rs.g7*(L.U-s))
			W = State1D{Rho: L.Rho * math.Pow(c/cL, rs.g4), U: u, P: L.P * math.Pow(c/cL, rs.g3)}
			return
		}
		pmL := pm / L.P
		if s <= L.U-cL*math.Sqrt(rs.g2*pmL+rs.g1) {
			W = L
			return
		}
		W = State1D{Rho: L.Rho * (pmL + rs.g6) / (pmL*rs.g6 + 1), U: um, P: pm}
		return
	}
	if pm > R.P {
		pmR := pm / R.P
		if s >= R.U+cR*math.Sqrt(rs.g2*pmR+rs.g1) {
			W = R
			return
		}
		W = State1D{Rho: R.Rho * (pmR + rs.g6) / (pmR*rs.g6 + 1), U: um, P: pm}
		return
	}
	if s >= R.U+cR {
		W = R
		return
	}
	cmR := cR * math.Pow(pm/R.P, rs.g1)
	if s <= um+cmR {
		W = State1D{Rho: R.Rho * math.Pow(pm/R.P, 1/rs.gamma), U: um, P: pm}
		return
	}
	u := rs.g5 * (-cR + rs.g7*R.U + s)
	c := rs.g5 * (cR - rs.g7*(R.U-s))
	W = State1D{Rho: R.Rho * math.Pow(c/cR, rs.g4), U: u, P: R.P * math.Pow(c/cR, rs.g3)}
	return
}
