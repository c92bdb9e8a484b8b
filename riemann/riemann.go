// Package riemann provides interface flux solvers for the gamma-law Euler
// equations. All solvers take conserved states (rho, rho*u, rho*v, E) on either
// side of a face normal to the given direction and return the flux through it.
package riemann

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/notargets/ctu2d/types"
	"github.com/notargets/ctu2d/utils"
)

type Solver interface {
	Name() string
	// Flux is the numerical flux between UL and UR; wall marks a face on a
	// solid boundary, where the normal velocity of the sampled state is zero.
	Flux(dir types.Direction, UL, UR [4]float64, wall bool) (F [4]float64, err error)
}

type SolverType uint8

const (
	CGF_TYPE SolverType = iota
	HLLC_TYPE
	EXACT_TYPE
)

var (
	SolverNames = map[string]SolverType{
		"cgf":   CGF_TYPE,
		"hllc":  HLLC_TYPE,
		"exact": EXACT_TYPE,
	}
	SolverPrintNames = []string{"CGF", "HLLC", "Exact"}
)

var (
	ErrUnknownSolver = errors.New("unknown riemann solver")
	ErrNotConverged  = errors.New("riemann solver failed to converge")
	ErrVacuum        = errors.New("riemann problem generates vacuum")
)

// ConvergenceError carries the state of an iterative solve that ran out of iterations
type ConvergenceError struct {
	Dir        types.Direction
	Iterations int
	Pressure   float64
	Change     float64
}

func (ce *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: %s-direction, %d iterations, p = %g, relative change %g",
		ErrNotConverged, ce.Dir, ce.Iterations, ce.Pressure, ce.Change)
}

func (ce *ConvergenceError) Unwrap() error { return ErrNotConverged }

func (st SolverType) String() string {
	if int(st) < len(SolverPrintNames) {
		return SolverPrintNames[st]
	}
	return fmt.Sprintf("SolverType(%d)", st)
}

func NewSolverType(label string) (st SolverType, err error) {
	var ok bool
	if st, ok = SolverNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		keys := make([]string, 0, len(SolverNames))
		for k := range SolverNames {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		err = fmt.Errorf("%w %q, choose from %v", ErrUnknownSolver, label, keys)
	}
	return
}

// New returns the named solver with default settings
func New(name string, gamma float64) (rs Solver, err error) {
	var st SolverType
	if !(gamma > 1) {
		err = fmt.Errorf("ratio of specific heats must be > 1, have %v", gamma)
		return
	}
	if st, err = NewSolverType(name); err != nil {
		return
	}
	switch st {
	case CGF_TYPE:
		rs = NewCGF(gamma)
	case HLLC_TYPE:
		rs = NewHLLC(gamma)
	case EXACT_TYPE:
		rs = NewExact(gamma, DefaultMaxIter, DefaultTolerance)
	}
	return
}

// faceState is a conserved state decomposed relative to a face
type faceState struct {
	rho, un, ut, p, rhoe float64
}

func newFaceState(dir types.Direction, U [4]float64, gamma float64) (fs faceState) {
	nm, tm := dir.NormalMomentum()
	fs.rho = U[types.IDens]
	fs.un = U[nm] / fs.rho
	fs.ut = U[tm] / fs.rho
	fs.rhoe = U[types.IEner] - 0.5*fs.rho*(fs.un*fs.un+fs.ut*fs.ut)
	fs.p = math.Max(fs.rhoe*(gamma-1), utils.SmallP)
	return
}

func (fs faceState) soundSpeed(gamma float64) float64 {
	return math.Max(math.Sqrt(gamma*fs.p/fs.rho), utils.SmallC)
}

// flux of the sampled state through a face, momentum slots mapped by direction
func (fs faceState) flux(dir types.Direction) (F [4]float64) {
	nm, tm := dir.NormalMomentum()
	F[types.IDens] = fs.rho * fs.un
	F[nm] = fs.rho*fs.un*fs.un + fs.p
	F[tm] = fs.rho * fs.ut * fs.un
	F[types.IEner] = fs.rhoe*fs.un + 0.5*fs.rho*(fs.un*fs.un+fs.ut*fs.ut)*fs.un + fs.p*fs.un
	return
}

// PhysicalFlux is the Euler flux of a conserved state in the given direction
func PhysicalFlux(dir types.Direction, U [4]float64, gamma float64) [4]float64 {
	return newFaceState(dir, U, gamma).flux(dir)
}
