package CTU2D

import (
	"errors"
	"fmt"

	"github.com/notargets/ctu2d/riemann"
	"github.com/notargets/ctu2d/utils"
)

type LimiterType uint8

const (
	LimiterNone LimiterType = iota // Piecewise constant
	LimiterMC2                     // Second order monotonized central
	LimiterMC4                     // Fourth order monotonized central
)

var LimiterPrintNames = []string{"None", "MC2", "MC4"}

func (lt LimiterType) String() string {
	if int(lt) < len(LimiterPrintNames) {
		return LimiterPrintNames[lt]
	}
	return fmt.Sprintf("LimiterType(%d)", lt)
}

var (
	ErrInvalidConfig          = errors.New("invalid solver configuration")
	ErrInsufficientGhostCells = errors.New("insufficient ghost cells")
)

type Config struct {
	Limiter       LimiterType
	UseFlattening bool
	// Flattening thresholds: shock strength and the bounds of the blending ramp
	Delta, Z0, Z1 float64
	CVisc         float64 // Artificial viscosity coefficient, 0 disables
	Riemann       string
	ProcLimit     int // Goroutines per stage, 0 uses every CPU
}

func DefaultConfig() Config {
	return Config{
		Limiter:       LimiterMC4,
		UseFlattening: true,
		Delta:         0.33,
		Z0:            0.75,
		Z1:            0.85,
		CVisc:         0.1,
		Riemann:       "CGF",
	}
}

func (cfg Config) Validate() (err error) {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	switch {
	case cfg.Limiter > LimiterMC4:
		return bad("limiter %d, must be 0 (none), 1 (MC2) or 2 (MC4)", cfg.Limiter)
	case cfg.UseFlattening && !(cfg.Delta > 0):
		return bad("flattening delta %v must be > 0", cfg.Delta)
	case cfg.UseFlattening && !(cfg.Z1 > cfg.Z0 && cfg.Z0 >= 0):
		return bad("flattening ramp needs 0 <= z0 < z1, have z0=%v z1=%v", cfg.Z0, cfg.Z1)
	case !(cfg.CVisc >= 0) || !utils.IsFinite(cfg.CVisc):
		return bad("cvisc %v must be finite and >= 0", cfg.CVisc)
	case cfg.ProcLimit < 0:
		return bad("proc limit %d must be >= 0", cfg.ProcLimit)
	}
	if _, err = riemann.NewSolverType(cfg.Riemann); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return
}

// RequiredGhostCells is the halo depth needed for fluxes on the faces of the
// interior extended by one ghost cell
func RequiredGhostCells(limiter LimiterType, useFlattening bool) (ng int) {
	switch {
	case useFlattening:
		ng = 4
	case limiter == LimiterMC4:
		ng = 3
	default:
		ng = 2
	}
	return
}

func (cfg Config) String() string {
	return fmt.Sprintf("limiter=%s flattening=%v (delta=%g z0=%g z1=%g) cvisc=%g riemann=%s",
		cfg.Limiter, cfg.UseFlattening, cfg.Delta, cfg.Z0, cfg.Z1, cfg.CVisc, cfg.Riemann)
}
