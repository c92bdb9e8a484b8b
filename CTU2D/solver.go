// Package CTU2D computes second order unsplit (corner transport upwind)
// Godunov fluxes for the 2D compressible Euler equations on a uniform grid.
package CTU2D

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/notargets/ctu2d/eos"
	"github.com/notargets/ctu2d/grid"
	"github.com/notargets/ctu2d/riemann"
	"github.com/notargets/ctu2d/utils"
)

type Solver struct {
	Grid           *grid.Grid2D
	EOS            eos.EOS
	Config         Config
	RS             riemann.Solver
	Walls          grid.SolidWalls
	ParallelDegree int
	gamma          float64
	logger         *zap.Logger
	floorCount     *atomic.Int64
	pool           sync.Pool
}

type Option func(s *Solver)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Solver) { s.logger = logger }
}

func WithSolidWalls(walls grid.SolidWalls) Option {
	return func(s *Solver) { s.Walls = walls }
}

// WithRiemannSolver overrides the solver named in the configuration
func WithRiemannSolver(rs riemann.Solver) Option {
	return func(s *Solver) { s.RS = rs }
}

func NewSolver(g *grid.Grid2D, e eos.EOS, cfg Config, opts ...Option) (s *Solver, err error) {
	if g == nil || e == nil {
		err = fmt.Errorf("%w: grid and equation of state are required", ErrInvalidConfig)
		return
	}
	if err = cfg.Validate(); err != nil {
		return
	}
	if ng := RequiredGhostCells(cfg.Limiter, cfg.UseFlattening); g.Ng < ng {
		err = fmt.Errorf("%w: limiter %s with flattening=%v needs %d ghost layers, grid has %d",
			ErrInsufficientGhostCells, cfg.Limiter, cfg.UseFlattening, ng, g.Ng)
		return
	}
	s = &Solver{
		Grid:           g,
		EOS:            e,
		Config:         cfg,
		ParallelDegree: utils.ParallelDegreeFor(cfg.ProcLimit),
		gamma:          e.Gamma(),
		logger:         zap.NewNop(),
		floorCount:     atomic.NewInt64(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.RS == nil {
		if s.RS, err = riemann.New(cfg.Riemann, s.gamma); err != nil {
			err = fmt.Errorf("%w: %w", ErrInvalidConfig, err)
			return
		}
	}
	s.pool.New = func() any { return newWorkspace(g) }
	s.logger.Debug("CTU flux solver",
		zap.Stringer("grid", g),
		zap.Stringer("config", cfg),
		zap.String("riemann", s.RS.Name()),
		zap.Int("parallelDegree", s.ParallelDegree),
		zap.Any("solidWalls", s.Walls))
	return
}

// FloorCount is the number of cells whose pressure was raised to the floor
// since construction or the last reset
func (s *Solver) FloorCount() int64 { return s.floorCount.Load() }

func (s *Solver) ResetFloorCount() { s.floorCount.Store(0) }

func (s *Solver) checkFields(U [4]grid.Field) error {
	for n := range U {
		if U[n].M == nil {
			return fmt.Errorf("conserved field %d is not allocated", n)
		}
		if qx, qy := U[n].Dims(); qx != s.Grid.Qx || qy != s.Grid.Qy {
			return fmt.Errorf("conserved field %d is %dx%d, grid is %dx%d", n, qx, qy, s.Grid.Qx, s.Grid.Qy)
		}
	}
	return nil
}
