package Euler2D

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/ctu2d/CTU2D"
	"github.com/notargets/ctu2d/InputParameters"
	"github.com/notargets/ctu2d/eos"
	"github.com/notargets/ctu2d/grid"
	"github.com/notargets/ctu2d/sod_shock_tube"
	"github.com/notargets/ctu2d/utils"
)

/*
	The driver owns the solution array. Each step fills the ghost layers,
	asks the flux solver for interface fluxes and applies the conservative
	difference to the interior cells.
*/
type Euler struct {
	// Input parameters
	Title          string
	CFL, FinalTime float64
	MaxIterations  int
	Case           InitType
	Method         Method
	FS             *FlowState
	Grid           *grid.Grid2D
	BCs            grid.BCObject
	Solver         *CTU2D.Solver
	Partitions     *utils.PartitionMap // Interior rows, split for the update
	StepsPerPrint  int
	U              [4]grid.Field // Conserved variables, including ghost layers
	Time           float64
	Steps          int
	U0             [4]grid.Field // Stage storage for the Runge-Kutta method
	rates          []float64     // Per row maximum of the inverse cell crossing time
	sod            *sod_shock_tube.SodProblem
	logger         *zap.Logger
	verbose        bool
}

type Option func(c *Euler)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Euler) { c.logger = logger }
}

// WithVerbose enables the console progress table
func WithVerbose(verbose bool) Option {
	return func(c *Euler) { c.verbose = verbose }
}

func NewEuler(ip *InputParameters.InputParameters2D, opts ...Option) (c *Euler, err error) {
	var (
		cfg CTU2D.Config
		gl  *eos.GammaLaw
	)
	if err = ip.Validate(); err != nil {
		return
	}
	c = &Euler{
		Title:         ip.Title,
		CFL:           ip.CFL,
		FinalTime:     ip.FinalTime,
		MaxIterations: ip.MaxIterations,
		StepsPerPrint: 100,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Case, err = NewInitType(ip.InitType); err != nil {
		return nil, err
	}
	if c.Method, err = NewMethod(ip.Method); err != nil {
		return nil, err
	}
	if cfg, err = ip.SolverConfig(); err != nil {
		return nil, err
	}
	if gl, err = eos.NewGammaLaw(ip.Gamma); err != nil {
		return nil, err
	}
	c.FS = NewFlowState(gl)
	if c.BCs, err = grid.NewBCObject(ip.BCs); err != nil {
		return nil, err
	}
	if c.Grid, err = grid.NewGrid2D(ip.Nx, ip.Ny, ip.Ng, ip.XMin, ip.XMax, ip.YMin, ip.YMax); err != nil {
		return nil, err
	}
	if c.Solver, err = CTU2D.NewSolver(c.Grid, gl, cfg,
		CTU2D.WithLogger(c.logger), CTU2D.WithSolidWalls(c.BCs.Solid())); err != nil {
		return nil, err
	}
	c.Partitions = utils.NewPartitionMap(c.Solver.ParallelDegree, c.Grid.ILo, c.Grid.IHi+1)
	c.U = c.Grid.NewFields()
	if c.Method == MOL {
		c.U0 = c.Grid.NewFields()
	}
	c.rates = make([]float64, c.Grid.Nx)
	c.InitializeSolution()

	if c.verbose {
		fmt.Printf("Euler Equations in 2 Dimensions\n")
		fmt.Printf("Using %d go routines in parallel\n", c.Partitions.ParallelDegree)
		fmt.Printf("Solving %s\n", c.Case.Print())
		fmt.Printf("Algorithm: %s, Riemann Solver: %s, Limiter: %s\n",
			c.Method.Print(), c.Solver.RS.Name(), cfg.Limiter)
		fmt.Printf("Grid: %s\n", c.Grid)
		fmt.Printf("Boundaries: %s\n", c.BCs)
		fmt.Printf("CFL = %8.4f\n\n\n", c.CFL)
	}
	c.logger.Info("initialized",
		zap.String("title", c.Title),
		zap.String("case", c.Case.Print()),
		zap.String("method", c.Method.Print()),
		zap.Stringer("bcs", c.BCs))
	return
}

func (c *Euler) FillBCs() { c.BCs.FillBCs(c.Grid, c.U) }

func (c *Euler) Solve() (err error) {
	var (
		dt       float64
		finished bool
		elapsed  time.Duration
		start    time.Time
	)
	if c.verbose {
		c.PrintInitialization(c.FinalTime)
	}
	for !finished {
		if dt, err = c.CalculateDT(); err != nil {
			break
		}
		start = time.Now()
		err = c.Step(dt)
		elapsed += time.Since(start)
		if err != nil {
			break
		}
		finished = c.CheckIfFinished(c.Time, c.FinalTime, c.Steps)
		if c.verbose && (finished || c.Steps%c.StepsPerPrint == 0 || c.Steps == 1) {
			c.PrintUpdate(c.Time, dt, c.Steps)
		}
	}
	if err != nil {
		c.logger.Error("step failed", zap.Int("step", c.Steps+1), zap.Float64("time", c.Time), zap.Error(err))
		return
	}
	if c.verbose {
		c.PrintFinal(elapsed, c.Steps)
	}
	return
}

func (c *Euler) CheckIfFinished(Time, FinalTime float64, steps int) (finished bool) {
	if Time >= FinalTime || steps >= c.MaxIterations {
		finished = true
	}
	return
}

// ConservedTotals integrates each conserved variable over the interior
func (c *Euler) ConservedTotals() (tot [4]float64) {
	var (
		g  = c.Grid
		dA = g.Dx * g.Dy
	)
	for n := 0; n < 4; n++ {
		for i := g.ILo; i <= g.IHi; i++ {
			tot[n] += floats.Sum(c.U[n].M.RawRowView(i)[g.JLo : g.JHi+1])
		}
		tot[n] *= dA
	}
	return
}

func (c *Euler) PrintInitialization(FinalTime float64) {
	fmt.Printf("Solving until finaltime = %8.5f\n", FinalTime)
	fmt.Printf("    iter    time  min_dt")
	fmt.Printf("       Mass      XMom      YMom     Energy\n")
}

func (c *Euler) PrintUpdate(Time, dt float64, steps int) {
	format := "%11.4e"
	fmt.Printf("%8d%8.5f%8.5f", steps, Time, dt)
	tot := c.ConservedTotals()
	for n := 0; n < 4; n++ {
		fmt.Printf(format, tot[n])
	}
	fmt.Printf("\n")
}

func (c *Euler) PrintFinal(elapsed time.Duration, steps int) {
	rate := float64(elapsed.Microseconds()) / (float64(c.Grid.Nx * c.Grid.Ny * steps))
	fmt.Printf("\nRate of execution = %8.5f us/(cell*iteration) over %d iterations\n", rate, steps)
	fmt.Printf("%s\n", utils.GetMemUsage())
}
