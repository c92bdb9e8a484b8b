package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/ctu2d/CTU2D"
	"github.com/notargets/ctu2d/grid"
)

// Parameters obtained from the YAML input file
type InputParameters2D struct {
	Title         string            `yaml:"Title"`
	CFL           float64           `yaml:"CFL"`
	FinalTime     float64           `yaml:"FinalTime"`
	MaxIterations int               `yaml:"MaxIterations"`
	InitType      string            `yaml:"InitType"`
	Method        string            `yaml:"Method"` // CTU or MOL
	Nx            int               `yaml:"Nx"`
	Ny            int               `yaml:"Ny"`
	Ng            int               `yaml:"Ng"` // Ghost layers, 0 picks the minimum for the limiter
	XMin          float64           `yaml:"XMin"`
	XMax          float64           `yaml:"XMax"`
	YMin          float64           `yaml:"YMin"`
	YMax          float64           `yaml:"YMax"`
	Gamma         float64           `yaml:"Gamma"`
	Riemann       string            `yaml:"Riemann"`
	Limiter       int               `yaml:"Limiter"`
	UseFlattening bool              `yaml:"UseFlattening"`
	Delta         float64           `yaml:"Delta"`
	Z0            float64           `yaml:"Z0"`
	Z1            float64           `yaml:"Z1"`
	CVisc         float64           `yaml:"CVisc"`
	ProcLimit     int               `yaml:"ProcLimit"`
	BCs           map[string]string `yaml:"BCs"` // Side (XL, XR, YL, YR) to boundary type
}

// Parse reads YAML input over the solver defaults, so omitted limiter,
// flattening and artificial viscosity keys match CTU2D.DefaultConfig
func (ip *InputParameters2D) Parse(data []byte) (err error) {
	def := CTU2D.DefaultConfig()
	ip.Limiter, ip.UseFlattening, ip.CVisc = int(def.Limiter), def.UseFlattening, def.CVisc
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	ip.SetDefaults()
	return
}

// SetDefaults fills parameters left at their zero value
func (ip *InputParameters2D) SetDefaults() {
	def := CTU2D.DefaultConfig()
	if ip.CFL == 0 {
		ip.CFL = 0.8
	}
	if ip.Gamma == 0 {
		ip.Gamma = 1.4
	}
	if ip.MaxIterations == 0 {
		ip.MaxIterations = 1000000
	}
	if ip.Method == "" {
		ip.Method = "CTU"
	}
	if ip.Riemann == "" {
		ip.Riemann = def.Riemann
	}
	if ip.Delta == 0 {
		ip.Delta = def.Delta
	}
	if ip.Z0 == 0 && ip.Z1 == 0 {
		ip.Z0, ip.Z1 = def.Z0, def.Z1
	}
	if ip.XMin == 0 && ip.XMax == 0 {
		ip.XMax = 1
	}
	if ip.YMin == 0 && ip.YMax == 0 {
		ip.YMax = 1
	}
	if ip.Ng == 0 {
		ip.Ng = CTU2D.RequiredGhostCells(CTU2D.LimiterType(ip.Limiter), ip.UseFlattening)
	}
}

func (ip *InputParameters2D) SolverConfig() (cfg CTU2D.Config, err error) {
	if ip.Limiter < 0 {
		err = fmt.Errorf("%w: limiter %d, must be 0 (none), 1 (MC2) or 2 (MC4)", CTU2D.ErrInvalidConfig, ip.Limiter)
		return
	}
	cfg = CTU2D.Config{
		Limiter:       CTU2D.LimiterType(ip.Limiter),
		UseFlattening: ip.UseFlattening,
		Delta:         ip.Delta,
		Z0:            ip.Z0,
		Z1:            ip.Z1,
		CVisc:         ip.CVisc,
		Riemann:       ip.Riemann,
		ProcLimit:     ip.ProcLimit,
	}
	err = cfg.Validate()
	return
}

func (ip *InputParameters2D) Validate() (err error) {
	switch {
	case !(ip.CFL > 0 && ip.CFL <= 1):
		return fmt.Errorf("CFL %v must be in (0, 1]", ip.CFL)
	case !(ip.FinalTime > 0):
		return fmt.Errorf("FinalTime %v must be > 0", ip.FinalTime)
	case ip.Nx < 1 || ip.Ny < 1:
		return fmt.Errorf("grid needs Nx, Ny >= 1, have %dx%d", ip.Nx, ip.Ny)
	case !(ip.Gamma > 1):
		return fmt.Errorf("Gamma %v must be > 1", ip.Gamma)
	}
	if _, err = ip.SolverConfig(); err != nil {
		return
	}
	_, err = grid.NewBCObject(ip.BCs)
	return
}

func (ip *InputParameters2D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%s]\t\t\t= Method\n", ip.Method)
	fmt.Printf("[%s]\t= InitType\n", ip.InitType)
	fmt.Printf("[%d x %d], %d ghosts\t= Grid\n", ip.Nx, ip.Ny, ip.Ng)
	fmt.Printf("[%g,%g]x[%g,%g]\t= Domain\n", ip.XMin, ip.XMax, ip.YMin, ip.YMax)
	fmt.Printf("[%s]\t\t\t= Riemann Solver\n", ip.Riemann)
	fmt.Printf("[%d]\t\t\t\t= Limiter\n", ip.Limiter)
	fmt.Printf("[%v] %5.3f %5.3f %5.3f\t= Flattening, Delta, Z0, Z1\n", ip.UseFlattening, ip.Delta, ip.Z0, ip.Z1)
	fmt.Printf("%8.5f\t\t= CVisc\n", ip.CVisc)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	keys := make([]string, len(ip.BCs))
	i := 0
	for k := range ip.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, ip.BCs[key])
	}
}
