package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/ctu2d/InputParameters"
	"github.com/notargets/ctu2d/model_problems/Euler2D"
)

var (
	csvFile     string
	resolutions = "16,32,64,128"
	method      = "CTU"
	limiter     = 2
	riemannName = "CGF"
	CFL         = 0.8
	finalTime   = 1.
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file to write the convergence study entries to")
	resPtr := flag.String("n", resolutions, "comma separated cell counts per direction")
	methodPtr := flag.String("method", method, "integration method, CTU or MOL")
	limiterPtr := flag.Int("limiter", limiter, "0 = none, 1 = MC2, 2 = MC4")
	riemannPtr := flag.String("riemann", riemannName, "Riemann solver: CGF, HLLC or Exact")
	CFLPtr := flag.Float64("CFL", CFL, "CFL number")
	FTPtr := flag.Float64("FinalTime", finalTime, "time at which the error is measured")
	flag.Parse()

	numPTS, err := parseResolutions(*resPtr)
	if err != nil {
		fmt.Printf("error: %s\n", err)
		flag.Usage()
		os.Exit(1)
	}
	ip := &InputParameters.InputParameters2D{
		Title:     "Advected Density Wave",
		CFL:       *CFLPtr,
		FinalTime: *FTPtr,
		InitType:  "advect",
		Method:    *methodPtr,
		Riemann:   *riemannPtr,
		Limiter:   *limiterPtr,
		BCs:       map[string]string{"XL": "periodic", "XR": "periodic", "YL": "periodic", "YR": "periodic"},
	}
	cs, err := RunStudy(ip, numPTS)
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
	cs.Print()
	if len(*csvFilePtr) != 0 {
		if err = cs.WriteCSV(*csvFilePtr); err != nil {
			fmt.Printf("error: %s\n", err)
			os.Exit(1)
		}
	}
}

func parseResolutions(txt string) (numPTS []int, err error) {
	for _, tok := range strings.Split(txt, ",") {
		var n int
		if n, err = strconv.Atoi(strings.TrimSpace(tok)); err != nil {
			return
		}
		numPTS = append(numPTS, n)
	}
	if len(numPTS) < 2 {
		err = fmt.Errorf("need at least two resolutions, have %v", numPTS)
	}
	return
}

type ConvergenceStudy struct {
	title                 string
	limiter               int
	numPTS                []int
	CFL                   float64
	rhoL1, rhouL1, eL1    []float64
	rhoMAX, rhouMAX, eMAX []float64
}

func NewConvergenceStudy(title string, limiter int, CFL float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		title:   title,
		limiter: limiter,
		CFL:     CFL,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, rhoL1, rhouL1, eL1, rhoMAX, rhouMAX, eMAX float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.rhoL1 = append(cs.rhoL1, rhoL1)
	cs.rhouL1 = append(cs.rhouL1, rhouL1)
	cs.eL1 = append(cs.eL1, eL1)
	cs.rhoMAX = append(cs.rhoMAX, rhoMAX)
	cs.rhouMAX = append(cs.rhouMAX, rhouMAX)
	cs.eMAX = append(cs.eMAX, eMAX)
}

// Order is the observed rate between consecutive resolutions, one entry
// fewer than the number of resolutions
func (cs *ConvergenceStudy) Order(errs []float64) (order []float64) {
	for i := 1; i < len(errs); i++ {
		ratio := float64(cs.numPTS[i]) / float64(cs.numPTS[i-1])
		order = append(order, math.Log(errs[i-1]/errs[i])/math.Log(ratio))
	}
	return
}

func RunStudy(ip *InputParameters.InputParameters2D, numPTS []int) (cs *ConvergenceStudy, err error) {
	cs = NewConvergenceStudy(ip.Title, ip.Limiter, ip.CFL)
	for _, n := range numPTS {
		var (
			c        *Euler2D.Euler
			l1, lMax [4]float64
			run      = *ip
		)
		run.Nx, run.Ny = n, n
		run.SetDefaults()
		if c, err = Euler2D.NewEuler(&run); err != nil {
			return
		}
		if err = c.Solve(); err != nil {
			return
		}
		if l1, lMax, err = c.ErrorNorms(); err != nil {
			return
		}
		cs.Add(n, l1[0], l1[1], l1[3], lMax[0], lMax[1], lMax[3])
	}
	return
}

func (cs *ConvergenceStudy) Print() {
	fmt.Printf("Title = %s, Limiter = %d, CFL = %5.2f\n", cs.title, cs.limiter, cs.CFL)
	fmt.Printf("%6s%12s%12s%12s%12s%12s%12s\n", "N", "rhoL1", "rhouL1", "eL1", "rhoMAX", "rhouMAX", "eMAX")
	for i := range cs.numPTS {
		fmt.Printf("%6d%12.4e%12.4e%12.4e%12.4e%12.4e%12.4e\n",
			cs.numPTS[i], cs.rhoL1[i], cs.rhouL1[i], cs.eL1[i], cs.rhoMAX[i], cs.rhouMAX[i], cs.eMAX[i])
	}
	fmt.Printf("Order (rho L1) = %5.2f\n", cs.Order(cs.rhoL1))
	fmt.Printf("Order (rho MAX) = %5.2f\n", cs.Order(cs.rhoMAX))
}

func (cs *ConvergenceStudy) WriteCSV(fileName string) (err error) {
	var (
		f *os.File
	)
	if f, err = os.Create(fileName); err != nil {
		return
	}
	defer f.Close()
	w := csv.NewWriter(f)
	records := [][]string{{"title", "numPTS", "limiter", "CFL", "rhoL1", "rhouL1", "eL1", "rhoMAX", "rhouMAX", "eMAX"}}
	ff := func(x float64) string { return strconv.FormatFloat(x, 'e', -1, 64) }
	for i := range cs.numPTS {
		records = append(records, []string{cs.title, strconv.Itoa(cs.numPTS[i]), strconv.Itoa(cs.limiter), ff(cs.CFL),
			ff(cs.rhoL1[i]), ff(cs.rhouL1[i]), ff(cs.eL1[i]), ff(cs.rhoMAX[i]), ff(cs.rhouMAX[i]), ff(cs.eMAX[i])})
	}
	if err = w.WriteAll(records); err != nil {
		return
	}
	return f.Close()
}
