package benchmarks

import (
	"fmt"
	"testing"

	"github.com/notargets/ctu2d/InputParameters"
	"github.com/notargets/ctu2d/model_problems/Euler2D"
)

func newInput(initType, method string, n int) (ip *InputParameters.InputParameters2D) {
	ip = &InputParameters.InputParameters2D{
		InitType:      initType,
		Method:        method,
		FinalTime:     1,
		Nx:            n,
		Ny:            n,
		Limiter:       2,
		UseFlattening: true,
		CVisc:         0.1,
		BCs:           map[string]string{"XL": "periodic", "XR": "periodic", "YL": "periodic", "YR": "periodic"},
	}
	ip.SetDefaults()
	return
}

func BenchmarkEulerStep(b *testing.B) {
	for _, method := range []string{"CTU", "MOL"} {
		for _, n := range []int{64, 256} {
			c, err := Euler2D.NewEuler(newInput("acousticpulse", method, n))
			if err != nil {
				b.Fatal(err)
			}
			dt, err := c.CalculateDT()
			if err != nil {
				b.Fatal(err)
			}
			b.Run(fmt.Sprintf("%s/%dx%d", method, n, n), func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err = c.Step(0.1 * dt); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkEulerGetFlowFunction(b *testing.B) {
	var (
		q      = [4]float64{1, 1, 1, 3}
		c, err = Euler2D.NewEuler(newInput("advect", "CTU", 8))
	)
	if err != nil {
		b.Fatal(err)
	}
	GM1 := c.FS.Gamma - 1
	var p float64
	b.Run("direct compute", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			qq := 0.5 * (q[1]*q[1] + q[2]*q[2]) / q[0]
			p = GM1 * (q[3] - qq)
		}
	})
	b.Run("Optimized function call", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			p = c.FS.GetFlowFunctionQQ(q, Euler2D.StaticPressure)
		}
	})
	pressFunc := func(q [4]float64) (p float64) {
		qq := 0.5 * (q[1]*q[1] + q[2]*q[2]) / q[0]
		p = GM1 * (q[3] - qq)
		return
	}
	b.Run("inline function call", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			p = pressFunc(q)
		}
	})
	fmt.Printf("p = %8.5f\n", p)
}
