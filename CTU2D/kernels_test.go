package CTU2D

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/ctu2d/grid"
	"github.com/notargets/ctu2d/types"
)

func TestMCLimiters(t *testing.T) {
	// Linear data is reproduced exactly
	assert.Equal(t, 1., limitMC2(1, 2, 3))
	assert.InDelta(t, 1., limitMC4(1, 2, 3, 1, 1), 1.e-15)
	// Extrema flatten
	assert.Equal(t, 0., limitMC2(1, 3, 2))
	assert.Equal(t, 0., limitMC4(1, 3, 2, 1, 1))
	assert.Equal(t, 0., limitMC2(1, 1, 2))

	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 10000; n++ {
		a, b, c := rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()
		sm1, sp1 := rng.NormFloat64(), rng.NormFloat64()
		bound := 2 * math.Min(math.Abs(b-a), math.Abs(c-b))
		for _, slope := range []float64{limitMC2(a, b, c), limitMC4(a, b, c, sm1, sp1)} {
			if (b-a)*(c-b) <= 0 {
				assert.Equal(t, 0., slope)
				continue
			}
			assert.LessOrEqual(t, math.Abs(slope), bound*(1+1.e-15))
		}
		// Reconstructed faces stay within the neighboring averages
		s := limitMC2(a, b, c)
		lo, hi := math.Min(a, math.Min(b, c)), math.Max(a, math.Max(b, c))
		assert.True(t, b+0.5*s >= lo-1.e-14 && b+0.5*s <= hi+1.e-14)
		assert.True(t, b-0.5*s >= lo-1.e-14 && b-0.5*s <= hi+1.e-14)
	}
}

func TestFlattenCoef(t *testing.T) {
	var (
		delta, z0, z1 = 0.33, 0.75, 0.85
	)
	assert.Equal(t, 1., flattenCoef(1, 1, 1, 1, 0, 0, delta, z0, z1))
	// Strong compressive jump is fully flattened
	assert.Equal(t, 0., flattenCoef(1, 1, 10, 10, 1, 0, delta, z0, z1))
	// The same jump in an expansion is left alone
	assert.Equal(t, 1., flattenCoef(1, 1, 10, 10, 0, 1, delta, z0, z1))
	// Weak jump below delta
	assert.Equal(t, 1., flattenCoef(1, 1, 1.1, 1.1, 1, 0, delta, z0, z1))
	// Ramp: z = 0.8 sits halfway between z0 and z1
	assert.InDelta(t, 0.5, flattenCoef(1, 1.5, 2.3, 2, 1, 0, delta, z0, z1), 1.e-12)

	rng := rand.New(rand.NewSource(3))
	for n := 0; n < 10000; n++ {
		xi := flattenCoef(rng.ExpFloat64(), rng.ExpFloat64()+1.e-10, rng.ExpFloat64()+1.e-10, rng.ExpFloat64(),
			rng.NormFloat64(), rng.NormFloat64(), delta, z0, z1)
		assert.True(t, xi >= 0 && xi <= 1)
	}
}

func TestEigenSystem(t *testing.T) {
	var (
		gamma = 1.4
		q     = [4]float64{1.3, 0.4, -0.7, 2.1}
		cs    = math.Sqrt(gamma * q[types.IP] / q[types.IRho])
	)
	for _, dir := range []types.Direction{types.XDir, types.YDir} {
		ev, lvec, rvec := eigenSystem(dir, q, cs)
		L, R := rowsDense(lvec), rowsDense(rvec)
		var LR mat.Dense
		LR.Mul(L, R.T())
		assert.True(t, mat.EqualApprox(&LR, identity4(), 1.e-14), "%s: L.R != I", dir)

		// R^T diag(ev) L is the primitive Jacobian
		var A mat.Dense
		A.Product(R.T(), mat.NewDiagDense(4, ev[:]), L)
		nv, _ := dir.NormalVelocity()
		un := q[nv]
		Aexact := mat.NewDense(4, 4, nil)
		for n := 0; n < 4; n++ {
			Aexact.Set(n, n, un)
		}
		Aexact.Set(types.IRho, nv, q[types.IRho])
		Aexact.Set(nv, types.IP, 1/q[types.IRho])
		Aexact.Set(types.IP, nv, gamma*q[types.IP])
		assert.True(t, mat.EqualApprox(&A, Aexact, 1.e-13), "%s: Jacobian mismatch", dir)
	}
}

func TestTraceCellSupersonic(t *testing.T) {
	var (
		gamma = 1.4
		dtdx  = 0.1
		dq    = [4]float64{0.05, -0.02, 0.03, 0.1}
	)
	cases := []struct {
		dir  types.Direction
		q    [4]float64
		sign float64
	}{
		{types.XDir, [4]float64{1, 3, 0.3, 1}, 1},
		{types.YDir, [4]float64{1, 0.3, 3, 1}, 1},
		{types.XDir, [4]float64{1, -3, 0.3, 1}, -1},
		{types.YDir, [4]float64{1, 0.3, -3, 1}, -1},
	}
	for _, c := range cases {
		cs := math.Sqrt(gamma * c.q[types.IP] / c.q[types.IRho])
		ev, lvec, rvec := eigenSystem(c.dir, c.q, cs)
		var A mat.Dense
		A.Product(rowsDense(rvec).T(), mat.NewDiagDense(4, ev[:]), rowsDense(lvec))
		var Adq mat.VecDense
		Adq.MulVec(&A, mat.NewVecDense(4, dq[:]))

		vLo, vHi := traceCell(c.dir, c.q, dq, dtdx, gamma)
		for n := 0; n < 4; n++ {
			expect := c.q[n] + 0.5*(dq[n]-dtdx*Adq.AtVec(n))
			if c.sign < 0 {
				// Everything moves left, the low face gets the full upwind prediction
				assert.InDelta(t, c.q[n]-0.5*(dq[n]+dtdx*Adq.AtVec(n)), vLo[n], 1.e-14)
				continue
			}
			assert.InDelta(t, expect, vHi[n], 1.e-14)
		}
	}
	// Zero slope gives the cell average on both faces
	q := [4]float64{1, 0.2, 0.1, 1}
	vLo, vHi := traceCell(types.XDir, q, [4]float64{}, dtdx, gamma)
	assert.Equal(t, q, vLo)
	assert.Equal(t, q, vHi)
}

func TestTraceCellStandingWave(t *testing.T) {
	var (
		gamma = 1.4
		dtdx  = 0.1
		cs    = math.Sqrt(gamma)
		q     = [4]float64{1, 0, 0, 1}
		dq    = [4]float64{0.1, 0, 0, 0}
	)
	// The entropy wave has zero speed and is traced onto the high face only
	for _, dir := range []types.Direction{types.XDir, types.YDir} {
		vLo, vHi := traceCell(dir, q, dq, dtdx, gamma)
		assert.InDelta(t, 1.05, vHi[types.IRho], 1.e-14, "%s", dir)
		assert.InDelta(t, 0.95+0.005*cs, vLo[types.IRho], 1.e-14, "%s", dir)
		for _, n := range []int{types.IU, types.IV, types.IP} {
			assert.Equal(t, q[n], vHi[n], "%s", dir)
			assert.Equal(t, q[n], vLo[n], "%s", dir)
		}
	}
}

// Offsets of the transverse differences checked against fields with known differences
func TestTransverseHelpers(t *testing.T) {
	var (
		Fx, Fy = [4]grid.Field{}, [4]grid.Field{}
	)
	for n := range Fx {
		Fx[n], Fy[n] = grid.NewField(10, 10), grid.NewField(10, 10)
		for i := 0; i < 10; i++ {
			for j := 0; j < 10; j++ {
				fi, fj := float64(i), float64(j)
				Fy[n].Set(i, j, fi*fj*fj+float64(n))
				Fx[n].Set(i, j, fi*fi*fj-float64(n))
			}
		}
	}
	for _, ij := range [][2]int{{3, 4}, {5, 2}, {7, 7}} {
		i, j := ij[0], ij[1]
		fi, fj := float64(i), float64(j)
		for n := 0; n < 4; n++ {
			assert.Equal(t, (fi-1)*(2*fj+1), transverseXL(Fy, i, j)[n])
			assert.Equal(t, fi*(2*fj+1), transverseXR(Fy, i, j)[n])
			assert.Equal(t, (2*fi+1)*(fj-1), transverseYL(Fx, i, j)[n])
			assert.Equal(t, (2*fi+1)*fj, transverseYR(Fx, i, j)[n])
		}
	}
	U := [4]grid.Field{grid.NewField(10, 10), grid.NewField(10, 10), grid.NewField(10, 10), grid.NewField(10, 10)}
	subtractScaled(U, 3, 4, 0.5, transverseXR(Fy, 3, 4))
	assert.Equal(t, -0.5*3*9, U[2].At(3, 4))
}

func TestConsPrimRoundTrip(t *testing.T) {
	gl := gammaLaw(t)
	q := [4]float64{0.8, -0.3, 1.2, 0.45}
	U := primToCons(q, gl)
	assert.InDelta(t, 0.45/0.4+0.5*0.8*(0.09+1.44), U[3], 1.e-14)
	q2, floored := consToPrim(U, gl)
	assert.False(t, floored)
	for n := range q {
		assert.InDelta(t, q[n], q2[n], 1.e-14)
	}
	// Negative internal energy is floored and reported
	U[3] = 0
	q2, floored = consToPrim(U, gl)
	assert.True(t, floored)
	assert.Equal(t, 1.e-10, q2[3])
}

func rowsDense(v [4][4]float64) *mat.Dense {
	M := mat.NewDense(4, 4, nil)
	for m := range v {
		M.SetRow(m, v[m][:])
	}
	return M
}

func identity4() *mat.Dense {
	I := mat.NewDense(4, 4, nil)
	for n := 0; n < 4; n++ {
		I.Set(n, n, 1)
	}
	return I
}
