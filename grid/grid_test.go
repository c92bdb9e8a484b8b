package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/ctu2d/types"
)

func TestGrid2D(t *testing.T) {
	g, err := NewGrid2D(10, 5, 2, 0, 1, -1, 1)
	require.NoError(t, err)
	assert.Equal(t, 14, g.Qx)
	assert.Equal(t, 9, g.Qy)
	assert.Equal(t, 2, g.ILo)
	assert.Equal(t, 11, g.IHi)
	assert.Equal(t, 6, g.JHi)
	assert.InDelta(t, 0.1, g.Dx, 1.e-15)
	assert.InDelta(t, 0.4, g.Dy, 1.e-15)
	assert.InDelta(t, 0.05, g.X[g.ILo], 1.e-15)
	assert.InDelta(t, 0.95, g.X[g.IHi], 1.e-15)
	assert.InDelta(t, -0.8, g.Y[g.JLo], 1.e-15)
	assert.True(t, g.Interior(2, 2))
	assert.False(t, g.Interior(1, 2))

	_, err = NewGrid2D(0, 5, 2, 0, 1, 0, 1)
	assert.Error(t, err)
	_, err = NewGrid2D(5, 5, 0, 0, 1, 0, 1)
	assert.Error(t, err)
	_, err = NewGrid2D(5, 5, 2, 1, 1, 0, 1)
	assert.Error(t, err)
}

func TestField(t *testing.T) {
	f := NewField(3, 4)
	f.Set(2, 1, 7)
	assert.Equal(t, 7., f.At(2, 1))
	assert.Equal(t, 7., f.M.At(2, 1))
	assert.Equal(t, 9, f.Ind(2, 1))
	c := f.Copy()
	c.Set(2, 1, 3)
	assert.Equal(t, 7., f.At(2, 1))
	f.Fill(2)
	assert.Equal(t, 2., f.At(0, 3))
	f.CopyFrom(c)
	assert.Equal(t, 3., f.At(2, 1))
	f.Zero()
	assert.Equal(t, 0., f.At(2, 1))
}

func TestBCObject(t *testing.T) {
	bc, err := NewBCObject(map[string]string{"XL": "wall", "xr": "Outflow", "YL": "periodic", "YR": "periodic"})
	require.NoError(t, err)
	assert.Equal(t, types.BC_Reflect, bc.XLB)
	assert.Equal(t, types.BC_Periodic, bc.YRB)
	assert.Equal(t, SolidWalls{XL: true}, bc.Solid())

	_, err = NewBCObject(map[string]string{"YL": "periodic"})
	assert.Error(t, err)
	_, err = NewBCObject(map[string]string{"front": "outflow"})
	assert.Error(t, err)
	_, err = NewBCObject(map[string]string{"XL": "sticky"})
	assert.Error(t, err)
	bc, err = NewBCObject(nil)
	assert.NoError(t, err)
	assert.Equal(t, types.BC_Outflow, bc.YRB)
}

func TestFillBCs(t *testing.T) {
	g, err := NewGrid2D(4, 3, 2, 0, 1, 0, 1)
	require.NoError(t, err)
	var (
		bc = BCObject{XLB: types.BC_Reflect, XRB: types.BC_Outflow, YLB: types.BC_Periodic, YRB: types.BC_Periodic}
		cd = NewCellData(g, bc)
	)
	for i := g.ILo; i <= g.IHi; i++ {
		for j := g.JLo; j <= g.JHi; j++ {
			val := float64(10*i + j)
			cd.SetState(i, j, [4]float64{val, val + 1, val + 2, val + 3})
		}
	}
	cd.FillBCs()
	// Reflecting left: mirror, with x momentum odd
	for k := 0; k < g.Ng; k++ {
		assert.Equal(t, cd.U[types.IDens].At(g.ILo+k, g.JLo), cd.U[types.IDens].At(g.ILo-1-k, g.JLo))
		assert.Equal(t, -cd.U[types.IXMom].At(g.ILo+k, g.JLo), cd.U[types.IXMom].At(g.ILo-1-k, g.JLo))
		assert.Equal(t, cd.U[types.IYMom].At(g.ILo+k, g.JLo), cd.U[types.IYMom].At(g.ILo-1-k, g.JLo))
		// Outflow right
		assert.Equal(t, cd.U[types.IEner].At(g.IHi, g.JHi), cd.U[types.IEner].At(g.IHi+1+k, g.JHi))
		// Periodic in y, including the corners
		for i := 0; i < g.Qx; i++ {
			assert.Equal(t, cd.U[types.IDens].At(i, g.JHi-k), cd.U[types.IDens].At(i, g.JLo-1-k))
			assert.Equal(t, cd.U[types.IYMom].At(i, g.JLo+k), cd.U[types.IYMom].At(i, g.JHi+1+k))
		}
	}
	assert.Equal(t, cd.U[types.IDens].At(g.ILo, g.JHi), cd.U[types.IDens].At(g.ILo-1, g.JLo-1))
	assert.Equal(t, -cd.U[types.IXMom].At(g.ILo, g.JHi), cd.U[types.IXMom].At(g.ILo-1, g.JLo-1))

	cp := cd.Copy()
	cp.U[0].Set(0, 0, -1)
	assert.NotEqual(t, -1., cd.U[0].At(0, 0))
}
