package grid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notargets/ctu2d/types"
)

// BCObject carries the boundary type of each side of the rectangle
type BCObject struct {
	XLB, XRB, YLB, YRB types.BCFLAG
}

// SolidWalls flags which domain boundaries are impenetrable; the flux
// routine uses these to zero the normal velocity at those interfaces
type SolidWalls struct {
	XL, XR, YL, YR bool
}

var sideNames = map[string]int{
	"xl": 0, "xlo": 0, "left": 0,
	"xr": 1, "xhi": 1, "right": 1,
	"yl": 2, "ylo": 2, "bottom": 2,
	"yr": 3, "yhi": 3, "top": 3,
}

// NewBCObject builds boundary types from side name to BC name pairs, e.g.
// {"XL": "outflow", "YL": "periodic", "YR": "periodic", ...}
// Sides not listed default to outflow.
func NewBCObject(labels map[string]string) (bc BCObject, err error) {
	var (
		sides = [4]types.BCFLAG{types.BC_Outflow, types.BC_Outflow, types.BC_Outflow, types.BC_Outflow}
		keys  = make([]string, 0, len(labels))
	)
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		side, ok := sideNames[strings.ToLower(strings.TrimSpace(k))]
		if !ok {
			err = fmt.Errorf("unknown boundary side %q", k)
			return
		}
		if sides[side], err = types.NewBCFLAG(labels[k]); err != nil {
			err = fmt.Errorf("boundary %s: %w", k, err)
			return
		}
	}
	bc = BCObject{XLB: sides[0], XRB: sides[1], YLB: sides[2], YRB: sides[3]}
	err = bc.Validate()
	return
}

func (bc BCObject) Validate() error {
	if (bc.XLB == types.BC_Periodic) != (bc.XRB == types.BC_Periodic) {
		return fmt.Errorf("periodic x boundaries must be paired, have %s/%s", bc.XLB, bc.XRB)
	}
	if (bc.YLB == types.BC_Periodic) != (bc.YRB == types.BC_Periodic) {
		return fmt.Errorf("periodic y boundaries must be paired, have %s/%s", bc.YLB, bc.YRB)
	}
	for _, b := range []types.BCFLAG{bc.XLB, bc.XRB, bc.YLB, bc.YRB} {
		if b == types.BC_None {
			return fmt.Errorf("boundary type unset")
		}
	}
	return nil
}

func (bc BCObject) Solid() SolidWalls {
	return SolidWalls{
		XL: bc.XLB.IsSolid(), XR: bc.XRB.IsSolid(),
		YL: bc.YLB.IsSolid(), YR: bc.YRB.IsSolid(),
	}
}

func (bc BCObject) String() string {
	return fmt.Sprintf("XL:%s XR:%s YL:%s YR:%s", bc.XLB, bc.XRB, bc.YLB, bc.YRB)
}

// FillBCs populates every ghost layer of the conserved fields. The x sweep
// covers all j and the y sweep all i, so corner ghosts come out consistent.
func (bc BCObject) FillBCs(g *Grid2D, U [4]Field) {
	for n := 0; n < types.NVar; n++ {
		fillX(g, U[n], bc.XLB, bc.XRB, n == types.IXMom)
		fillY(g, U[n], bc.YLB, bc.YRB, n == types.IYMom)
	}
}

func fillX(g *Grid2D, f Field, lo, hi types.BCFLAG, normal bool) {
	for k := 0; k < g.Ng; k++ {
		gl, gr := g.ILo-1-k, g.IHi+1+k
		for j := 0; j < g.Qy; j++ {
			f.Set(gl, j, ghostValue(lo, f.At(g.ILo, j), f.At(g.ILo+k, j), f.At(g.IHi-k, j), normal))
			f.Set(gr, j, ghostValue(hi, f.At(g.IHi, j), f.At(g.IHi-k, j), f.At(g.ILo+k, j), normal))
		}
	}
}

func fillY(g *Grid2D, f Field, lo, hi types.BCFLAG, normal bool) {
	for k := 0; k < g.Ng; k++ {
		gl, gr := g.JLo-1-k, g.JHi+1+k
		for i := 0; i < g.Qx; i++ {
			f.Set(i, gl, ghostValue(lo, f.At(i, g.JLo), f.At(i, g.JLo+k), f.At(i, g.JHi-k), normal))
			f.Set(i, gr, ghostValue(hi, f.At(i, g.JHi), f.At(i, g.JHi-k), f.At(i, g.JLo+k), normal))
		}
	}
}

// ghostValue picks from the edge cell, the mirror image and the periodic image
func ghostValue(bc types.BCFLAG, edge, mirror, image float64, normal bool) float64 {
	switch bc {
	case types.BC_Reflect:
		if normal {
			return -mirror
		}
		return mirror
	case types.BC_Periodic:
		return image
	default:
		return edge
	}
}
