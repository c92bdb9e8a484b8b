package CTU2D

import (
	"golang.org/x/sync/errgroup"

	"github.com/notargets/ctu2d/types"
	"github.com/notargets/ctu2d/utils"
)

// parallelRows runs work over the rows [iBeg, iEnd) split into contiguous
// partitions, one goroutine each. Every stage writes only elements owned by
// the cells it visits, so partitions never contend. The first error wins.
func (s *Solver) parallelRows(iBeg, iEnd int, work func(iBeg, iEnd int) error) error {
	if iEnd <= iBeg {
		return nil
	}
	pm := utils.NewPartitionMap(s.ParallelDegree, iBeg, iEnd)
	if pm.ParallelDegree == 1 {
		return work(iBeg, iEnd)
	}
	var eg errgroup.Group
	for np := 0; np < pm.ParallelDegree; np++ {
		i0, i1 := pm.GetBucketRange(np)
		eg.Go(func() error { return work(i0, i1) })
	}
	return eg.Wait()
}

// stride is the flat index offset to the next cell along dir
func (s *Solver) stride(dir types.Direction) int {
	if dir == types.XDir {
		return s.Grid.Qy
	}
	return 1
}

// span is the cell range whose +-pad stencil along dir stays on the array,
// as half open row and column bounds
func (s *Solver) span(dir types.Direction, pad int) (iBeg, iEnd, jBeg, jEnd int) {
	iBeg, iEnd, jBeg, jEnd = 0, s.Grid.Qx, 0, s.Grid.Qy
	if dir == types.XDir {
		iBeg, iEnd = pad, s.Grid.Qx-pad
	} else {
		jBeg, jEnd = pad, s.Grid.Qy-pad
	}
	return
}
