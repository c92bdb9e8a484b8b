package utils

import (
	"runtime"
)

// PartitionMap splits the half open index range [MinIndex, MaxIndex) into
// ParallelDegree contiguous buckets, with at most one item of imbalance
type PartitionMap struct {
	MinIndex, MaxIndex int
	ParallelDegree     int
	Partitions         [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, minIndex, maxIndex int) (pm *PartitionMap) {
	if maxIndex < minIndex {
		maxIndex = minIndex
	}
	if ParallelDegree < 1 {
		ParallelDegree = 1
	}
	if n := maxIndex - minIndex; ParallelDegree > n && n > 0 {
		ParallelDegree = n
	}
	pm = &PartitionMap{
		MinIndex:       minIndex,
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

// ParallelDegreeFor resolves a process limit into a goroutine count
func ParallelDegreeFor(ProcLimit int) (np int) {
	if ProcLimit > 0 {
		return ProcLimit
	}
	return runtime.NumCPU()
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bn int) (kMax int) {
	if bn == -1 {
		kMax = pm.MaxIndex - pm.MinIndex
		return
	}
	var (
		k1, k2 = pm.GetBucketRange(bn)
	)
	kMax = k2 - k1
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	// Splits one dimension into ParallelDegree pieces, with a maximum imbalance of one item
	var (
		span             = pm.MaxIndex - pm.MinIndex
		Npart            = span / pm.ParallelDegree
		startAdd, endAdd int
		remainder        int
	)
	remainder = span % pm.ParallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = pm.MinIndex + threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}
