package utils

const (
	// Floors shared by the reconstruction and the Riemann solvers
	SmallP   = 1.e-10
	SmallRho = 1.e-10
	SmallC   = 1.e-10
)
