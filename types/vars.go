package types

// Conserved variable layout, shared by cell data, interface states and fluxes
const (
	IDens = iota
	IXMom
	IYMom
	IEner
	NVar
)

// Primitive variable layout: Q = (rho, u, v, p)
const (
	IRho = iota
	IU
	IV
	IP
)

type Direction uint8

const (
	XDir Direction = iota
	YDir
)

func (d Direction) String() string {
	if d == XDir {
		return "x"
	}
	return "y"
}

// NormalMomentum returns the conserved index of the momentum component
// aligned with the direction, and of the transverse one
func (d Direction) NormalMomentum() (normal, transverse int) {
	if d == XDir {
		return IXMom, IYMom
	}
	return IYMom, IXMom
}

// NormalVelocity is the primitive-variable analog of NormalMomentum
func (d Direction) NormalVelocity() (normal, transverse int) {
	if d == XDir {
		return IU, IV
	}
	return IV, IU
}
