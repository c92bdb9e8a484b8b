package types

import (
	"fmt"
	"strings"
)

//go:generate stringer -type=BCFLAG

type BCFLAG uint8

const (
	BC_None BCFLAG = iota
	BC_Outflow
	BC_Reflect
	BC_Periodic
)

var BCNameMap = map[string]BCFLAG{
	"outflow":   BC_Outflow,
	"out":       BC_Outflow,
	"zero-grad": BC_Outflow,
	"reflect":   BC_Reflect,
	"wall":      BC_Reflect,
	"slip":      BC_Reflect,
	"periodic":  BC_Periodic,
}

var bcPrintNames = []string{"None", "Outflow", "Reflect", "Periodic"}

func (bc BCFLAG) String() string {
	if int(bc) < len(bcPrintNames) {
		return bcPrintNames[bc]
	}
	return fmt.Sprintf("BCFLAG(%d)", bc)
}

// IsSolid reports whether the boundary is an impenetrable wall
func (bc BCFLAG) IsSolid() bool { return bc == BC_Reflect }

func NewBCFLAG(label string) (bc BCFLAG, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if bc, ok = BCNameMap[label]; !ok {
		err = fmt.Errorf("unknown boundary condition named %q", label)
	}
	return
}
