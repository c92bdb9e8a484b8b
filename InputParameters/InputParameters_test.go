package InputParameters

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/ctu2d/CTU2D"
)

var sodInput = []byte(`
Title: "Sod shock tube"
CFL: 0.8
FinalTime: 0.2
InitType: sod
Nx: 100
Ny: 4
Riemann: HLLC
Limiter: 2
UseFlattening: true
CVisc: 0.1
BCs:
  XL: outflow
  XR: outflow
  YL: periodic
  YR: periodic
`)

func TestParse(t *testing.T) {
	var ip InputParameters2D
	require.NoError(t, ip.Parse(sodInput))
	want := InputParameters2D{
		Title:         "Sod shock tube",
		CFL:           0.8,
		FinalTime:     0.2,
		MaxIterations: 1000000,
		InitType:      "sod",
		Method:        "CTU",
		Nx:            100,
		Ny:            4,
		Ng:            4,
		XMax:          1,
		YMax:          1,
		Gamma:         1.4,
		Riemann:       "HLLC",
		Limiter:       2,
		UseFlattening: true,
		Delta:         0.33,
		Z0:            0.75,
		Z1:            0.85,
		CVisc:         0.1,
		BCs:           map[string]string{"XL": "outflow", "XR": "outflow", "YL": "periodic", "YR": "periodic"},
	}
	if diff := cmp.Diff(want, ip); diff != "" {
		t.Errorf("parsed input mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, ip.Validate())
	cfg, err := ip.SolverConfig()
	require.NoError(t, err)
	assert.Equal(t, CTU2D.LimiterMC4, cfg.Limiter)
	assert.Equal(t, "HLLC", cfg.Riemann)
}

func TestValidate(t *testing.T) {
	var ip InputParameters2D
	require.NoError(t, ip.Parse(sodInput))

	bad := ip
	bad.Riemann = "Roe"
	assert.True(t, errors.Is(bad.Validate(), CTU2D.ErrInvalidConfig))

	bad = ip
	bad.Limiter = 5
	assert.Error(t, bad.Validate())

	bad = ip
	bad.CFL = 1.5
	assert.Error(t, bad.Validate())

	bad = ip
	bad.BCs = map[string]string{"XL": "periodic"}
	assert.Error(t, bad.Validate())

	var minimal InputParameters2D
	require.NoError(t, minimal.Parse([]byte("FinalTime: 1\nNx: 8\nNy: 8\n")))
	assert.Equal(t, 4, minimal.Ng)
	assert.Equal(t, "CGF", minimal.Riemann)
	assert.NoError(t, minimal.Validate())
}

func TestParseOmittedKeysMatchDefaultConfig(t *testing.T) {
	var ip InputParameters2D
	require.NoError(t, ip.Parse([]byte("FinalTime: 1\nNx: 8\nNy: 8\n")))
	cfg, err := ip.SolverConfig()
	require.NoError(t, err)
	assert.Equal(t, CTU2D.DefaultConfig(), cfg)
	assert.Equal(t, CTU2D.RequiredGhostCells(CTU2D.LimiterMC4, true), ip.Ng)

	// Explicit zero values are kept
	var off InputParameters2D
	require.NoError(t, off.Parse([]byte("FinalTime: 1\nNx: 8\nNy: 8\nLimiter: 0\nUseFlattening: false\nCVisc: 0\n")))
	assert.Equal(t, 0, off.Limiter)
	assert.False(t, off.UseFlattening)
	assert.Equal(t, 0., off.CVisc)
	assert.Equal(t, 2, off.Ng)
}
