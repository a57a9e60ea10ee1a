package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unic0rn9k/slas/internal/core"
)

func TestLoadDefaults(t *testing.T) {
	th, err := Load()
	require.NoError(t, err)
	assert.Equal(t, core.DefaultThresholds(), th)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SLAS_DOT_THRESHOLD", "512")
	t.Setenv("SLAS_MATMUL_THRESHOLD", "100000")

	th, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 512, th.Dot)
	assert.Equal(t, 100000, th.MatMul)
	assert.Equal(t, core.DefaultThresholds().Norm, th.Norm, "unset keys keep their defaults")
}

func TestLoadRejectsNonPositive(t *testing.T) {
	t.Setenv("SLAS_NORM_THRESHOLD", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestMustLoadPanicsOnBadEnv(t *testing.T) {
	t.Setenv("SLAS_MATVEC_THRESHOLD", "-3")
	assert.Panics(t, func() { MustLoad() })
}
