// Package config resolves the dispatch thresholds from the environment.
//
// The core packages consume Thresholds as already-resolved constants and
// never read the environment themselves; this package is the single
// place where external configuration enters the library.
//
// Recognized variables (all optional, element counts):
//
//	SLAS_DOT_THRESHOLD
//	SLAS_NORM_THRESHOLD
//	SLAS_MATVEC_THRESHOLD
//	SLAS_MATMUL_THRESHOLD
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/unic0rn9k/slas/internal/core"
)

const envPrefix = "SLAS"

// Config keys, bound to SLAS_*_THRESHOLD environment variables.
const (
	keyDot    = "dot_threshold"
	keyNorm   = "norm_threshold"
	keyMatVec = "matvec_threshold"
	keyMatMul = "matmul_threshold"
)

// Load resolves Thresholds from the environment, falling back to
// core.DefaultThresholds for anything unset. A non-positive threshold is
// rejected: zero would route every call, including empty slices, to the
// vendor backend.
func Load() (core.Thresholds, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	def := core.DefaultThresholds()
	v.SetDefault(keyDot, def.Dot)
	v.SetDefault(keyNorm, def.Norm)
	v.SetDefault(keyMatVec, def.MatVec)
	v.SetDefault(keyMatMul, def.MatMul)

	th := core.Thresholds{
		Dot:    v.GetInt(keyDot),
		Norm:   v.GetInt(keyNorm),
		MatVec: v.GetInt(keyMatVec),
		MatMul: v.GetInt(keyMatMul),
	}

	for name, val := range map[string]int{
		keyDot: th.Dot, keyNorm: th.Norm, keyMatVec: th.MatVec, keyMatMul: th.MatMul,
	} {
		if val <= 0 {
			return core.Thresholds{}, fmt.Errorf("config: %s must be positive, got %d", name, val)
		}
	}
	return th, nil
}

// MustLoad is Load, panicking on invalid configuration. Intended for
// process start-up paths where a bad environment should fail loudly.
func MustLoad() core.Thresholds {
	th, err := Load()
	if err != nil {
		panic(err)
	}
	return th
}
