package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchcmp/internal/benchmark"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load("")

	order, err := Order()
	require.NoError(t, err)
	assert.Equal(t, []benchmark.Pair{
		{Impl: "rust", Target: "rust"},
		{Impl: "moonbit", Target: "native"},
		{Impl: "moonbit", Target: "wasm-gc"},
	}, order)

	ref, err := Reference()
	require.NoError(t, err)
	assert.Equal(t, benchmark.Pair{Impl: "rust", Target: "rust"}, ref)

	assert.False(t, viper.GetBool("verbose"))
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load("")
	viper.Set("order", []string{"go/native", "rust/rust"})
	viper.Set("reference", "go/native")

	order, err := Order()
	require.NoError(t, err)
	require.Len(t, order, 2)
	assert.Equal(t, benchmark.Pair{Impl: "go", Target: "native"}, order[0])

	ref, err := Reference()
	require.NoError(t, err)
	assert.Equal(t, benchmark.Pair{Impl: "go", Target: "native"}, ref)
}
