package idgen_test

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/area-freight/internal/infrastructure/idgen"
)

func TestSnowflake_PrefijoYUnicidad(t *testing.T) {
	gen, err := idgen.NewSnowflakeVersionGenerator(3, "AFD")
	require.NoError(t, err)

	seen := make(map[string]bool)
	var prev int64
	for i := 0; i < 1000; i++ {
		v, err := gen.Next(context.Background())
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(v, "AFD"))
		require.False(t, seen[v], "versión repetida %s", v)
		seen[v] = true

		n, err := strconv.ParseInt(strings.TrimPrefix(v, "AFD"), 10, 64)
		require.NoError(t, err)
		assert.Greater(t, n, prev)
		prev = n
	}
}

func TestSnowflake_NodoFueraDeRango(t *testing.T) {
	_, err := idgen.NewSnowflakeVersionGenerator(5000, "AFD")
	assert.Error(t, err)
}
