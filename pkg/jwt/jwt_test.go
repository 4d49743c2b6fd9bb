package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/area-freight/pkg/jwt"
)

const secret = "test-secret-key-32-bytes-minimum!"

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	id := jwt.Identity{UserID: "u-1", UserName: "Ana Pérez", CompanyID: "c-1", Role: jwt.RolePricing}

	token, err := jwt.Generate(secret, id, "area-freight", 5)
	require.NoError(t, err)

	got, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(secret, jwt.Identity{UserID: "u"}, "area-freight", 5)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate(secret, jwt.Identity{UserID: "u"}, "area-freight", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", jwt.Identity{}, "x", 1)
	assert.Error(t, err)
}
