package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/cazuela-chapina-api/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func sampleClaims() pkgjwt.Claims {
	return pkgjwt.Claims{UserID: "u-1", BranchID: "b-1", Role: "cajero", SessionID: "s-1"}
}

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, sampleClaims(), "cazuela-test", 60)
	require.NoError(t, err)

	c, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", c.UserID)
	assert.Equal(t, "b-1", c.BranchID)
	assert.Equal(t, "cajero", c.Role)
	assert.Equal(t, "s-1", c.SessionID)
	assert.Equal(t, "u-1", c.Subject)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, sampleClaims(), "cazuela-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, sampleClaims(), "cazuela-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", sampleClaims(), "x", 60)
	assert.Error(t, err)
}
