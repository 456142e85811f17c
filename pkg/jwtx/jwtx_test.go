package jwtx_test

import (
	"testing"
	"time"

	"github.com/andinopay/nomina/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSigner("nomina-test", time.Hour)
	require.NoError(t, err)

	raw, err := signer.Sign("contratista1", "contractor", "Constructora Norte SpA")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := signer.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "contratista1", claims.Subject)
	require.Equal(t, "contractor", claims.Role)
	require.Equal(t, "Constructora Norte SpA", claims.Name)
	require.NoError(t, claims.ValidateExpiry())
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	t.Parallel()

	a, err := jwtx.NewSigner("nomina-test", time.Hour)
	require.NoError(t, err)
	b, err := jwtx.NewSigner("nomina-test", time.Hour)
	require.NoError(t, err)

	raw, err := a.Sign("admin", "admin", "Administrador")
	require.NoError(t, err)

	// Signed by a different keypair.
	_, err = b.Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSigner("nomina-test", time.Hour)
	require.NoError(t, err)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := signer.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrInvalidToken)
	}
}

func TestExpiredTokenFailsValidation(t *testing.T) {
	t.Parallel()

	claims := jwtx.NewSessionClaims(
		"admin", "admin", "Administrador",
		"nomina-test", time.Minute, time.Now().UTC().Add(-time.Hour),
	)
	require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrExpired)
}
