// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/constants"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func testClaims() TokenClaims {
	return TokenClaims{
		UserID: uuid.New(),
		Email:  "alice@campus.edu",
		Role:   constants.RoleFaculty,
	}
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	ti := testIssuer()
	in := testClaims()

	pair, err := ti.Issue(in)
	require.NoError(t, err)

	access, err := ti.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, in.UserID, access.UserID)
	assert.Equal(t, in.Email, access.Email)
	assert.Equal(t, in.Role, access.Role)

	refresh, err := ti.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, in.UserID, refresh.UserID)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	ti := testIssuer()
	pair, err := ti.Issue(testClaims())
	require.NoError(t, err)

	_, err = ti.VerifyAccess(pair.RefreshToken)
	assert.Error(t, err)
	_, err = ti.VerifyRefresh(pair.AccessToken)
	assert.Error(t, err)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	pair, err := testIssuer().Issue(testClaims())
	require.NoError(t, err)

	other := NewTokenIssuer("different", "different", time.Hour, 24*time.Hour)
	_, err = other.VerifyAccess(pair.AccessToken)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	ti := NewTokenIssuer("access-secret", "refresh-secret", -time.Minute, -time.Minute)
	pair, err := ti.Issue(testClaims())
	require.NoError(t, err)

	_, err = ti.VerifyAccess(pair.AccessToken)
	assert.Error(t, err)
}

func TestRefreshTokensNeverCollide(t *testing.T) {
	ti := testIssuer()
	in := testClaims()

	a, err := ti.Issue(in)
	require.NoError(t, err)
	b, err := ti.Issue(in)
	require.NoError(t, err)

	// jti keeps two issuances for identical claims distinct.
	assert.NotEqual(t, a.RefreshToken, b.RefreshToken)
	assert.NotEqual(t, ti.RefreshHash(a.RefreshToken), ti.RefreshHash(b.RefreshToken))
}

func TestRefreshHashIsDeterministic(t *testing.T) {
	ti := testIssuer()
	pair, err := ti.Issue(testClaims())
	require.NoError(t, err)

	assert.Equal(t, ti.RefreshHash(pair.RefreshToken), ti.RefreshHash(pair.RefreshToken))
	assert.Len(t, ti.RefreshHash(pair.RefreshToken), 32)
}
