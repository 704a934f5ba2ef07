// file: internals/features/users/auth/service/auth_service_test.go
package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	authModel "kampusku_backend/internals/features/users/auth/model"
	userModel "kampusku_backend/internals/features/users/user/model"
	"kampusku_backend/internals/mailer"
)

/* ==========================
   In-memory fakes
========================== */

type fakeUserStore struct {
	byID map[uuid.UUID]*userModel.UserModel
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byID: map[uuid.UUID]*userModel.UserModel{}}
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*userModel.UserModel, error) {
	for _, u := range f.byID {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) FindByGoogleID(_ context.Context, googleID string) (*userModel.UserModel, error) {
	for _, u := range f.byID {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) Create(_ context.Context, u *userModel.UserModel) error {
	for _, existing := range f.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			return &duplicateErr{}
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Password = hash
	return nil
}

func (f *fakeUserStore) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	u, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.LastLoginAt = &at
	return nil
}

type duplicateErr struct{}

func (*duplicateErr) Error() string { return `duplicate key value violates unique constraint` }

type fakeSessionStore struct {
	rows map[string]*authModel.RefreshToken
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{rows: map[string]*authModel.RefreshToken{}}
}

func (f *fakeSessionStore) Create(_ context.Context, s *authModel.RefreshToken) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	f.rows[string(s.TokenHash)] = &cp
	return nil
}

func (f *fakeSessionStore) Consume(_ context.Context, tokenHash []byte) (*authModel.RefreshToken, error) {
	row, ok := f.rows[string(tokenHash)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(f.rows, string(tokenHash))
	return row, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, tokenHash []byte) error {
	delete(f.rows, string(tokenHash))
	return nil
}

func (f *fakeSessionStore) DeleteAllForUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for k, row := range f.rows {
		if row.UserID == userID {
			delete(f.rows, k)
			n++
		}
	}
	return n, nil
}

type fakeResetStore struct {
	rows map[string]*authModel.PasswordReset
}

func newFakeResetStore() *fakeResetStore {
	return &fakeResetStore{rows: map[string]*authModel.PasswordReset{}}
}

func (f *fakeResetStore) Create(_ context.Context, r *authModel.PasswordReset) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	cp := *r
	f.rows[string(r.TokenHash)] = &cp
	return nil
}

func (f *fakeResetStore) Consume(_ context.Context, tokenHash []byte) (*authModel.PasswordReset, error) {
	row, ok := f.rows[string(tokenHash)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(f.rows, string(tokenHash))
	return row, nil
}

type captureMailer struct {
	welcomes    []string
	resetEmails []string
	resetTokens []string
}

func (m *captureMailer) SendWelcome(email string) error {
	m.welcomes = append(m.welcomes, email)
	return nil
}

func (m *captureMailer) SendPasswordReset(email, token string) error {
	m.resetEmails = append(m.resetEmails, email)
	m.resetTokens = append(m.resetTokens, token)
	return nil
}

var _ mailer.Mailer = (*captureMailer)(nil)

/* ==========================
   Harness
========================== */

type authFixture struct {
	svc      *AuthService
	users    *fakeUserStore
	sessions *fakeSessionStore
	resets   *fakeResetStore
	mail     *captureMailer
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		users:    newFakeUserStore(),
		sessions: newFakeSessionStore(),
		resets:   newFakeResetStore(),
		mail:     &captureMailer{},
	}
	f.svc = &AuthService{
		Users:    f.users,
		Sessions: f.sessions,
		Resets:   f.resets,
		Hasher:   BcryptHasher{},
		Tokens:   NewTokenIssuer("test-access-secret", "test-refresh-secret", time.Hour, 24*time.Hour),
		Mail:     f.mail,
		ResetTTL: 30 * time.Minute,
	}
	return f
}

func (f *authFixture) register(t *testing.T, email, password string) *AuthResult {
	t.Helper()
	res, err := f.svc.Register(context.Background(), RegisterInput{
		Email:    email,
		Password: password,
		FullName: "Test User",
	})
	require.NoError(t, err)
	return res
}

func fiberCode(t *testing.T, err error) (int, string) {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code, fe.Message
}

/* ==========================
   Register
========================== */

func TestRegisterDefaultsToStudentRole(t *testing.T) {
	f := newAuthFixture(t)
	res := f.register(t, "alice@campus.edu", "s3cret-pass")

	assert.Equal(t, constants.RoleStudent, res.User.Role)
	assert.True(t, res.User.IsActive)
	assert.NotEmpty(t, res.Tokens.AccessToken)
	assert.NotEmpty(t, res.Tokens.RefreshToken)
	assert.Equal(t, []string{"alice@campus.edu"}, f.mail.welcomes)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.svc.Register(context.Background(), RegisterInput{
		Email:    "bob@campus.edu",
		Password: "s3cret-pass",
		Role:     constants.Role("WIZARD"),
	})
	code, _ := fiberCode(t, err)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "alice@campus.edu", "s3cret-pass")

	_, err := f.svc.Register(context.Background(), RegisterInput{
		Email:    "Alice@campus.edu",
		Password: "other-pass",
	})
	code, msg := fiberCode(t, err)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Email already registered", msg)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	f := newAuthFixture(t)
	res := f.register(t, "alice@campus.edu", "s3cret-pass")

	stored := f.users.byID[res.User.ID]
	assert.NotEqual(t, "s3cret-pass", stored.Password)
	assert.True(t, BcryptHasher{}.Compare(stored.Password, "s3cret-pass"))
}

/* ==========================
   Login
========================== */

func TestLoginSuccess(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "alice@campus.edu", "s3cret-pass")

	res, err := f.svc.Login(context.Background(), "alice@campus.edu", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Tokens.AccessToken)
	assert.NotNil(t, res.User.LastLoginAt)
}

func TestLoginUnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "alice@campus.edu", "s3cret-pass")

	_, errUnknown := f.svc.Login(context.Background(), "nobody@campus.edu", "whatever")
	_, errWrongPw := f.svc.Login(context.Background(), "alice@campus.edu", "wrong-pass")

	codeA, msgA := fiberCode(t, errUnknown)
	codeB, msgB := fiberCode(t, errWrongPw)
	assert.Equal(t, fiber.StatusUnauthorized, codeA)
	assert.Equal(t, codeA, codeB)
	assert.Equal(t, msgA, msgB)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	f := newAuthFixture(t)
	res := f.register(t, "alice@campus.edu", "s3cret-pass")
	f.users.byID[res.User.ID].IsActive = false

	_, err := f.svc.Login(context.Background(), "alice@campus.edu", "s3cret-pass")
	code, msg := fiberCode(t, err)
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "Account deactivated", msg)
}

/* ==========================
   Google login
========================== */

func TestLoginGoogleAutoProvisions(t *testing.T) {
	f := newAuthFixture(t)

	res, err := f.svc.LoginGoogle(context.Background(), "carol@campus.edu", "Carol", "google-123")
	require.NoError(t, err)
	assert.Equal(t, constants.RoleStudent, res.User.Role)
	assert.True(t, res.User.EmailVerified)

	// Second sight reuses the same account.
	again, err := f.svc.LoginGoogle(context.Background(), "carol@campus.edu", "Carol", "google-123")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, again.User.ID)
	assert.Len(t, f.users.byID, 1)
}

/* ==========================
   Refresh rotation
========================== */

func TestRefreshRotatesAndRejectsReplay(t *testing.T) {
	f := newAuthFixture(t)
	first := f.register(t, "alice@campus.edu", "s3cret-pass")

	second, err := f.svc.Refresh(context.Background(), first.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.Tokens.RefreshToken, second.Tokens.RefreshToken)

	// The consumed token is gone; replaying it fails.
	_, err = f.svc.Refresh(context.Background(), first.Tokens.RefreshToken)
	code, msg := fiberCode(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, "Invalid refresh token", msg)

	// The replacement still works.
	_, err = f.svc.Refresh(context.Background(), second.Tokens.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshRejectsGarbageAndAccessTokens(t *testing.T) {
	f := newAuthFixture(t)
	res := f.register(t, "alice@campus.edu", "s3cret-pass")

	for _, raw := range []string{"", "not-a-jwt", res.Tokens.AccessToken} {
		_, err := f.svc.Refresh(context.Background(), raw)
		code, msg := fiberCode(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, code)
		assert.Equal(t, "Invalid refresh token", msg)
	}
}

func TestRefreshRejectsExpiredStoredRow(t *testing.T) {
	f := newAuthFixture(t)
	res := f.register(t, "alice@campus.edu", "s3cret-pass")

	hash := f.svc.Tokens.RefreshHash(res.Tokens.RefreshToken)
	f.sessions.rows[string(hash)].ExpiresAt = time.Now().UTC().Add(-time.Minute)

	_, err := f.svc.Refresh(context.Background(), res.Tokens.RefreshToken)
	code, _ := fiberCode(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

/* ==========================
   Logout
========================== */

func TestLogoutIsIdempotent(t *testing.T) {
	f := newAuthFixture(t)
	res := f.register(t, "alice@campus.edu", "s3cret-pass")

	require.NoError(t, f.svc.Logout(context.Background(), res.Tokens.RefreshToken))
	require.NoError(t, f.svc.Logout(context.Background(), res.Tokens.RefreshToken))
	require.NoError(t, f.svc.Logout(context.Background(), ""))

	_, err := f.svc.Refresh(context.Background(), res.Tokens.RefreshToken)
	code, _ := fiberCode(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestLogoutAllRevokesEverySession(t *testing.T) {
	f := newAuthFixture(t)
	res := f.register(t, "alice@campus.edu", "s3cret-pass")

	login2, err := f.svc.Login(context.Background(), "alice@campus.edu", "s3cret-pass")
	require.NoError(t, err)
	login3, err := f.svc.Login(context.Background(), "alice@campus.edu", "s3cret-pass")
	require.NoError(t, err)

	n, err := f.svc.LogoutAll(context.Background(), res.User.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	for _, raw := range []string{res.Tokens.RefreshToken, login2.Tokens.RefreshToken, login3.Tokens.RefreshToken} {
		_, err := f.svc.Refresh(context.Background(), raw)
		code, _ := fiberCode(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, code)
	}
}

/* ==========================
   Change password
========================== */

func TestChangePasswordRevokesSessions(t *testing.T) {
	f := newAuthFixture(t)
	res := f.register(t, "alice@campus.edu", "s3cret-pass")

	err := f.svc.ChangePassword(context.Background(), res.User.ID, "s3cret-pass", "brand-new-pass")
	require.NoError(t, err)

	// Old refresh token no longer works.
	_, err = f.svc.Refresh(context.Background(), res.Tokens.RefreshToken)
	code, _ := fiberCode(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	// Old password no longer logs in, new one does.
	_, err = f.svc.Login(context.Background(), "alice@campus.edu", "s3cret-pass")
	require.Error(t, err)
	_, err = f.svc.Login(context.Background(), "alice@campus.edu", "brand-new-pass")
	require.NoError(t, err)
}

func TestChangePasswordRejectsWrongCurrent(t *testing.T) {
	f := newAuthFixture(t)
	res := f.register(t, "alice@campus.edu", "s3cret-pass")

	err := f.svc.ChangePassword(context.Background(), res.User.ID, "wrong-current", "brand-new-pass")
	code, _ := fiberCode(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

/* ==========================
   Forgot / reset password
========================== */

func TestForgotPasswordNeverDisclosesExistence(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "alice@campus.edu", "s3cret-pass")

	require.NoError(t, f.svc.ForgotPassword(context.Background(), "alice@campus.edu"))
	require.NoError(t, f.svc.ForgotPassword(context.Background(), "nobody@campus.edu"))

	// A token was only minted for the real account.
	assert.Equal(t, []string{"alice@campus.edu"}, f.mail.resetEmails)
	assert.Len(t, f.resets.rows, 1)
}

func TestResetPasswordIsOneTime(t *testing.T) {
	f := newAuthFixture(t)
	res := f.register(t, "alice@campus.edu", "s3cret-pass")
	require.NoError(t, f.svc.ForgotPassword(context.Background(), "alice@campus.edu"))
	token := f.mail.resetTokens[0]

	require.NoError(t, f.svc.ResetPassword(context.Background(), token, "after-reset-pass"))

	// Credential changed and every session died with it.
	_, err := f.svc.Login(context.Background(), "alice@campus.edu", "after-reset-pass")
	require.NoError(t, err)
	_, err = f.svc.Refresh(context.Background(), res.Tokens.RefreshToken)
	require.Error(t, err)

	// Same token a second time fails.
	err = f.svc.ResetPassword(context.Background(), token, "yet-another-pass")
	code, msg := fiberCode(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, "Invalid or expired reset token", msg)
}

func TestForgotPasswordTokenUsableWithoutEnvConfig(t *testing.T) {
	// Zero ResetTTL falls back to the configured default; a freshly minted
	// token must never be born expired.
	f := newAuthFixture(t)
	f.svc.ResetTTL = 0
	f.register(t, "alice@campus.edu", "s3cret-pass")

	require.NoError(t, f.svc.ForgotPassword(context.Background(), "alice@campus.edu"))
	for _, row := range f.resets.rows {
		assert.True(t, row.ExpiresAt.After(time.Now().UTC()))
	}

	require.NoError(t, f.svc.ResetPassword(context.Background(), f.mail.resetTokens[0], "after-reset-pass"))
}

func TestForgotPasswordHonoursInjectedTTL(t *testing.T) {
	f := newAuthFixture(t)
	f.svc.ResetTTL = 2 * time.Hour
	f.register(t, "alice@campus.edu", "s3cret-pass")

	before := time.Now().UTC()
	require.NoError(t, f.svc.ForgotPassword(context.Background(), "alice@campus.edu"))
	for _, row := range f.resets.rows {
		assert.True(t, row.ExpiresAt.After(before.Add(90*time.Minute)))
		assert.True(t, row.ExpiresAt.Before(before.Add(3*time.Hour)))
	}
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "alice@campus.edu", "s3cret-pass")
	require.NoError(t, f.svc.ForgotPassword(context.Background(), "alice@campus.edu"))
	token := f.mail.resetTokens[0]

	for _, row := range f.resets.rows {
		row.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	}

	err := f.svc.ResetPassword(context.Background(), token, "after-reset-pass")
	code, _ := fiberCode(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}
