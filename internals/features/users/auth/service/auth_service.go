// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/constants"
	authModel "kampusku_backend/internals/features/users/auth/model"
	userModel "kampusku_backend/internals/features/users/user/model"
	"kampusku_backend/internals/mailer"
)

/* ==========================
   Store contracts
========================== */

// UserStore is the narrow persistence surface the auth service mutates
// users through. Email lookups are case-insensitive.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*userModel.UserModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error)
	FindByGoogleID(ctx context.Context, googleID string) (*userModel.UserModel, error)
	Create(ctx context.Context, u *userModel.UserModel) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// SessionStore holds outstanding refresh tokens keyed by token hash.
// Consume must be atomic relative to concurrent consumes of the same hash:
// exactly one caller gets the row, the rest get gorm.ErrRecordNotFound.
type SessionStore interface {
	Create(ctx context.Context, s *authModel.RefreshToken) error
	Consume(ctx context.Context, tokenHash []byte) (*authModel.RefreshToken, error)
	Delete(ctx context.Context, tokenHash []byte) error
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ResetStore holds one-time password-reset grants, same consume semantics.
type ResetStore interface {
	Create(ctx context.Context, r *authModel.PasswordReset) error
	Consume(ctx context.Context, tokenHash []byte) (*authModel.PasswordReset, error)
}

/* ==========================
   Service
========================== */

type AuthService struct {
	Users    UserStore
	Sessions SessionStore
	Resets   ResetStore
	Hasher   PasswordHasher
	Tokens   *TokenIssuer
	Mail     mailer.Mailer

	// ResetTTL bounds the lifetime of password-reset grants. Zero falls
	// back to the configured default.
	ResetTTL time.Duration
}

func (s *AuthService) resetTTL() time.Duration {
	if s.ResetTTL > 0 {
		return s.ResetTTL
	}
	return configs.ResetTokenTTL
}

// AuthResult is what login/register/google-login hand back to controllers.
type AuthResult struct {
	User   *userModel.UserModel
	Tokens TokenPair
}

func nowUTC() time.Time { return time.Now().UTC() }

func isDuplicateErr(err error) bool {
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}

/* ==========================
   REGISTER
========================== */

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     constants.Role
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	role := in.Role
	if role == "" {
		role = constants.DefaultRole
	}
	if !constants.IsValidRole(role) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid role")
	}

	hash, err := s.Hasher.Hash(in.Password, CostInteractive())
	if err != nil {
		return nil, err
	}

	user := &userModel.UserModel{
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: hash,
		FullName: strings.TrimSpace(in.FullName),
		Role:     role,
		IsActive: true,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		if isDuplicateErr(err) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Email already registered")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	// Welcome mail is a side channel; its failure never fails registration.
	if err := s.Mail.SendWelcome(user.Email); err != nil {
		log.Printf("[WARN] welcome mail to %s failed: %v", user.Email, err)
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Tokens: pair}, nil
}

/* ==========================
   LOGIN
========================== */

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.Users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Identical message for unknown email and wrong password.
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account deactivated")
	}
	if !s.Hasher.Compare(user.Password, password) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	now := nowUTC()
	if err := s.Users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		log.Printf("[WARN] update last_login for %s failed: %v", user.ID, err)
	}
	user.LastLoginAt = &now

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Tokens: pair}, nil
}

/* ==========================
   LOGIN GOOGLE
========================== */

// LoginGoogle is called after the controller has verified the Google ID
// token. First sight auto-provisions a student account with an unusable
// random credential.
func (s *AuthService) LoginGoogle(ctx context.Context, email, name, googleID string) (*AuthResult, error) {
	user, err := s.Users.FindByGoogleID(ctx, googleID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
		}
		hash, herr := s.Hasher.Hash(randomToken(), CostBulk())
		if herr != nil {
			return nil, herr
		}
		user = &userModel.UserModel{
			Email:         strings.ToLower(strings.TrimSpace(email)),
			Password:      hash,
			FullName:      strings.TrimSpace(name),
			Role:          constants.DefaultRole,
			GoogleID:      &googleID,
			IsActive:      true,
			EmailVerified: true, // asserted by Google
		}
		if cerr := s.Users.Create(ctx, user); cerr != nil {
			if isDuplicateErr(cerr) {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Email already registered")
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
		}
	}
	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account deactivated")
	}

	now := nowUTC()
	if err := s.Users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		log.Printf("[WARN] update last_login for %s failed: %v", user.ID, err)
	}
	user.LastLoginAt = &now

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Tokens: pair}, nil
}

/* ==========================
   REFRESH (rotation)
========================== */

// Refresh consumes a refresh token and issues a replacement pair. The
// consumed row is deleted before the new pair exists, so presenting the
// same token twice can never succeed twice: signature check → atomic
// consume → row expiry check. Every failure mode surfaces the same error.
func (s *AuthService) Refresh(ctx context.Context, raw string) (*AuthResult, error) {
	invalid := fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")

	if strings.TrimSpace(raw) == "" {
		return nil, invalid
	}
	if _, err := s.Tokens.VerifyRefresh(raw); err != nil {
		return nil, invalid
	}

	row, err := s.Sessions.Consume(ctx, s.Tokens.RefreshHash(raw))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to look up session")
	}
	// Stored expiry is checked on top of the JWT exp; an expired row reads
	// the same as a missing one from the outside.
	if !row.ExpiresAt.After(nowUTC()) {
		return nil, invalid
	}

	user, err := s.Users.FindByID(ctx, row.UserID)
	if err != nil {
		return nil, invalid
	}
	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account deactivated")
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Tokens: pair}, nil
}

/* ==========================
   LOGOUT
========================== */

// Logout revokes one session. Deleting zero rows is not an error.
func (s *AuthService) Logout(ctx context.Context, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if err := s.Sessions.Delete(ctx, s.Tokens.RefreshHash(raw)); err != nil {
		log.Printf("[WARN] logout delete session failed: %v", err)
	}
	return nil
}

// LogoutAll revokes every outstanding session for the user.
func (s *AuthService) LogoutAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.Sessions.DeleteAllForUser(ctx, userID)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to revoke sessions")
	}
	return n, nil
}

/* ==========================
   CHANGE PASSWORD
========================== */

// ChangePassword rehashes at the interactive cost and revokes every
// outstanding session the moment the credential changes.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword string) error {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}
	if !s.Hasher.Compare(user.Password, current) {
		return fiber.NewError(fiber.StatusUnauthorized, "Current password incorrect")
	}

	hash, err := s.Hasher.Hash(newPassword, CostInteractive())
	if err != nil {
		return err
	}
	if err := s.Users.UpdatePassword(ctx, userID, hash); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update password")
	}
	if _, err := s.Sessions.DeleteAllForUser(ctx, userID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to revoke sessions")
	}
	return nil
}

/* ==========================
   FORGOT / RESET PASSWORD
========================== */

// ForgotPassword always reports success to the caller; whether the email
// exists is never disclosed. When it does, a one-time reset token with a
// short TTL is persisted (hashed) and dispatched out-of-band.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.Users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WARN] forgot-password lookup failed: %v", err)
		}
		return nil
	}

	token := randomToken()
	reset := &authModel.PasswordReset{
		UserID:    user.ID,
		TokenHash: resetHash(token),
		ExpiresAt: nowUTC().Add(s.resetTTL()),
	}
	if err := s.Resets.Create(ctx, reset); err != nil {
		log.Printf("[WARN] persist reset token failed: %v", err)
		return nil
	}
	if err := s.Mail.SendPasswordReset(user.Email, token); err != nil {
		log.Printf("[WARN] reset mail to %s failed: %v", user.Email, err)
	}
	return nil
}

// ResetPassword consumes a reset token (one-time), rehashes, and revokes
// all sessions.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	invalid := fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired reset token")

	row, err := s.Resets.Consume(ctx, resetHash(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalid
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up reset token")
	}
	if !row.ExpiresAt.After(nowUTC()) {
		return invalid
	}

	hash, err := s.Hasher.Hash(newPassword, CostInteractive())
	if err != nil {
		return err
	}
	if err := s.Users.UpdatePassword(ctx, row.UserID, hash); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update password")
	}
	if _, err := s.Sessions.DeleteAllForUser(ctx, row.UserID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to revoke sessions")
	}
	return nil
}

/* ==========================
   ISSUE TOKENS
========================== */

func (s *AuthService) issueTokens(ctx context.Context, user *userModel.UserModel) (TokenPair, error) {
	pair, err := s.Tokens.Issue(TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return TokenPair{}, err
	}

	if err := s.Sessions.Create(ctx, &authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: s.Tokens.RefreshHash(pair.RefreshToken),
		ExpiresAt: pair.RefreshExpiresAt,
	}); err != nil {
		return TokenPair{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to store refresh token")
	}
	return pair, nil
}

/* ==========================
   UTIL
========================== */

func randomToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func resetHash(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}
