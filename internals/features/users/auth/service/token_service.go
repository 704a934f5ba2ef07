// file: internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/constants"
)

/* ==========================
   Token Issuer
========================== */

// TokenClaims is the identity assertion embedded in every token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
	Role   constants.Role
}

// TokenPair is the result of one issuance. The refresh token is also
// persisted (hashed) in the session store by the caller.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// TokenIssuer mints and verifies HS256 access/refresh JWTs with distinct
// secrets. Refresh claims carry a fresh jti so two issuances for the same
// payload never collide.
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func NewTokenIssuerFromEnv() *TokenIssuer {
	return NewTokenIssuer(
		configs.JWTSecret,
		configs.JWTRefreshSecret,
		configs.AccessTokenTTL,
		configs.RefreshTokenTTL,
	)
}

func (ti *TokenIssuer) Issue(u TokenClaims) (TokenPair, error) {
	now := time.Now().UTC()
	refreshExp := now.Add(ti.refreshTTL)

	accessClaims := jwt.MapClaims{
		"typ":   "access",
		"sub":   u.UserID.String(),
		"email": u.Email,
		"role":  u.Role.String(),
		"iat":   now.Unix(),
		"exp":   now.Add(ti.accessTTL).Unix(),
	}
	refreshClaims := jwt.MapClaims{
		"typ":   "refresh",
		"sub":   u.UserID.String(),
		"email": u.Email,
		"role":  u.Role.String(),
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   refreshExp.Unix(),
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(ti.accessSecret)
	if err != nil {
		return TokenPair{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to sign access token")
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(ti.refreshSecret)
	if err != nil {
		return TokenPair{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to sign refresh token")
	}

	return TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (ti *TokenIssuer) VerifyAccess(raw string) (*TokenClaims, error) {
	return ti.verify(raw, ti.accessSecret, "access")
}

func (ti *TokenIssuer) VerifyRefresh(raw string) (*TokenClaims, error) {
	return ti.verify(raw, ti.refreshSecret, "refresh")
}

func (ti *TokenIssuer) verify(raw string, secret []byte, wantTyp string) (*TokenClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	if typ, _ := claims["typ"].(string); typ != wantTyp {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   constants.Role(role),
	}, nil
}

// RefreshHash derives the session-store lookup key: HMAC-SHA256 of the
// signed refresh string keyed by the refresh secret. Plaintext tokens are
// never stored.
func (ti *TokenIssuer) RefreshHash(raw string) []byte {
	m := hmac.New(sha256.New, ti.refreshSecret)
	_, _ = m.Write([]byte(raw))
	return m.Sum(nil)
}
