// file: internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "kampusku_backend/internals/features/users/auth/model"
	userModel "kampusku_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.DB.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByGoogleID(ctx context.Context, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.DB.WithContext(ctx).Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, u *userModel.UserModel) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.DB.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("id = ?", id).
		Update("password", hash).Error
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.DB.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}

/* ====================== REFRESH TOKEN ====================== */

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *authModel.RefreshToken) error {
	return r.DB.WithContext(ctx).Create(s).Error
}

// Consume deletes the row and returns it in one statement
// (DELETE .. RETURNING). Two concurrent consumes of the same hash race on
// the row lock; exactly one sees RowsAffected == 1.
func (r *SessionRepository) Consume(ctx context.Context, tokenHash []byte) (*authModel.RefreshToken, error) {
	var rt authModel.RefreshToken
	res := r.DB.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("token_hash = ?", tokenHash).
		Delete(&rt)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rt, nil
}

func (r *SessionRepository) Delete(ctx context.Context, tokenHash []byte) error {
	return r.DB.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&authModel.RefreshToken{}).Error
}

func (r *SessionRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&authModel.RefreshToken{})
	return res.RowsAffected, res.Error
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("expires_at <= ?", before).
		Delete(&authModel.RefreshToken{})
	return res.RowsAffected, res.Error
}

/* ====================== PASSWORD RESET ====================== */

type ResetRepository struct {
	DB *gorm.DB
}

func NewResetRepository(db *gorm.DB) *ResetRepository {
	return &ResetRepository{DB: db}
}

func (r *ResetRepository) Create(ctx context.Context, reset *authModel.PasswordReset) error {
	return r.DB.WithContext(ctx).Create(reset).Error
}

func (r *ResetRepository) Consume(ctx context.Context, tokenHash []byte) (*authModel.PasswordReset, error) {
	var pr authModel.PasswordReset
	res := r.DB.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("token_hash = ?", tokenHash).
		Delete(&pr)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &pr, nil
}

func (r *ResetRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("expires_at <= ?", before).
		Delete(&authModel.PasswordReset{})
	return res.RowsAffected, res.Error
}
