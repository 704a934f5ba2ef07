// file: internals/features/users/user/repository/user_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	authModel "kampusku_backend/internals/features/users/auth/model"
	userModel "kampusku_backend/internals/features/users/user/model"
)

type UserAdminRepository struct {
	DB *gorm.DB
}

func NewUserAdminRepository(db *gorm.DB) *UserAdminRepository {
	return &UserAdminRepository{DB: db}
}

func (r *UserAdminRepository) List(ctx context.Context, offset, limit int) ([]userModel.UserModel, int64, error) {
	var users []userModel.UserModel
	var total int64

	if err := r.DB.WithContext(ctx).Model(&userModel.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserAdminRepository) Get(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserAdminRepository) UpdateRole(ctx context.Context, id uuid.UUID, role constants.Role) error {
	res := r.DB.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("id = ?", id).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserAdminRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := r.DB.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAccount removes the user plus dependent sessions in one
// transaction. Profile rows (students, faculty) cascade on user_id FKs.
func (r *UserAdminRepository) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&authModel.RefreshToken{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&authModel.PasswordReset{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&userModel.UserModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
