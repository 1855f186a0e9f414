package repo

import (
	"context"

	"shop-backend/internal/models"
)

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *GormRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *GormRepo) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.DB.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormRepo) SaveUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Save(user).Error
}

// DeleteUser removes the credential first so a crash in between never leaves
// a credential pointing at a missing user.
func (r *GormRepo) DeleteUser(ctx context.Context, id uint) error {
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", id).
		Delete(&models.Credential{}).Error; err != nil {
		return err
	}

	res := r.DB.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) CreateCredential(ctx context.Context, cred *models.Credential) error {
	return r.DB.WithContext(ctx).Create(cred).Error
}

func (r *GormRepo) GetCredentialByUserID(ctx context.Context, userID uint) (*models.Credential, error) {
	var cred models.Credential
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&cred).Error; err != nil {
		return nil, notFound(err)
	}
	return &cred, nil
}
