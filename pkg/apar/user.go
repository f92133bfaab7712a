package apar

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/apar-inspection-service/pkg/auth"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

// validateUser normalises input in place. On update an empty password keeps
// the stored hash.
func (a *APAR) validateUser(ctx context.Context, selfID uint, input *models.UserInput, requirePassword bool) error {
	verr := NewValidationError()

	validateText(verr, "name", &input.Name)

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	collect(verr, "email", emailSchema.Validate(&input.Email))

	if requirePassword || input.Password != "" {
		collect(verr, "password", passwordSchema.Validate(&input.Password))
	}

	role := string(input.Role)
	collect(verr, "role", roleSchema.Validate(&role))

	if _, bad := verr.Fields["email"]; !bad {
		var taken int64
		err := a.Db.Conn.WithContext(ctx).
			Model(&models.User{}).
			Where("email = ? AND id <> ?", input.Email, selfID).
			Count(&taken).Error
		if err != nil {
			return fmt.Errorf("check user email: %w", err)
		}
		if taken > 0 {
			verr.Add("email", "has already been taken")
		}
	}

	return verr.OrNil()
}

func duplicateEmail(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fieldError("email", "has already been taken")
	}
	return err
}

func (a *APAR) createUser(ctx context.Context, actor models.Actor, input models.UserInput) (*models.User, error) {
	logger := common.GetCategoryLogger(common.LoggerNameAparCore, common.LoggerCategoryUser)

	if err := a.validateUser(ctx, 0, &input, true); err != nil {
		logger.Info("Rejected user", zap.Uint("actor", actor.ID), zap.Error(err))
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
	}
	if err := a.Db.Conn.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, duplicateEmail(err)
	}

	logger.Info("Created user", zap.Uint("actor", actor.ID), zap.Uint("id", user.ID), zap.String("role", string(user.Role)))
	return &user, nil
}

func (a *APAR) updateUser(ctx context.Context, actor models.Actor, id uint, input models.UserInput) (*models.User, error) {
	logger := common.GetCategoryLogger(common.LoggerNameAparCore, common.LoggerCategoryUser)

	user, err := a.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.validateUser(ctx, id, &input, false); err != nil {
		logger.Info("Rejected user update", zap.Uint("actor", actor.ID), zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Role = input.Role
	if input.Password != "" {
		if user.PasswordHash, err = auth.HashPassword(input.Password); err != nil {
			return nil, err
		}
	}

	if err := a.Db.Conn.WithContext(ctx).Save(user).Error; err != nil {
		return nil, duplicateEmail(err)
	}

	logger.Info("Updated user", zap.Uint("actor", actor.ID), zap.Uint("id", id))
	return user, nil
}

// deleteUser refuses to remove the caller or anyone who has recorded
// inspections; inspections reference their inspector, they do not belong to
// them.
func (a *APAR) deleteUser(ctx context.Context, actor models.Actor, id uint) error {
	logger := common.GetCategoryLogger(common.LoggerNameAparCore, common.LoggerCategoryUser)

	if actor.ID == id {
		return fieldError("id", "cannot delete your own account")
	}

	err := a.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return notFound("user", id, err)
		}

		var inspections int64
		if err := tx.Model(&models.Inspection{}).Where("inspector_id = ?", id).Count(&inspections).Error; err != nil {
			return err
		}
		if inspections > 0 {
			return fieldError("id", fmt.Sprintf("user has %d recorded inspections", inspections))
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		if IsNotFound(err) || IsValidation(err) {
			return err
		}
		return &TransactionError{Op: "delete user", Err: err}
	}

	logger.Info("Deleted user", zap.Uint("actor", actor.ID), zap.Uint("id", id))
	return nil
}

func (a *APAR) getUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := a.Db.Conn.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound("user", id, err)
	}
	return &user, nil
}

func (a *APAR) listUsers(ctx context.Context, opts models.ListOptions) (models.Page[models.User], error) {
	return listPage[models.User](
		a.Db.Conn.WithContext(ctx).Model(&models.User{}),
		opts,
		func(q *gorm.DB) *gorm.DB { return q.Order("created_at DESC, id DESC") },
	)
}

func (a *APAR) authenticate(ctx context.Context, email, password string) (*models.User, error) {
	logger := common.GetCategoryLogger(common.LoggerNameAparCore, common.LoggerCategoryUser)

	var user models.User
	err := a.Db.Conn.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Info("Login failed", zap.String("reason", "unknown email"))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		logger.Info("Login failed", zap.Uint("id", user.ID), zap.String("reason", "password mismatch"))
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (a *APAR) countUsers(ctx context.Context) (int64, error) {
	var n int64
	err := a.Db.Conn.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}

type IUserImpl struct {
	apar *APAR
}

func (iu *IUserImpl) Create(ctx context.Context, actor models.Actor, input models.UserInput) (*models.User, error) {
	return iu.apar.createUser(ctx, actor, input)
}

func (iu *IUserImpl) Update(ctx context.Context, actor models.Actor, id uint, input models.UserInput) (*models.User, error) {
	return iu.apar.updateUser(ctx, actor, id, input)
}

func (iu *IUserImpl) Delete(ctx context.Context, actor models.Actor, id uint) error {
	return iu.apar.deleteUser(ctx, actor, id)
}

func (iu *IUserImpl) Get(ctx context.Context, id uint) (*models.User, error) {
	return iu.apar.getUser(ctx, id)
}

func (iu *IUserImpl) List(ctx context.Context, opts models.ListOptions) (models.Page[models.User], error) {
	return iu.apar.listUsers(ctx, opts)
}

func (iu *IUserImpl) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	return iu.apar.authenticate(ctx, email, password)
}

func (iu *IUserImpl) Count(ctx context.Context) (int64, error) {
	return iu.apar.countUsers(ctx)
}

func (a *APAR) GetIUser() IUser {
	return &IUserImpl{apar: a}
}
