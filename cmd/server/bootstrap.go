package main

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"liyu1981.xyz/apar-inspection-service/pkg/apar"
	"liyu1981.xyz/apar-inspection-service/pkg/auth"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

// bootstrapAdmin makes sure an admin exists. When one has to be created
// without a configured password, the generated password is returned so it
// can be shown once.
func bootstrapAdmin(ctx context.Context, a *apar.APAR, cfg *Config) (*models.User, string, error) {
	var existing models.User
	err := a.Db.Conn.WithContext(ctx).
		Where("role = ?", models.RoleAdmin).
		Order("id ASC").
		First(&existing).Error
	if err == nil {
		return &existing, "", nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	password, generated := cfg.AdminPassword, ""
	if password == "" {
		if password, err = auth.GeneratePassword(); err != nil {
			return nil, "", err
		}
		generated = password
	}

	user, err := a.User.Create(ctx, models.Actor{Role: models.RoleAdmin}, models.UserInput{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: password,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		return nil, "", err
	}
	return user, generated, nil
}
