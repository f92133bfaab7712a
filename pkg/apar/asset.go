package apar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

type assetDates struct {
	fill   time.Time
	expiry time.Time
}

// validateAsset normalises input in place. selfID excludes the asset being
// updated from the number uniqueness check.
func (a *APAR) validateAsset(ctx context.Context, selfID uint, input *models.AparInput) (assetDates, error) {
	verr := NewValidationError()

	validateText(verr, "number", &input.Number)
	validateText(verr, "location", &input.Location)
	validateText(verr, "capacity", &input.Capacity)

	aparType := string(input.Type)
	collect(verr, "type", aparTypeSchema.Validate(&aparType))

	if input.Status == "" {
		input.Status = models.AparStatusActive
	}
	status := string(input.Status)
	collect(verr, "status", aparStatusSchema.Validate(&status))

	var dates assetDates
	var fillOK, expiryOK bool
	dates.fill, fillOK = validateDate(verr, "fill_date", input.FillDate)
	dates.expiry, expiryOK = validateDate(verr, "expiry_date", input.ExpiryDate)
	if fillOK && expiryOK && !dates.expiry.After(dates.fill) {
		verr.Add("expiry_date", "must be a date after fill_date")
	}

	input.Notes = optionalText(input.Notes)

	if _, bad := verr.Fields["number"]; !bad {
		var taken int64
		err := a.Db.Conn.WithContext(ctx).
			Model(&models.Apar{}).
			Where("number = ? AND id <> ?", input.Number, selfID).
			Count(&taken).Error
		if err != nil {
			return dates, fmt.Errorf("check apar number: %w", err)
		}
		if taken > 0 {
			verr.Add("number", "has already been taken")
		}
	}

	return dates, verr.OrNil()
}

func applyAssetInput(asset *models.Apar, input models.AparInput, dates assetDates) {
	asset.Number = input.Number
	asset.Location = input.Location
	asset.Type = input.Type
	asset.Capacity = input.Capacity
	asset.FillDate = models.DateOf(dates.fill)
	asset.ExpiryDate = models.DateOf(dates.expiry)
	asset.Status = input.Status
	asset.Notes = input.Notes
}

func duplicateNumber(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fieldError("number", "has already been taken")
	}
	return err
}

func (a *APAR) createAsset(ctx context.Context, actor models.Actor, input models.AparInput) (*models.Apar, error) {
	logger := common.GetCategoryLogger(common.LoggerNameAparCore, common.LoggerCategoryAsset)

	dates, err := a.validateAsset(ctx, 0, &input)
	if err != nil {
		logger.Info("Rejected asset", zap.Uint("actor", actor.ID), zap.Error(err))
		return nil, err
	}

	var asset models.Apar
	applyAssetInput(&asset, input, dates)

	if err := a.Db.Conn.WithContext(ctx).Create(&asset).Error; err != nil {
		return nil, duplicateNumber(err)
	}

	logger.Info("Created asset", zap.Uint("actor", actor.ID), zap.Reflect("apar", asset))
	return &asset, nil
}

func (a *APAR) updateAsset(ctx context.Context, actor models.Actor, id uint, input models.AparInput) (*models.Apar, error) {
	logger := common.GetCategoryLogger(common.LoggerNameAparCore, common.LoggerCategoryAsset)

	asset, err := a.getAsset(ctx, id)
	if err != nil {
		return nil, err
	}

	dates, err := a.validateAsset(ctx, id, &input)
	if err != nil {
		logger.Info("Rejected asset update", zap.Uint("actor", actor.ID), zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	applyAssetInput(asset, input, dates)

	if err := a.Db.Conn.WithContext(ctx).Save(asset).Error; err != nil {
		return nil, duplicateNumber(err)
	}

	logger.Info("Updated asset", zap.Uint("actor", actor.ID), zap.Reflect("apar", asset))
	return asset, nil
}

// deleteAsset removes the asset together with its inspections and their
// items in one transaction.
func (a *APAR) deleteAsset(ctx context.Context, actor models.Actor, id uint) error {
	logger := common.GetCategoryLogger(common.LoggerNameAparCore, common.LoggerCategoryAsset)

	err := a.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asset models.Apar
		if err := tx.First(&asset, id).Error; err != nil {
			return notFound("apar", id, err)
		}

		inspectionIDs := tx.Model(&models.Inspection{}).Select("id").Where("apar_id = ?", id)
		if err := tx.Where("inspection_id IN (?)", inspectionIDs).Delete(&models.InspectionItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("apar_id = ?", id).Delete(&models.Inspection{}).Error; err != nil {
			return err
		}
		return tx.Delete(&asset).Error
	})
	if err != nil {
		if IsNotFound(err) {
			return err
		}
		return &TransactionError{Op: "delete apar", Err: err}
	}

	logger.Info("Deleted asset", zap.Uint("actor", actor.ID), zap.Uint("id", id))
	return nil
}

func (a *APAR) getAsset(ctx context.Context, id uint) (*models.Apar, error) {
	var asset models.Apar
	if err := a.Db.Conn.WithContext(ctx).First(&asset, id).Error; err != nil {
		return nil, notFound("apar", id, err)
	}
	return &asset, nil
}

func (a *APAR) listAssets(ctx context.Context, opts models.ListOptions) (models.Page[models.Apar], error) {
	return listPage[models.Apar](
		a.Db.Conn.WithContext(ctx).Model(&models.Apar{}),
		opts,
		func(q *gorm.DB) *gorm.DB { return q.Order("number ASC") },
	)
}

type IAssetImpl struct {
	apar *APAR
}

func (ia *IAssetImpl) Create(ctx context.Context, actor models.Actor, input models.AparInput) (*models.Apar, error) {
	return ia.apar.createAsset(ctx, actor, input)
}

func (ia *IAssetImpl) Update(ctx context.Context, actor models.Actor, id uint, input models.AparInput) (*models.Apar, error) {
	return ia.apar.updateAsset(ctx, actor, id, input)
}

func (ia *IAssetImpl) Delete(ctx context.Context, actor models.Actor, id uint) error {
	return ia.apar.deleteAsset(ctx, actor, id)
}

func (ia *IAssetImpl) Get(ctx context.Context, id uint) (*models.Apar, error) {
	return ia.apar.getAsset(ctx, id)
}

func (ia *IAssetImpl) List(ctx context.Context, opts models.ListOptions) (models.Page[models.Apar], error) {
	return ia.apar.listAssets(ctx, opts)
}

func (a *APAR) GetIAsset() IAsset {
	return &IAssetImpl{apar: a}
}
