package apar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

// ChecklistSize is the number of items every inspection records, one per
// item type.
var ChecklistSize = len(models.AllItemTypes())

type checkedInspection struct {
	date    time.Time
	items   []models.InspectionItem
	derived models.OverallStatus
}

func (a *APAR) validateInspection(input *models.InspectionInput) (checkedInspection, error) {
	verr := NewValidationError()
	var checked checkedInspection

	if input.AparID == 0 {
		verr.Add("apar_id", "is required")
	}

	checked.date, _ = validateDate(verr, "inspection_date", input.InspectionDate)

	if input.OverallStatus != "" {
		hint := string(input.OverallStatus)
		collect(verr, "overall_status", overallStatusSchema.Validate(&hint))
	}

	input.DigitalSignature = optionalText(input.DigitalSignature)
	input.Notes = optionalText(input.Notes)

	if len(input.Items) != ChecklistSize {
		verr.Add("items", fmt.Sprintf("must contain exactly %d checklist items", ChecklistSize))
	}

	seen := map[models.ItemType]int{}
	for i, item := range input.Items {
		typeField := fmt.Sprintf("items.%d.item_type", i)
		statusField := fmt.Sprintf("items.%d.status", i)

		itemType := string(item.ItemType)
		collect(verr, typeField, itemTypeSchema.Validate(&itemType))
		if prev, dup := seen[item.ItemType]; dup {
			verr.Add(typeField, fmt.Sprintf("duplicates items.%d", prev))
		} else {
			seen[item.ItemType] = i
		}

		if item.Status == "" {
			item.Status = models.ItemStatusGood
		}
		status := string(item.Status)
		collect(verr, statusField, itemStatusSchema.Validate(&status))

		checked.items = append(checked.items, models.InspectionItem{
			ItemType: item.ItemType,
			Status:   item.Status,
			Notes:    optionalText(item.Notes),
		})
	}

	if err := verr.OrNil(); err != nil {
		return checked, err
	}

	checked.derived = DeriveFromItems(checked.items)
	return checked, nil
}

func (a *APAR) warnOnHintMismatch(logger *zap.Logger, hint, derived models.OverallStatus) {
	if hint != "" && hint != derived {
		logger.Warn("Ignoring client overall status",
			zap.String("hint", string(hint)),
			zap.String("derived", string(derived)),
		)
	}
}

func (a *APAR) createInspection(ctx context.Context, actor models.Actor, input models.InspectionInput) (*models.Inspection, error) {
	logger := common.GetCategoryLogger(common.LoggerNameAparCore, common.LoggerCategoryInspection)

	checked, err := a.validateInspection(&input)
	if err != nil {
		logger.Info("Rejected inspection", zap.Uint("actor", actor.ID), zap.Error(err))
		return nil, err
	}

	if _, err := a.Asset.Get(ctx, input.AparID); err != nil {
		return nil, err
	}
	if _, err := a.User.Get(ctx, actor.ID); err != nil {
		return nil, err
	}

	a.warnOnHintMismatch(logger, input.OverallStatus, checked.derived)

	inspection := models.Inspection{
		AparID:           input.AparID,
		InspectorID:      actor.ID,
		InspectionDate:   models.DateOf(checked.date),
		DigitalSignature: input.DigitalSignature,
		OverallStatus:    checked.derived,
		Notes:            input.Notes,
	}

	err = a.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&inspection).Error; err != nil {
			return err
		}
		for i := range checked.items {
			checked.items[i].InspectionID = inspection.ID
		}
		return tx.Create(&checked.items).Error
	})
	if err != nil {
		logger.Error("Failed to store inspection", zap.Uint("actor", actor.ID), zap.Error(err))
		return nil, &TransactionError{Op: "create inspection", Err: err}
	}

	logger.Info("Created inspection",
		zap.Uint("actor", actor.ID),
		zap.Uint("id", inspection.ID),
		zap.Uint("apar_id", inspection.AparID),
		zap.String("overall_status", string(inspection.OverallStatus)),
	)

	return a.getInspection(ctx, inspection.ID, true)
}

// updateInspection rewrites the inspection fields and replaces its whole
// checklist. Readers see either the old item set or the new one.
func (a *APAR) updateInspection(ctx context.Context, actor models.Actor, id uint, input models.InspectionInput) (*models.Inspection, error) {
	logger := common.GetCategoryLogger(common.LoggerNameAparCore, common.LoggerCategoryInspection)

	var existing models.Inspection
	if err := a.Db.Conn.WithContext(ctx).First(&existing, id).Error; err != nil {
		return nil, notFound("inspection", id, err)
	}

	checked, err := a.validateInspection(&input)
	if err != nil {
		logger.Info("Rejected inspection update", zap.Uint("actor", actor.ID), zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if _, err := a.Asset.Get(ctx, input.AparID); err != nil {
		return nil, err
	}

	a.warnOnHintMismatch(logger, input.OverallStatus, checked.derived)

	err = a.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&existing).Updates(map[string]any{
			"apar_id":           input.AparID,
			"inspection_date":   models.DateOf(checked.date),
			"digital_signature": input.DigitalSignature,
			"overall_status":    checked.derived,
			"notes":             input.Notes,
		}).Error
		if err != nil {
			return err
		}

		if err := tx.Where("inspection_id = ?", id).Delete(&models.InspectionItem{}).Error; err != nil {
			return err
		}

		for i := range checked.items {
			checked.items[i].InspectionID = id
		}
		return tx.Create(&checked.items).Error
	})
	if err != nil {
		logger.Error("Failed to update inspection", zap.Uint("actor", actor.ID), zap.Uint("id", id), zap.Error(err))
		return nil, &TransactionError{Op: "update inspection", Err: err}
	}

	logger.Info("Updated inspection",
		zap.Uint("actor", actor.ID),
		zap.Uint("id", id),
		zap.String("overall_status", string(checked.derived)),
	)

	return a.getInspection(ctx, id, true)
}

func (a *APAR) deleteInspection(ctx context.Context, actor models.Actor, id uint) error {
	logger := common.GetCategoryLogger(common.LoggerNameAparCore, common.LoggerCategoryInspection)

	err := a.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inspection models.Inspection
		if err := tx.First(&inspection, id).Error; err != nil {
			return notFound("inspection", id, err)
		}
		if err := tx.Where("inspection_id = ?", id).Delete(&models.InspectionItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&inspection).Error
	})
	if err != nil {
		if IsNotFound(err) {
			return err
		}
		return &TransactionError{Op: "delete inspection", Err: err}
	}

	logger.Info("Deleted inspection", zap.Uint("actor", actor.ID), zap.Uint("id", id))
	return nil
}

func checklistPosition() map[models.ItemType]int {
	pos := map[models.ItemType]int{}
	for i, t := range models.AllItemTypes() {
		pos[t] = i
	}
	return pos
}

// SortItems orders items the way the checklist is presented.
func SortItems(items []models.InspectionItem) {
	pos := checklistPosition()
	sort.SliceStable(items, func(i, j int) bool {
		return pos[items[i].ItemType] < pos[items[j].ItemType]
	})
}

// getInspection loads an inspection with its asset and inspector. Items are
// only loaded when withItems is set.
func (a *APAR) getInspection(ctx context.Context, id uint, withItems bool) (*models.Inspection, error) {
	var inspection models.Inspection
	q := a.Db.Conn.WithContext(ctx).
		Preload("Apar").
		Preload("Inspector")
	if withItems {
		q = q.Preload("Items")
	}
	if err := q.First(&inspection, id).Error; err != nil {
		return nil, notFound("inspection", id, err)
	}
	SortItems(inspection.Items)
	return &inspection, nil
}

func (a *APAR) listInspections(ctx context.Context, filter models.InspectionFilter, opts models.ListOptions) (models.Page[models.Inspection], error) {
	q := a.Db.Conn.WithContext(ctx).Model(&models.Inspection{})
	if filter.AparID != 0 {
		q = q.Where("apar_id = ?", filter.AparID)
	}
	if filter.InspectorID != 0 {
		q = q.Where("inspector_id = ?", filter.InspectorID)
	}
	if filter.OverallStatus != "" {
		q = q.Where("overall_status = ?", filter.OverallStatus)
	}
	if filter.DateFrom != nil {
		q = q.Where("inspection_date >= ?", models.DateOf(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		q = q.Where("inspection_date <= ?", models.DateOf(*filter.DateTo))
	}

	return listPage[models.Inspection](q, opts, func(q *gorm.DB) *gorm.DB {
		return q.Preload("Apar").Preload("Inspector").Order("inspection_date DESC, id DESC")
	})
}

type IInspectionImpl struct {
	apar *APAR
}

func (ii *IInspectionImpl) Create(ctx context.Context, actor models.Actor, input models.InspectionInput) (*models.Inspection, error) {
	return ii.apar.createInspection(ctx, actor, input)
}

func (ii *IInspectionImpl) Update(ctx context.Context, actor models.Actor, id uint, input models.InspectionInput) (*models.Inspection, error) {
	return ii.apar.updateInspection(ctx, actor, id, input)
}

func (ii *IInspectionImpl) Delete(ctx context.Context, actor models.Actor, id uint) error {
	return ii.apar.deleteInspection(ctx, actor, id)
}

func (ii *IInspectionImpl) Get(ctx context.Context, id uint, withItems bool) (*models.Inspection, error) {
	return ii.apar.getInspection(ctx, id, withItems)
}

func (ii *IInspectionImpl) List(ctx context.Context, filter models.InspectionFilter, opts models.ListOptions) (models.Page[models.Inspection], error) {
	return ii.apar.listInspections(ctx, filter, opts)
}

func (a *APAR) GetIInspection() IInspection {
	return &IInspectionImpl{apar: a}
}
