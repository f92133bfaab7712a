package apar

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

// listPage counts base, then applies finish (ordering, preloads) and the
// requested window before loading rows.
func listPage[T any](base *gorm.DB, opts models.ListOptions, finish func(*gorm.DB) *gorm.DB) (models.Page[T], error) {
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return models.Page[T]{}, err
	}

	q := finish(base)
	if opts.Paginated() {
		n := opts.Normalize()
		q = q.Offset(n.Offset()).Limit(n.PerPage)
	}

	var rows []T
	if err := q.Find(&rows).Error; err != nil {
		return models.Page[T]{}, err
	}
	return models.NewPage(rows, total, opts), nil
}

func notFound(resource string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return err
}

func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
