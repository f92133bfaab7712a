package apar

import (
	"fmt"
	"strings"
	"time"

	z "github.com/Oudwins/zog"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

const maxTextLength = 255

var (
	requiredTextSchema = z.String().Required().Max(maxTextLength)
	emailSchema        = z.String().Required().Max(maxTextLength).Email()
	passwordSchema     = z.String().Required().Min(8)
)

func enumValues[T ~string](values []T) []string {
	return common.Mapper(values, func(v T) string { return string(v) })
}

var (
	aparTypeSchema      = z.String().Required().OneOf(enumValues(models.AllAparTypes()))
	aparStatusSchema    = z.String().Required().OneOf(enumValues(models.AllAparStatuses()))
	itemTypeSchema      = z.String().Required().OneOf(enumValues(models.AllItemTypes()))
	itemStatusSchema    = z.String().Required().OneOf(enumValues(models.AllItemStatuses()))
	overallStatusSchema = z.String().Required().OneOf(enumValues(models.AllOverallStatuses()))
	roleSchema          = z.String().Required().OneOf(enumValues(models.AllRoles()))
)

func collect(verr *ValidationError, field string, issues z.ZogIssueList) {
	for _, issue := range issues {
		verr.Add(field, issue.Message)
	}
}

func validateText(verr *ValidationError, field string, value *string) {
	*value = strings.TrimSpace(*value)
	collect(verr, field, requiredTextSchema.Validate(value))
}

// validateDate records a field error and returns false when value is not a
// calendar date.
func validateDate(verr *ValidationError, field, value string) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		verr.Add(field, "is required")
		return time.Time{}, false
	}
	d, err := common.ParseDate(value)
	if err != nil {
		verr.Add(field, fmt.Sprintf("must be a date in %s format", common.DateLayout))
		return time.Time{}, false
	}
	return d, true
}
