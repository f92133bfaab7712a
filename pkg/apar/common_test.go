package apar

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/apar-inspection-service/pkg/apar/mocks"
	"liyu1981.xyz/apar-inspection-service/pkg/auth"
	"liyu1981.xyz/apar-inspection-service/pkg/db"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

var fixedNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func newTestAPAR(t *testing.T) *APAR {
	t.Helper()
	a := New(*db.NewTestDB(t))
	a.Now = func() time.Time { return fixedNow }
	return a
}

func GetMockAPARWithMemorySqliteDialector(t *testing.T, useMockIAsset, useMockIUser bool) (
	*gomock.Controller,
	*APAR,
	*mocks.MockIAsset,
	*mocks.MockIUser,
) {
	ctrl := gomock.NewController(t)

	mockIAsset := mocks.NewMockIAsset(ctrl)
	mockIUser := mocks.NewMockIUser(ctrl)

	aparCore := newTestAPAR(t)

	opts := ServiceOpts{}
	if useMockIAsset {
		opts.Asset = mockIAsset
	}
	if useMockIUser {
		opts.User = mockIUser
	}
	aparCore.WithServices(opts)

	return ctrl, aparCore, mockIAsset, mockIUser
}

func createTestUser(t *testing.T, a *APAR, name, email string, role models.Role) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("password")
	require.NoError(t, err)
	user := &models.User{Name: name, Email: email, PasswordHash: hash, Role: role}
	require.NoError(t, a.Db.Conn.Create(user).Error)
	return user
}

func aparInput(number string) models.AparInput {
	return models.AparInput{
		Number:     number,
		Location:   "Gedung A Lantai 1",
		Type:       models.AparTypePowder,
		Capacity:   "6 kg",
		FillDate:   "2024-01-01",
		ExpiryDate: "2025-01-01",
		Status:     models.AparStatusActive,
	}
}

func createTestAsset(t *testing.T, a *APAR, input models.AparInput) *models.Apar {
	t.Helper()
	asset, err := a.Asset.Create(context.Background(), models.Actor{ID: 1, Role: models.RoleAdmin}, input)
	require.NoError(t, err)
	return asset
}

// checklist returns all seven items as good except the given overrides.
func checklist(overrides map[models.ItemType]models.ItemStatus) []models.ItemInput {
	items := make([]models.ItemInput, 0, len(models.AllItemTypes()))
	for _, itemType := range models.AllItemTypes() {
		status := models.ItemStatusGood
		if s, ok := overrides[itemType]; ok {
			status = s
		}
		items = append(items, models.ItemInput{ItemType: itemType, Status: status})
	}
	return items
}

func inspectionInput(aparID uint, date string, overrides map[models.ItemType]models.ItemStatus) models.InspectionInput {
	return models.InspectionInput{
		AparID:         aparID,
		InspectionDate: date,
		Items:          checklist(overrides),
	}
}

func actorOf(u *models.User) models.Actor {
	return models.Actor{ID: u.ID, Role: u.Role}
}

func ParseLogs(r io.Reader) []map[string]any {
	scanner := bufio.NewScanner(r)
	var logs []map[string]any

	for scanner.Scan() {
		var j map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func findLog(logs []map[string]any, msg string) map[string]any {
	for _, l := range logs {
		if l["msg"] == msg {
			return l
		}
	}
	return nil
}
