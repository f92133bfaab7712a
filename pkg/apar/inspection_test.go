package apar

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/db"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
	_ "liyu1981.xyz/apar-inspection-service/pkg/testing"
)

func itemStatusByType(items []models.InspectionItem) map[models.ItemType]models.ItemStatus {
	m := map[models.ItemType]models.ItemStatus{}
	for _, item := range items {
		m[item.ItemType] = item.Status
	}
	return m
}

func TestCreateInspection_DerivesStatus(t *testing.T) {
	common.SetTestLoggerNop()
	a := newTestAPAR(t)
	ctx := context.Background()

	inspector := createTestUser(t, a, "Petugas", "petugas@example.com", models.RolePetugas)
	asset := createTestAsset(t, a, aparInput("APAR-010"))

	cases := []struct {
		name      string
		overrides map[models.ItemType]models.ItemStatus
		want      models.OverallStatus
	}{
		{"all good", nil, models.OverallStatusGood},
		{"hose damaged", map[models.ItemType]models.ItemStatus{
			models.ItemTypeHose: models.ItemStatusDamaged,
		}, models.OverallStatusCritical},
		{"pressure and cleanliness need repair", map[models.ItemType]models.ItemStatus{
			models.ItemTypePressure:    models.ItemStatusNeedsRepair,
			models.ItemTypeCleanliness: models.ItemStatusNeedsRepair,
		}, models.OverallStatusNeedsAttention},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			inspection, err := a.Inspection.Create(ctx, actorOf(inspector), inspectionInput(asset.ID, "2024-06-01", c.overrides))
			require.NoError(t, err)
			assert.Equal(t, c.want, inspection.OverallStatus)
			assert.Equal(t, inspector.ID, inspection.InspectorID)
			require.NotNil(t, inspection.Apar)
			assert.Equal(t, "APAR-010", inspection.Apar.Number)
			require.NotNil(t, inspection.Inspector)
			assert.Equal(t, "Petugas", inspection.Inspector.Name)

			require.Len(t, inspection.Items, ChecklistSize)
			for i, itemType := range models.AllItemTypes() {
				assert.Equal(t, itemType, inspection.Items[i].ItemType)
			}
			assert.Equal(t, c.want, DeriveFromItems(inspection.Items))
		})
	}
}

func TestCreateInspection_IgnoresMismatchedHint(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.InfoLevel)
	defer common.SetTestLoggerNop()

	a := newTestAPAR(t)
	ctx := context.Background()
	inspector := createTestUser(t, a, "Petugas", "petugas@example.com", models.RolePetugas)
	asset := createTestAsset(t, a, aparInput("APAR-010"))

	input := inspectionInput(asset.ID, "2024-06-01", map[models.ItemType]models.ItemStatus{
		models.ItemTypeSafetyPin: models.ItemStatusDamaged,
	})
	input.OverallStatus = models.OverallStatusGood

	inspection, err := a.Inspection.Create(ctx, actorOf(inspector), input)
	require.NoError(t, err)
	assert.Equal(t, models.OverallStatusCritical, inspection.OverallStatus)

	entry := findLog(ParseLogs(&buf), "Ignoring client overall status")
	require.NotNil(t, entry)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "good", entry["hint"])
	assert.Equal(t, "critical", entry["derived"])
}

func TestCreateInspection_Validation(t *testing.T) {
	common.SetTestLoggerNop()
	a := newTestAPAR(t)
	ctx := context.Background()
	inspector := createTestUser(t, a, "Petugas", "petugas@example.com", models.RolePetugas)
	asset := createTestAsset(t, a, aparInput("APAR-010"))
	actor := actorOf(inspector)

	{
		_, err := a.Inspection.Create(ctx, actor, models.InspectionInput{})
		requireFieldErrors(t, err, "apar_id", "inspection_date", "items")
	}

	{
		input := inspectionInput(asset.ID, "2024-06-01", nil)
		input.Items = input.Items[:6]
		_, err := a.Inspection.Create(ctx, actor, input)
		verr := requireFieldErrors(t, err, "items")
		assert.Len(t, verr.Fields, 1)
	}

	{
		input := inspectionInput(asset.ID, "2024-06-01", nil)
		input.Items[6].ItemType = models.ItemTypeHose
		_, err := a.Inspection.Create(ctx, actor, input)
		requireFieldErrors(t, err, "items.6.item_type")
	}

	{
		input := inspectionInput(asset.ID, "2024-06-01", nil)
		input.Items[2].Status = "broken"
		input.Items[3].ItemType = "nozzle"
		input.OverallStatus = "fine"
		_, err := a.Inspection.Create(ctx, actor, input)
		requireFieldErrors(t, err, "items.2.status", "items.3.item_type", "overall_status")
	}

	{
		// an empty item status defaults to good
		input := inspectionInput(asset.ID, "2024-06-01", nil)
		input.Items[0].Status = ""
		inspection, err := a.Inspection.Create(ctx, actor, input)
		require.NoError(t, err)
		assert.Equal(t, models.ItemStatusGood, inspection.Items[0].Status)
	}

	var count int64
	require.NoError(t, a.Db.Conn.Model(&models.Inspection{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateInspection_MissingReferences(t *testing.T) {
	common.SetTestLoggerNop()
	a := newTestAPAR(t)
	ctx := context.Background()
	inspector := createTestUser(t, a, "Petugas", "petugas@example.com", models.RolePetugas)
	asset := createTestAsset(t, a, aparInput("APAR-010"))

	_, err := a.Inspection.Create(ctx, actorOf(inspector), inspectionInput(4242, "2024-06-01", nil))
	var nerr *NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "apar", nerr.Resource)
	assert.Equal(t, uint(4242), nerr.ID)

	_, err = a.Inspection.Create(ctx, models.Actor{ID: 777, Role: models.RolePetugas}, inspectionInput(asset.ID, "2024-06-01", nil))
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "user", nerr.Resource)

	var count int64
	require.NoError(t, a.Db.Conn.Model(&models.InspectionItem{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateInspection_AssetLookupThroughService(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, a, mockIAsset, mockIUser := GetMockAPARWithMemorySqliteDialector(t, true, true)
	defer ctrl.Finish()

	mockIAsset.EXPECT().
		Get(gomock.Any(), gomock.Eq(uint(5))).
		Return(nil, &NotFoundError{Resource: "apar", ID: 5}).
		Times(1)
	mockIUser.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)

	_, err := a.Inspection.Create(context.Background(), models.Actor{ID: 1}, inspectionInput(5, "2024-06-01", nil))
	assert.True(t, IsNotFound(err))
}

func TestUpdateInspection_ReplacesChecklist(t *testing.T) {
	common.SetTestLoggerNop()
	a := newTestAPAR(t)
	ctx := context.Background()
	inspector := createTestUser(t, a, "Petugas", "petugas@example.com", models.RolePetugas)
	first := createTestAsset(t, a, aparInput("APAR-001"))
	second := createTestAsset(t, a, aparInput("APAR-002"))

	created, err := a.Inspection.Create(ctx, actorOf(inspector), inspectionInput(first.ID, "2024-06-01", nil))
	require.NoError(t, err)
	oldIDs := common.Mapper(created.Items, func(i models.InspectionItem) uint { return i.ID })

	signature := "data:image/png;base64,AAAA"
	input := inspectionInput(second.ID, "2024-06-02", map[models.ItemType]models.ItemStatus{
		models.ItemTypeFunnel: models.ItemStatusNeedsRepair,
	})
	input.DigitalSignature = &signature

	updated, err := a.Inspection.Update(ctx, actorOf(inspector), created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, second.ID, updated.AparID)
	assert.Equal(t, "2024-06-02", models.TimeOf(updated.InspectionDate).Format(common.DateLayout))
	assert.Equal(t, models.OverallStatusNeedsAttention, updated.OverallStatus)
	require.NotNil(t, updated.DigitalSignature)
	assert.Equal(t, signature, *updated.DigitalSignature)
	require.Len(t, updated.Items, ChecklistSize)
	assert.Equal(t, models.ItemStatusNeedsRepair, itemStatusByType(updated.Items)[models.ItemTypeFunnel])

	var stale int64
	require.NoError(t, a.Db.Conn.Model(&models.InspectionItem{}).Where("id IN ?", oldIDs).Count(&stale).Error)
	assert.Equal(t, int64(0), stale)

	var total int64
	require.NoError(t, a.Db.Conn.Model(&models.InspectionItem{}).Count(&total).Error)
	assert.Equal(t, int64(ChecklistSize), total)
}

func TestUpdateInspection_RollsBackOnFailure(t *testing.T) {
	common.SetTestLoggerNop()
	a := newTestAPAR(t)
	ctx := context.Background()
	inspector := createTestUser(t, a, "Petugas", "petugas@example.com", models.RolePetugas)
	asset := createTestAsset(t, a, aparInput("APAR-001"))

	created, err := a.Inspection.Create(ctx, actorOf(inspector), inspectionInput(asset.ID, "2024-06-01", nil))
	require.NoError(t, err)

	// fail every item insert from now on, after the old items were deleted
	err = a.Db.Conn.Callback().Create().Before("gorm:create").Register("test:fail_items", func(tx *gorm.DB) {
		if tx.Statement.Table == "inspection_items" {
			_ = tx.AddError(errors.New("disk full"))
		}
	})
	require.NoError(t, err)

	_, err = a.Inspection.Update(ctx, actorOf(inspector), created.ID, inspectionInput(asset.ID, "2024-06-05", map[models.ItemType]models.ItemStatus{
		models.ItemTypeHose: models.ItemStatusDamaged,
	}))
	var terr *TransactionError
	require.ErrorAs(t, err, &terr)
	assert.ErrorContains(t, err, "disk full")

	reloaded, err := a.Inspection.Get(ctx, created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.OverallStatusGood, reloaded.OverallStatus)
	assert.Equal(t, "2024-06-01", models.TimeOf(reloaded.InspectionDate).Format(common.DateLayout))
	require.Len(t, reloaded.Items, ChecklistSize)
	assert.ElementsMatch(t,
		common.Mapper(created.Items, func(i models.InspectionItem) uint { return i.ID }),
		common.Mapper(reloaded.Items, func(i models.InspectionItem) uint { return i.ID }),
	)
}

func TestUpdateInspection_ReadersSeeWholeChecklist(t *testing.T) {
	common.SetTestLoggerNop()

	instance, err := db.Open(db.UseSqliteFileDialector(filepath.Join(t.TempDir(), "apar.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = instance.Close() })

	a := New(*instance)
	a.Now = func() time.Time { return fixedNow }
	ctx := context.Background()

	inspector := createTestUser(t, a, "Petugas", "petugas@example.com", models.RolePetugas)
	asset := createTestAsset(t, a, aparInput("APAR-001"))
	created, err := a.Inspection.Create(ctx, actorOf(inspector), inspectionInput(asset.ID, "2024-06-01", nil))
	require.NoError(t, err)

	const readers, updates = 4, 100

	var (
		wg         sync.WaitGroup
		reads      atomic.Int64
		partial    atomic.Int64
		readErrors atomic.Int64
		done       = make(chan struct{})
	)
	for range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				var count int64
				err := instance.Conn.Model(&models.InspectionItem{}).
					Where("inspection_id = ?", created.ID).
					Count(&count).Error
				if err != nil {
					readErrors.Add(1)
					continue
				}
				reads.Add(1)
				if count != int64(ChecklistSize) {
					partial.Add(1)
				}
			}
		}()
	}

	statuses := []models.ItemStatus{models.ItemStatusGood, models.ItemStatusNeedsRepair, models.ItemStatusDamaged}
	for i := range updates {
		_, err := a.Inspection.Update(ctx, actorOf(inspector), created.ID, inspectionInput(asset.ID, "2024-06-01", map[models.ItemType]models.ItemStatus{
			models.ItemTypeHose: statuses[i%len(statuses)],
		}))
		if !assert.NoError(t, err) {
			break
		}
	}
	close(done)
	wg.Wait()

	assert.Positive(t, reads.Load())
	assert.Zero(t, readErrors.Load())
	assert.Zero(t, partial.Load(), "readers saw an incomplete checklist")
}

func TestUpdateInspection_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()
	a := newTestAPAR(t)
	ctx := context.Background()
	inspector := createTestUser(t, a, "Petugas", "petugas@example.com", models.RolePetugas)
	asset := createTestAsset(t, a, aparInput("APAR-001"))

	_, err := a.Inspection.Update(ctx, actorOf(inspector), 404, inspectionInput(asset.ID, "2024-06-01", nil))
	assert.True(t, IsNotFound(err))

	created, err := a.Inspection.Create(ctx, actorOf(inspector), inspectionInput(asset.ID, "2024-06-01", nil))
	require.NoError(t, err)

	_, err = a.Inspection.Update(ctx, actorOf(inspector), created.ID, inspectionInput(9999, "2024-06-01", nil))
	assert.True(t, IsNotFound(err))

	input := inspectionInput(asset.ID, "2024-06-01", nil)
	input.Items = nil
	_, err = a.Inspection.Update(ctx, actorOf(inspector), created.ID, input)
	requireFieldErrors(t, err, "items")

	reloaded, err := a.Inspection.Get(ctx, created.ID, true)
	require.NoError(t, err)
	assert.Len(t, reloaded.Items, ChecklistSize)

	header, err := a.Inspection.Get(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Empty(t, header.Items)
	require.NotNil(t, header.Apar)
	assert.Equal(t, "APAR-001", header.Apar.Number)
}

func TestDeleteInspection(t *testing.T) {
	common.SetTestLoggerNop()
	a := newTestAPAR(t)
	ctx := context.Background()
	inspector := createTestUser(t, a, "Petugas", "petugas@example.com", models.RolePetugas)
	asset := createTestAsset(t, a, aparInput("APAR-001"))

	created, err := a.Inspection.Create(ctx, actorOf(inspector), inspectionInput(asset.ID, "2024-06-01", nil))
	require.NoError(t, err)

	require.NoError(t, a.Inspection.Delete(ctx, admin, created.ID))

	var items int64
	require.NoError(t, a.Db.Conn.Model(&models.InspectionItem{}).Count(&items).Error)
	assert.Equal(t, int64(0), items)

	assert.True(t, IsNotFound(a.Inspection.Delete(ctx, admin, created.ID)))

	_, err = a.Asset.Get(ctx, asset.ID)
	assert.NoError(t, err, "deleting an inspection keeps its asset")
}

func TestListInspections(t *testing.T) {
	common.SetTestLoggerNop()
	a := newTestAPAR(t)
	ctx := context.Background()
	budi := createTestUser(t, a, "Budi", "budi@example.com", models.RolePetugas)
	sari := createTestUser(t, a, "Sari", "sari@example.com", models.RolePetugas)
	first := createTestAsset(t, a, aparInput("APAR-001"))
	second := createTestAsset(t, a, aparInput("APAR-002"))

	damaged := map[models.ItemType]models.ItemStatus{models.ItemTypeHandle: models.ItemStatusDamaged}
	for _, c := range []struct {
		actor  *models.User
		aparID uint
		date   string
		items  map[models.ItemType]models.ItemStatus
	}{
		{budi, first.ID, "2024-04-10", nil},
		{budi, first.ID, "2024-05-10", damaged},
		{sari, second.ID, "2024-06-10", nil},
		{sari, first.ID, "2024-06-01", nil},
	} {
		_, err := a.Inspection.Create(ctx, actorOf(c.actor), inspectionInput(c.aparID, c.date, c.items))
		require.NoError(t, err)
	}

	dates := func(p models.Page[models.Inspection]) []string {
		return common.Mapper(p.Data, func(i models.Inspection) string {
			return models.TimeOf(i.InspectionDate).Format(common.DateLayout)
		})
	}

	all, err := a.Inspection.List(ctx, models.InspectionFilter{}, models.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-10", "2024-06-01", "2024-05-10", "2024-04-10"}, dates(all))
	require.NotNil(t, all.Data[0].Apar)
	assert.Equal(t, "APAR-002", all.Data[0].Apar.Number)
	require.NotNil(t, all.Data[0].Inspector)
	assert.Equal(t, "Sari", all.Data[0].Inspector.Name)

	byApar, err := a.Inspection.List(ctx, models.InspectionFilter{AparID: first.ID}, models.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-01", "2024-05-10", "2024-04-10"}, dates(byApar))

	byInspector, err := a.Inspection.List(ctx, models.InspectionFilter{InspectorID: budi.ID}, models.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, byInspector.Data, 2)

	critical, err := a.Inspection.List(ctx, models.InspectionFilter{OverallStatus: models.OverallStatusCritical}, models.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-10"}, dates(critical))

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	window, err := a.Inspection.List(ctx, models.InspectionFilter{DateFrom: &from, DateTo: &to}, models.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-01", "2024-05-10"}, dates(window))

	paged, err := a.Inspection.List(ctx, models.InspectionFilter{}, models.ListOptions{Page: 2, PerPage: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), paged.Total)
	assert.Equal(t, 2, paged.LastPage)
	assert.Equal(t, []string{"2024-04-10"}, dates(paged))
}
