package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/asset-tracker/backend/internal/config"
	"github.com/sysu-ecnc-dev/asset-tracker/backend/internal/domain"
)

func setupTestRepository(t testing.TB) (*sql.DB, sqlmock.Sqlmock, *Repository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5
	cfg.Database.TransactionTimeout = 10

	repo := NewRepository(cfg, db)
	return db, mock, repo
}

func TestCreateAssetWithActivity_InsertOrder(t *testing.T) {
	db, mock, repo := setupTestRepository(t)
	defer db.Close()

	asset := &domain.Asset{
		Name:         "ThinkPad-001",
		Category:     "IT Equipment",
		Status:       "Active",
		Location:     "HQ Office",
		Value:        1500,
		UserID:       1,
		EmployeeName: "王伟",
		EmployeeID:   "EMP0001",
	}

	now := time.Now()

	// 先插入资产，再插入动态，顺序由 sqlmock 校验
	mock.ExpectQuery("INSERT INTO assets").
		WithArgs("ThinkPad-001", "IT Equipment", "Active", "HQ Office", float64(1500), int64(1), "王伟", "EMP0001", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "version"}).AddRow(7, now, now, 1))

	mock.ExpectQuery("INSERT INTO asset_activities").
		WithArgs(int64(7), int64(1), "Added new asset: ThinkPad-001", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, now))

	err := repo.CreateAssetWithActivity(asset)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), asset.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAssetWithActivity_AssetInsertFails(t *testing.T) {
	db, mock, repo := setupTestRepository(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO assets").
		WillReturnError(sql.ErrConnDone)

	err := repo.CreateAssetWithActivity(&domain.Asset{Name: "ThinkPad-001"})

	// 资产插入失败时不应该再尝试插入动态
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAssetWithAudit(t *testing.T) {
	db, mock, repo := setupTestRepository(t)
	defer db.Close()

	// 两个写入并发执行，sqlmock 不校验顺序
	mock.MatchExpectationsInOrder(false)

	now := time.Now()

	mock.ExpectQuery("UPDATE assets").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at", "version"}).AddRow(now, 2))

	mock.ExpectQuery("INSERT INTO audit_logs").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, now))

	asset := &domain.Asset{ID: 7, Name: "ThinkPad-001", Version: 1}
	log := &domain.AuditLog{UserID: 1, Action: "update", ResourceType: "asset", ResourceID: 7}

	err := repo.UpdateAssetWithAudit(asset, log)

	assert.NoError(t, err)
	assert.Equal(t, int32(2), asset.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleMaintenance(t *testing.T) {
	db, mock, repo := setupTestRepository(t)
	defer db.Close()

	mock.MatchExpectationsInOrder(false)

	now := time.Now()
	maintenanceDate := now.AddDate(0, 0, 7)

	asset := &domain.Asset{
		ID:              7,
		Name:            "ThinkPad-001",
		Category:        "IT Equipment",
		Status:          domain.AssetStatusMaintenance,
		Location:        "HQ Office",
		Value:           1500,
		UserID:          1,
		EmployeeName:    "王伟",
		EmployeeID:      "EMP0001",
		NextMaintenance: &maintenanceDate,
		Version:         1,
	}

	mock.ExpectQuery("UPDATE assets").
		WithArgs(
			"ThinkPad-001", "IT Equipment", domain.AssetStatusMaintenance, "HQ Office", float64(1500),
			nil, "王伟", "EMP0001", nil, maintenanceDate, "", int64(7), int32(1),
		).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at", "version"}).AddRow(now, 2))

	mock.ExpectQuery("INSERT INTO audit_logs").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, now))

	// 通知必须发给当前用户
	mock.ExpectQuery("INSERT INTO notifications").
		WithArgs(int64(1), "Maintenance Scheduled", sqlmock.AnyArg(), domain.SeverityInfo).
		WillReturnRows(sqlmock.NewRows([]string{"id", "read", "created_at"}).AddRow(21, false, now))

	log := &domain.AuditLog{UserID: 1, Action: "update", ResourceType: "asset", ResourceID: 7}
	notification := &domain.Notification{
		UserID:   1,
		Title:    "Maintenance Scheduled",
		Message:  "Maintenance scheduled for asset on 2025-06-15",
		Severity: domain.SeverityInfo,
	}

	err := repo.ScheduleMaintenance(asset, log, notification)

	assert.NoError(t, err)
	assert.Equal(t, domain.AssetStatusMaintenance, asset.Status)
	assert.Equal(t, &maintenanceDate, asset.NextMaintenance)
	assert.False(t, notification.Read)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignAsset(t *testing.T) {
	db, mock, repo := setupTestRepository(t)
	defer db.Close()

	mock.MatchExpectationsInOrder(false)

	now := time.Now()
	assigneeID := int64(3)
	stage := domain.LifecycleInUse

	asset := &domain.Asset{
		ID:             7,
		Name:           "ThinkPad-001",
		UserID:         1,
		AssignedTo:     &assigneeID,
		LifecycleStage: &stage,
		Version:        1,
	}

	mock.ExpectQuery("UPDATE assets").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at", "version"}).AddRow(now, 2))

	mock.ExpectQuery("INSERT INTO audit_logs").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, now))

	// 通知发给被分配人而不是操作人
	mock.ExpectQuery("INSERT INTO notifications").
		WithArgs(assigneeID, "Asset Assigned", "A new asset has been assigned to you", domain.SeverityInfo).
		WillReturnRows(sqlmock.NewRows([]string{"id", "read", "created_at"}).AddRow(21, false, now))

	log := &domain.AuditLog{UserID: 1, Action: "update", ResourceType: "asset", ResourceID: 7}
	notification := &domain.Notification{
		UserID:   assigneeID,
		Title:    "Asset Assigned",
		Message:  "A new asset has been assigned to you",
		Severity: domain.SeverityInfo,
	}

	err := repo.AssignAsset(asset, log, notification)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllAssets(t *testing.T) {
	db, mock, repo := setupTestRepository(t)
	defer db.Close()

	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "name", "category", "status", "location", "value", "user_id", "assigned_to",
		"employee_name", "employee_id", "lifecycle_stage", "next_maintenance", "notes",
		"created_at", "updated_at", "version",
	}).
		AddRow(2, "办公桌-002", "Office Furniture", "Active", "Branch A", 300.0, 1, nil, "李强", "EMP0002", nil, nil, "", now, now, 1).
		AddRow(1, "ThinkPad-001", "IT Equipment", "Active", "HQ Office", 1500.0, 1, nil, "王伟", "EMP0001", nil, nil, "", now.Add(-time.Hour), now.Add(-time.Hour), 1)

	mock.ExpectQuery("FROM assets").
		WillReturnRows(rows)

	assets, err := repo.GetAllAssets()

	assert.NoError(t, err)
	assert.Len(t, assets, 2)
	assert.Equal(t, "办公桌-002", assets[0].Name)
	assert.Nil(t, assets[0].AssignedTo)
	assert.NoError(t, mock.ExpectationsWereMet())
}
