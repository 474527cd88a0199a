package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/asset-tracker/backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

func (r *Repository) CreateAsset(asset *domain.Asset) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO assets (name, category, status, location, value, user_id, employee_name, employee_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at, version
	`

	args := []any{
		asset.Name,
		asset.Category,
		asset.Status,
		asset.Location,
		asset.Value,
		asset.UserID,
		asset.EmployeeName,
		asset.EmployeeID,
		asset.Notes,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&asset.ID, &asset.CreatedAt, &asset.UpdatedAt, &asset.Version); err != nil {
		return err
	}

	return nil
}

// CreateAssetWithActivity 先插入资产，再插入一条描述新增的动态记录
// 两次插入按顺序执行且不在同一事务中，动态插入失败时已插入的资产不会回滚
func (r *Repository) CreateAssetWithActivity(asset *domain.Asset) error {
	if err := r.CreateAsset(asset); err != nil {
		return err
	}

	activity := &domain.AssetActivity{
		AssetID: &asset.ID,
		UserID:  asset.UserID,
		Action:  fmt.Sprintf("Added new asset: %s", asset.Name),
	}
	if err := r.CreateActivity(activity); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllAssets() ([]*domain.Asset, error) {
	query := `
		SELECT
			id,
			name,
			category,
			status,
			location,
			value,
			user_id,
			assigned_to,
			employee_name,
			employee_id,
			lifecycle_stage,
			next_maintenance,
			notes,
			created_at,
			updated_at,
			version
		FROM assets
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := []*domain.Asset{}
	for rows.Next() {
		var asset domain.Asset
		dst := []any{
			&asset.ID,
			&asset.Name,
			&asset.Category,
			&asset.Status,
			&asset.Location,
			&asset.Value,
			&asset.UserID,
			&asset.AssignedTo,
			&asset.EmployeeName,
			&asset.EmployeeID,
			&asset.LifecycleStage,
			&asset.NextMaintenance,
			&asset.Notes,
			&asset.CreatedAt,
			&asset.UpdatedAt,
			&asset.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		assets = append(assets, &asset)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assets, nil
}

func (r *Repository) GetAssetByID(id int64) (*domain.Asset, error) {
	query := `
		SELECT
			name,
			category,
			status,
			location,
			value,
			user_id,
			assigned_to,
			employee_name,
			employee_id,
			lifecycle_stage,
			next_maintenance,
			notes,
			created_at,
			updated_at,
			version
		FROM assets WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	asset := &domain.Asset{
		ID: id,
	}

	dst := []any{
		&asset.Name,
		&asset.Category,
		&asset.Status,
		&asset.Location,
		&asset.Value,
		&asset.UserID,
		&asset.AssignedTo,
		&asset.EmployeeName,
		&asset.EmployeeID,
		&asset.LifecycleStage,
		&asset.NextMaintenance,
		&asset.Notes,
		&asset.CreatedAt,
		&asset.UpdatedAt,
		&asset.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return asset, nil
}

func (r *Repository) UpdateAsset(asset *domain.Asset) error {
	query := `
		UPDATE assets
		SET
			name = $1,
			category = $2,
			status = $3,
			location = $4,
			value = $5,
			assigned_to = $6,
			employee_name = $7,
			employee_id = $8,
			lifecycle_stage = $9,
			next_maintenance = $10,
			notes = $11,
			updated_at = now(),
			version = version + 1
		WHERE id = $12 AND version = $13
		RETURNING updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		asset.Name,
		asset.Category,
		asset.Status,
		asset.Location,
		asset.Value,
		asset.AssignedTo,
		asset.EmployeeName,
		asset.EmployeeID,
		asset.LifecycleStage,
		asset.NextMaintenance,
		asset.Notes,
		asset.ID,
		asset.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&asset.UpdatedAt, &asset.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteAsset(id int64) error {
	query := `
		DELETE FROM assets WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

// UpdateAssetWithAudit 并发更新资产和写入审计记录
// 两个写入不在同一事务中，只是为了重叠延迟；部分失败（资产已更新而审计写入失败，或反之）不做补偿
func (r *Repository) UpdateAssetWithAudit(asset *domain.Asset, log *domain.AuditLog) error {
	var g errgroup.Group

	g.Go(func() error {
		return r.UpdateAsset(asset)
	})
	g.Go(func() error {
		return r.CreateAuditLog(log)
	})

	return g.Wait()
}

// ScheduleMaintenance 并发执行资产更新（带审计）和维护通知的插入
func (r *Repository) ScheduleMaintenance(asset *domain.Asset, log *domain.AuditLog, notification *domain.Notification) error {
	var g errgroup.Group

	g.Go(func() error {
		return r.UpdateAssetWithAudit(asset, log)
	})
	g.Go(func() error {
		return r.CreateNotification(notification)
	})

	return g.Wait()
}

// AssignAsset 并发执行资产更新（带审计）和发给被分配人的通知的插入
func (r *Repository) AssignAsset(asset *domain.Asset, log *domain.AuditLog, notification *domain.Notification) error {
	var g errgroup.Group

	g.Go(func() error {
		return r.UpdateAssetWithAudit(asset, log)
	})
	g.Go(func() error {
		return r.CreateNotification(notification)
	})

	return g.Wait()
}
