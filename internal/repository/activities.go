package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sysu-ecnc-dev/asset-tracker/backend/internal/domain"
)

func (r *Repository) CreateActivity(activity *domain.AssetActivity) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO asset_activities (asset_id, user_id, action, details)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	args := []any{activity.AssetID, activity.UserID, activity.Action, activity.Details}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&activity.ID, &activity.CreatedAt); err != nil {
		return err
	}

	return nil
}

// GetRecentActivities 获取最近的若干条动态，并联表带出对应的资产
func (r *Repository) GetRecentActivities(limit int) ([]*domain.AssetActivity, error) {
	query := `
		SELECT
			aa.id,
			aa.asset_id,
			aa.user_id,
			aa.action,
			aa.details,
			aa.created_at,
			a.name,
			a.category,
			a.status,
			a.location,
			a.value
		FROM asset_activities aa
		LEFT JOIN assets a ON aa.asset_id = a.id
		ORDER BY aa.created_at DESC
		LIMIT $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []*domain.AssetActivity{}
	for rows.Next() {
		var activity domain.AssetActivity
		var row struct {
			Name     sql.NullString
			Category sql.NullString
			Status   sql.NullString
			Location sql.NullString
			Value    sql.NullFloat64
		}

		dst := []any{
			&activity.ID,
			&activity.AssetID,
			&activity.UserID,
			&activity.Action,
			&activity.Details,
			&activity.CreatedAt,
			&row.Name,
			&row.Category,
			&row.Status,
			&row.Location,
			&row.Value,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		// 动态可能不关联任何资产，或者资产已被删除
		if activity.AssetID != nil && row.Name.Valid {
			activity.Asset = &domain.Asset{
				ID:       *activity.AssetID,
				Name:     row.Name.String,
				Category: row.Category.String,
				Status:   row.Status.String,
				Location: row.Location.String,
				Value:    row.Value.Float64,
			}
		}

		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}
