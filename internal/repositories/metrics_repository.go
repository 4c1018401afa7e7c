package repositories

import (
	"context"
	"database/sql"

	"turakBack/internal/models"
)

type MetricsRepository struct {
	DB *sql.DB
}

func (r *MetricsRepository) GetDashboardMetrics(ctx context.Context) (models.DashboardMetrics, error) {
	m := models.DashboardMetrics{
		PropertiesByType:     map[string]int{},
		ReservationsByStatus: map[string]int{},
	}

	err := r.DB.QueryRowContext(ctx, `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE archived = FALSE)
        FROM properties`).Scan(&m.TotalProperties, &m.ActiveProperties)
	if err != nil {
		return models.DashboardMetrics{}, err
	}

	rows, err := r.DB.QueryContext(ctx, `
        SELECT transaction_type, COUNT(*) FROM properties GROUP BY transaction_type`)
	if err != nil {
		return models.DashboardMetrics{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var t string
		var c int
		if err := rows.Scan(&t, &c); err != nil {
			return models.DashboardMetrics{}, err
		}
		m.PropertiesByType[t] = c
	}
	if err = rows.Err(); err != nil {
		return models.DashboardMetrics{}, err
	}

	rows, err = r.DB.QueryContext(ctx, `
        SELECT status, COUNT(*) FROM reservations GROUP BY status`)
	if err != nil {
		return models.DashboardMetrics{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var s string
		var c int
		if err := rows.Scan(&s, &c); err != nil {
			return models.DashboardMetrics{}, err
		}
		m.ReservationsByStatus[s] = c
	}
	if err = rows.Err(); err != nil {
		return models.DashboardMetrics{}, err
	}

	err = r.DB.QueryRowContext(ctx, `
        SELECT COUNT(*) FROM complaints WHERE status = $1`,
		models.ComplaintPending).Scan(&m.PendingComplaints)
	if err != nil {
		return models.DashboardMetrics{}, err
	}

	err = r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&m.TotalUsers)
	if err != nil {
		return models.DashboardMetrics{}, err
	}

	rows, err = r.DB.QueryContext(ctx, `
        SELECT to_char(created_at::date, 'YYYY-MM-DD') AS day, COUNT(*)
        FROM properties
        WHERE created_at >= now() - INTERVAL '30 days'
        GROUP BY day
        ORDER BY day`)
	if err != nil {
		return models.DashboardMetrics{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var dc models.DailyCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return models.DashboardMetrics{}, err
		}
		m.NewListingsByDay = append(m.NewListingsByDay, dc)
	}
	if err = rows.Err(); err != nil {
		return models.DashboardMetrics{}, err
	}

	return m, nil
}
