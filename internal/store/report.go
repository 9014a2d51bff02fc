package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// monthLabel is the three-letter label used by the monthly_sales fact
// table ("Jan" .. "Dec").
func monthLabel(month time.Month) string {
	return month.String()[:3]
}

// monthWindow returns the half-open [from, to) RFC 3339 bounds of a
// calendar month.
func monthWindow(year int, month time.Month) (string, string) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from.Format(timeFormat), from.AddDate(0, 1, 0).Format(timeFormat)
}

// GenerateSalesReport aggregates order-item revenue (quantity × unit
// price) per store for the given calendar month, ordered by revenue
// descending. Stores with no matching revenue are omitted: the report
// joins orders to stores, it does not enumerate stores.
func (s *Store) GenerateSalesReport(year int, month time.Month) ([]types.StoreRevenue, error) {
	from, to := monthWindow(year, month)

	rows, err := s.db.Query(
		`SELECT st.store_id, st.store_name, SUM(i.quantity * i.unit_price) AS revenue
		 FROM orders o
		 JOIN stores st ON st.store_id = o.store_id
		 JOIN order_items i ON i.order_id = o.order_id
		 WHERE o.order_date >= ? AND o.order_date < ?
		 GROUP BY st.store_id, st.store_name
		 ORDER BY revenue DESC, st.store_id`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("sales report %d-%02d: %w", year, month, classifyError(err))
	}
	defer rows.Close()

	var report []types.StoreRevenue
	for rows.Next() {
		var r types.StoreRevenue
		if err := rows.Scan(&r.StoreID, &r.StoreName, &r.Revenue); err != nil {
			return nil, fmt.Errorf("sales report %d-%02d: %w", year, month, err)
		}
		report = append(report, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sales report %d-%02d: %w", year, month, classifyError(err))
	}
	return report, nil
}

// RefreshMonthlySales recomputes the month's per-store revenue and upserts
// it into the monthly_sales fact table for the pivot engine. One
// transaction: a partially refreshed month is never visible.
func (s *Store) RefreshMonthlySales(year int, month time.Month) error {
	report, err := s.GenerateSalesReport(year, month)
	if err != nil {
		return err
	}
	label := monthLabel(month)

	return s.withTx(func(tx *sql.Tx) error {
		for _, r := range report {
			_, err := tx.Exec(
				`INSERT INTO monthly_sales (store_id, month, total_sales) VALUES (?, ?, ?)
				 ON CONFLICT (store_id, month) DO UPDATE SET total_sales = excluded.total_sales`,
				r.StoreID, label, r.Revenue,
			)
			if err != nil {
				return fmt.Errorf("refresh monthly sales %s for store %d: %w", label, r.StoreID, classifyError(err))
			}
		}
		return nil
	})
}

// SetMonthlySale upserts a single fact row. Used by seeding and by
// imports; reporting workflows go through RefreshMonthlySales.
func (s *Store) SetMonthlySale(storeID int64, month string, total float64) error {
	if month == "" {
		return fmt.Errorf("monthly sale for store %d: month label required: %w", storeID, types.ErrValidation)
	}
	_, err := s.db.Exec(
		`INSERT INTO monthly_sales (store_id, month, total_sales) VALUES (?, ?, ?)
		 ON CONFLICT (store_id, month) DO UPDATE SET total_sales = excluded.total_sales`,
		storeID, month, total,
	)
	if err != nil {
		return fmt.Errorf("monthly sale for store %d: %w", storeID, classifyError(err))
	}
	return nil
}
