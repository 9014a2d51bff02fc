package store

import (
	"database/sql"
	"fmt"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// OrderSummary joins an order with its customer, its store, and its
// revenue from the v_order_revenue view.
type OrderSummary struct {
	OrderID      int64
	CustomerName string
	StoreName    string // empty when the store was deleted
	Status       string
	Revenue      float64
}

// OrderSummaries lists every order joined with customer, store, and
// revenue, ordered by order ID.
func (s *Store) OrderSummaries() ([]OrderSummary, error) {
	rows, err := s.db.Query(
		`SELECT o.order_id, c.customer_name, COALESCE(st.store_name, ''), o.status, r.revenue
		 FROM orders o
		 JOIN customers c ON c.customer_id = o.customer_id
		 LEFT JOIN stores st ON st.store_id = o.store_id
		 JOIN v_order_revenue r ON r.order_id = o.order_id
		 ORDER BY o.order_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("order summaries: %w", classifyError(err))
	}
	defer rows.Close()

	var summaries []OrderSummary
	for rows.Next() {
		var o OrderSummary
		if err := rows.Scan(&o.OrderID, &o.CustomerName, &o.StoreName, &o.Status, &o.Revenue); err != nil {
			return nil, fmt.Errorf("order summaries: %w", err)
		}
		summaries = append(summaries, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order summaries: %w", classifyError(err))
	}
	return summaries, nil
}

// ReportingPair is an employee self-joined with its manager.
type ReportingPair struct {
	EmployeeName string
	ManagerName  string // empty for roots
}

// ReportingPairs self-joins employees with their managers, ordered by
// employee ID. Roots appear with an empty manager name.
func (s *Store) ReportingPairs() ([]ReportingPair, error) {
	rows, err := s.db.Query(
		`SELECT e.emp_name, COALESCE(m.emp_name, '')
		 FROM employees e
		 LEFT JOIN employees m ON m.employee_id = e.manager_id
		 ORDER BY e.employee_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("reporting pairs: %w", classifyError(err))
	}
	defer rows.Close()

	var pairs []ReportingPair
	for rows.Next() {
		var p ReportingPair
		if err := rows.Scan(&p.EmployeeName, &p.ManagerName); err != nil {
			return nil, fmt.Errorf("reporting pairs: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reporting pairs: %w", classifyError(err))
	}
	return pairs, nil
}

// City set combinations over customers and suppliers.
const (
	CitySetUnion     = "union"
	CitySetIntersect = "intersect"
	CitySetExcept    = "except"
)

// CombineCities combines the customer and supplier city sets with the
// given set operator: union (all cities), intersect (cities with both a
// customer and a supplier), or except (customer-only cities). Results are
// distinct and sorted.
func (s *Store) CombineCities(op string) ([]string, error) {
	var sqlOp string
	switch op {
	case CitySetUnion:
		sqlOp = "UNION"
	case CitySetIntersect:
		sqlOp = "INTERSECT"
	case CitySetExcept:
		sqlOp = "EXCEPT"
	default:
		return nil, fmt.Errorf("unknown city set operator %q: %w", op, types.ErrValidation)
	}

	query := fmt.Sprintf(
		`SELECT city FROM customers WHERE city <> ''
		 %s
		 SELECT city FROM suppliers WHERE city <> ''
		 ORDER BY city`, sqlOp)

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("combine cities (%s): %w", op, classifyError(err))
	}
	defer rows.Close()

	return scanStrings(rows, op)
}

func scanStrings(rows *sql.Rows, context string) ([]string, error) {
	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%s: %w", context, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", context, classifyError(err))
	}
	return out, nil
}
