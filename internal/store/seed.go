package store

import (
	"fmt"
	"time"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// Seed loads a small deterministic sample dataset: two stores, a
// seven-employee reporting forest, suppliers, products, a handful of
// orders placed through the stock enforcer, payments, and the
// monthly-sales facts the pivot report demonstrates. Seeding a database
// that already holds stores is a no-op, so it is safe to re-run.
func (s *Store) Seed() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM stores").Scan(&count); err != nil {
		return fmt.Errorf("seed: %w", classifyError(err))
	}
	if count > 0 {
		return nil
	}

	downtown, err := s.AddStore("Downtown", "12 Main St", nil)
	if err != nil {
		return fmt.Errorf("seed stores: %w", err)
	}
	riverside, err := s.AddStore("Riverside", "4 Quay Rd", nil)
	if err != nil {
		return fmt.Errorf("seed stores: %w", err)
	}

	// Reporting forest: one director, two store managers, four clerks.
	director, err := s.AddEmployee(types.Employee{Name: "Priya Nair", Role: "Director", Salary: 95000})
	if err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}
	mgr1, err := s.AddEmployee(types.Employee{Name: "Arun Kumar", Role: "Manager", StoreID: &downtown, Salary: 62000, ManagerID: &director})
	if err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}
	mgr2, err := s.AddEmployee(types.Employee{Name: "Meena Iyer", Role: "Manager", StoreID: &riverside, Salary: 61000, ManagerID: &director})
	if err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}
	clerks := []types.Employee{
		{Name: "Ravi Shankar", Role: "Clerk", StoreID: &downtown, Salary: 32000, ManagerID: &mgr1},
		{Name: "Lakshmi Devi", Role: "Clerk", StoreID: &downtown, Salary: 31000, ManagerID: &mgr1},
		{Name: "Suresh Babu", Role: "Clerk", StoreID: &riverside, Salary: 30000, ManagerID: &mgr2},
		{Name: "Anita Rao", Role: "Cashier", StoreID: &riverside, Salary: 29000, ManagerID: &mgr2},
	}
	for _, c := range clerks {
		if _, err := s.AddEmployee(c); err != nil {
			return fmt.Errorf("seed employees: %w", err)
		}
	}
	for storeID, managerID := range map[int64]int64{downtown: mgr1, riverside: mgr2} {
		if _, err := s.db.Exec("UPDATE stores SET manager_id = ? WHERE store_id = ?", managerID, storeID); err != nil {
			return fmt.Errorf("seed store managers: %w", classifyError(err))
		}
	}

	freshFarms, err := s.AddSupplier("Fresh Farms", "G. Patel", "900-110-2200", "Pune")
	if err != nil {
		return fmt.Errorf("seed suppliers: %w", err)
	}
	dailyGoods, err := s.AddSupplier("Daily Goods Co", "R. Singh", "900-110-3300", "Mumbai")
	if err != nil {
		return fmt.Errorf("seed suppliers: %w", err)
	}

	products := []types.Product{
		{Name: "Basmati Rice 5kg", Category: "Grocery", Price: 12.50, Stock: 120, SupplierID: &freshFarms},
		{Name: "Sunflower Oil 1L", Category: "Grocery", Price: 4.20, Stock: 200, SupplierID: &freshFarms},
		{Name: "Laundry Soap", Category: "Household", Price: 1.10, Stock: 500, SupplierID: &dailyGoods},
		{Name: "Steel Bottle", Category: "Household", Price: 8.75, Stock: 60, SupplierID: &dailyGoods},
	}
	productIDs := make([]int64, len(products))
	for i, p := range products {
		id, err := s.AddProduct(p)
		if err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		productIDs[i] = id
	}

	customers := [][4]string{
		{"Kiran Mehta", "kiran@example.com", "98100-11111", "Pune"},
		{"Divya Joshi", "divya@example.com", "98100-22222", "Mumbai"},
		{"Rahul Verma", "rahul@example.com", "98100-33333", "Pune"},
	}
	customerIDs := make([]int64, len(customers))
	for i, c := range customers {
		id, err := s.AddCustomer(c[0], c[1], c[2], c[3])
		if err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
		customerIDs[i] = id
	}

	// Orders go through the regular operations so line items pass the
	// stock enforcer and order totals stay derived from items.
	type seedItem struct {
		product int
		qty     int64
	}
	seedOrders := []struct {
		customer int
		store    int64
		date     time.Time
		items    []seedItem
		complete bool
		payment  string
	}{
		{0, downtown, time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
			[]seedItem{{0, 2}, {2, 5}}, true, "card"},
		{1, riverside, time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC),
			[]seedItem{{1, 3}, {3, 1}}, true, "cash"},
		{2, downtown, time.Date(2025, 7, 2, 9, 15, 0, 0, time.UTC),
			[]seedItem{{0, 1}, {1, 2}, {2, 10}}, false, ""},
	}
	for _, so := range seedOrders {
		storeID := so.store
		orderID, err := s.CreateOrder(customerIDs[so.customer], &storeID, so.date)
		if err != nil {
			return fmt.Errorf("seed orders: %w", err)
		}
		for _, it := range so.items {
			p := products[it.product]
			if _, err := s.AddOrderItem(orderID, productIDs[it.product], it.qty, p.Price); err != nil {
				return fmt.Errorf("seed order items: %w", err)
			}
		}
		if so.complete {
			o, err := s.GetOrder(orderID)
			if err != nil {
				return fmt.Errorf("seed orders: %w", err)
			}
			if _, err := s.AddPayment(orderID, o.TotalAmount, so.payment); err != nil {
				return fmt.Errorf("seed payments: %w", err)
			}
			if err := s.CompleteOrder(orderID); err != nil {
				return fmt.Errorf("seed orders: %w", err)
			}
		}
	}

	// Monthly-sales facts for the pivot demonstration.
	facts := []types.MonthlySale{
		{StoreID: downtown, Month: "Jan", TotalSales: 5000},
		{StoreID: downtown, Month: "Feb", TotalSales: 7000},
		{StoreID: downtown, Month: "Mar", TotalSales: 8000},
		{StoreID: riverside, Month: "Jan", TotalSales: 6000},
		{StoreID: riverside, Month: "Feb", TotalSales: 7500},
		{StoreID: riverside, Month: "Mar", TotalSales: 9000},
	}
	for _, f := range facts {
		if err := s.SetMonthlySale(f.StoreID, f.Month, f.TotalSales); err != nil {
			return fmt.Errorf("seed monthly sales: %w", err)
		}
	}
	return nil
}
