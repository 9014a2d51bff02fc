package store

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// pivotFixture loads the canonical two-store, three-month fact set.
func pivotFixture(t *testing.T, s *Store) {
	t.Helper()
	facts := []types.MonthlySale{
		{StoreID: 1, Month: "Jan", TotalSales: 5000},
		{StoreID: 1, Month: "Feb", TotalSales: 7000},
		{StoreID: 1, Month: "Mar", TotalSales: 8000},
		{StoreID: 2, Month: "Jan", TotalSales: 6000},
		{StoreID: 2, Month: "Feb", TotalSales: 7500},
		{StoreID: 2, Month: "Mar", TotalSales: 9000},
	}
	for _, f := range facts {
		require.NoError(t, s.SetMonthlySale(f.StoreID, f.Month, f.TotalSales))
	}
}

func TestPivotMonthlySales(t *testing.T) {
	s := setupStore(t)
	pivotFixture(t, s)

	table, err := s.PivotMonthlySales()
	require.NoError(t, err)

	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, int64(1), table.Rows[0].StoreID)
	assert.Equal(t, []float64{5000, 7000, 8000}, table.Rows[0].Cells)
	assert.Equal(t, int64(2), table.Rows[1].StoreID)
	assert.Equal(t, []float64{6000, 7500, 9000}, table.Rows[1].Cells)
}

func TestPivotMissingFactsReportZero(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.SetMonthlySale(1, "Jan", 5000))
	require.NoError(t, s.SetMonthlySale(2, "Feb", 7500))

	table, err := s.PivotMonthlySales()
	require.NoError(t, err)

	assert.Equal(t, []string{"Jan", "Feb"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []float64{5000, 0}, table.Rows[0].Cells)
	assert.Equal(t, []float64{0, 7500}, table.Rows[1].Cells)
}

func TestPivotEmptyFacts(t *testing.T) {
	s := setupStore(t)
	table, err := s.PivotMonthlySales()
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestMonthLabelOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"calendar order beats lexicographic", "Jan", "Feb", true},
		{"calendar order beats lexicographic reversed", "Feb", "Jan", false},
		{"december after january", "Jan", "Dec", true},
		{"recognized before unrecognized", "Dec", "2025-Q1", true},
		{"unrecognized after recognized", "2025-Q1", "Jan", false},
		{"unrecognized fall back to lexicographic", "2025-Q1", "2025-Q2", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lessMonthLabel(tt.a, tt.b))
		})
	}
}

func TestRenderPivotGolden(t *testing.T) {
	s := setupStore(t)
	pivotFixture(t, s)

	table, err := s.PivotMonthlySales()
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "pivot_report", []byte(RenderPivot(table)))
}
