package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

func TestDeleteEmployeeWritesAudit(t *testing.T) {
	s := setupStore(t)
	storeID, err := s.AddStore("Downtown", "12 Main St", nil)
	require.NoError(t, err)
	managerID, err := s.AddEmployee(types.Employee{Name: "Priya", Role: "Director", Salary: 90000})
	require.NoError(t, err)
	clerkID, err := s.AddEmployee(types.Employee{
		Name: "Ravi", Role: "Clerk", StoreID: &storeID, Salary: 32000, ManagerID: &managerID,
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteEmployee(clerkID))

	_, err = s.GetEmployee(clerkID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	records, err := s.ListEmployeeAudit()
	require.NoError(t, err)
	require.Len(t, records, 1, "exactly one audit record per deletion")

	got := records[0]
	assert.Equal(t, clerkID, got.EmployeeID)
	assert.Equal(t, "Ravi", got.Name)
	assert.Equal(t, "Clerk", got.Role)
	require.NotNil(t, got.StoreID)
	assert.Equal(t, storeID, *got.StoreID)
	assert.InDelta(t, 32000.0, got.Salary, 1e-9)
	require.NotNil(t, got.ManagerID)
	assert.Equal(t, managerID, *got.ManagerID)
	assert.False(t, got.DeletedAt.IsZero())
}

func TestDeleteEmployeeNotFoundLeavesNoAudit(t *testing.T) {
	s := setupStore(t)

	assert.ErrorIs(t, s.DeleteEmployee(42), types.ErrNotFound)

	records, err := s.ListEmployeeAudit()
	require.NoError(t, err)
	assert.Empty(t, records, "a failed deletion must not leave an orphan audit record")
}

func TestDeleteEmployeeNullsStoreManager(t *testing.T) {
	s := setupStore(t)
	managerID, err := s.AddEmployee(types.Employee{Name: "Priya", Role: "Manager", Salary: 60000})
	require.NoError(t, err)
	storeID, err := s.AddStore("Downtown", "12 Main St", &managerID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteEmployee(managerID))

	st, err := s.GetStore(storeID)
	require.NoError(t, err)
	assert.Nil(t, st.ManagerID, "the store's manager reference must be nulled, not block the delete")
}

func TestResetEmployeeAudit(t *testing.T) {
	s := setupStore(t)
	for _, name := range []string{"A", "B", "C"} {
		id, err := s.AddEmployee(types.Employee{Name: name, Salary: 1000})
		require.NoError(t, err)
		require.NoError(t, s.DeleteEmployee(id))
	}

	n, err := s.ResetEmployeeAudit()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	records, err := s.ListEmployeeAudit()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDeleteManagerDetachesReports(t *testing.T) {
	s := setupStore(t)
	managerID, err := s.AddEmployee(types.Employee{Name: "Priya", Role: "Manager", Salary: 60000})
	require.NoError(t, err)
	reportID, err := s.AddEmployee(types.Employee{Name: "Ravi", Role: "Clerk", Salary: 30000, ManagerID: &managerID})
	require.NoError(t, err)

	require.NoError(t, s.DeleteEmployee(managerID))

	report, err := s.GetEmployee(reportID)
	require.NoError(t, err)
	assert.Nil(t, report.ManagerID, "reports of a deleted manager become roots")
}
