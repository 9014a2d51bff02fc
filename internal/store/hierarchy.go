package store

import (
	"sort"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// Hierarchy resolves the full reporting forest as a flattened,
// level-annotated sequence: roots (employees without a manager) at level
// 0, each report one level below its manager, ordered by level and then by
// employee ID. The traversal expands a frontier over an in-memory
// adjacency map, one manager hop per round, so it terminates regardless of
// chain depth. Employees whose manager chain never reaches a root (a cycle
// or a dangling manager reference) are omitted from the output.
func (s *Store) Hierarchy() ([]types.EmployeeLevel, error) {
	employees, err := s.ListEmployees()
	if err != nil {
		return nil, err
	}
	return resolveHierarchy(employees), nil
}

func resolveHierarchy(employees []types.Employee) []types.EmployeeLevel {
	byID := make(map[int64]types.Employee, len(employees))
	children := make(map[int64][]int64)
	var roots []int64
	for _, e := range employees {
		byID[e.EmployeeID] = e
		if e.ManagerID == nil {
			roots = append(roots, e.EmployeeID)
		} else {
			children[*e.ManagerID] = append(children[*e.ManagerID], e.EmployeeID)
		}
	}

	var resolved []types.EmployeeLevel
	frontier := roots
	for level := 0; len(frontier) > 0; level++ {
		sort.Slice(frontier, func(i, j int) bool { return frontier[i] < frontier[j] })

		var next []int64
		for _, id := range frontier {
			resolved = append(resolved, types.EmployeeLevel{Employee: byID[id], Level: level})
			next = append(next, children[id]...)
		}
		frontier = next
	}
	return resolved
}
