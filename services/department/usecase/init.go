// Package usecase implements the department service's business logic.
package usecase

import (
	"github.com/traviq/traviq-backend/services/department"
)

// DepartmentUC implements the department usecases
type DepartmentUC struct {
	departmentRepo department.DepartmentRepo
}

// NewDepartmentUC creates a new department usecase instance
func NewDepartmentUC(departmentRepo department.DepartmentRepo) *DepartmentUC {
	return &DepartmentUC{departmentRepo: departmentRepo}
}
