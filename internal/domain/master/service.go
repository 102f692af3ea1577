package master

import (
	"context"

	"github.com/pontohr/ponto-backend-go/internal/domain/master/department"
	"github.com/pontohr/ponto-backend-go/internal/domain/master/employmenttype"
	"github.com/pontohr/ponto-backend-go/internal/domain/master/function"
	"github.com/pontohr/ponto-backend-go/internal/domain/master/justificationtype"
)

// MasterService manages the reference data catalogs. All writes are admin
// only; reads are open to any authenticated user.
type MasterService interface {
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context, includeInactive bool) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	ToggleDepartment(ctx context.Context, id string, active bool) (department.DepartmentResponse, error)

	CreateFunction(ctx context.Context, req function.CreateFunctionRequest) (function.FunctionResponse, error)
	ListFunctions(ctx context.Context, includeInactive bool) ([]function.FunctionResponse, error)
	UpdateFunction(ctx context.Context, req function.UpdateFunctionRequest) (function.FunctionResponse, error)
	ToggleFunction(ctx context.Context, id string, active bool) (function.FunctionResponse, error)

	CreateEmploymentType(ctx context.Context, req employmenttype.CreateEmploymentTypeRequest) (employmenttype.EmploymentTypeResponse, error)
	ListEmploymentTypes(ctx context.Context, includeInactive bool) ([]employmenttype.EmploymentTypeResponse, error)
	UpdateEmploymentType(ctx context.Context, req employmenttype.UpdateEmploymentTypeRequest) (employmenttype.EmploymentTypeResponse, error)
	ToggleEmploymentType(ctx context.Context, id string, active bool) (employmenttype.EmploymentTypeResponse, error)

	CreateJustificationType(ctx context.Context, req justificationtype.CreateJustificationTypeRequest) (justificationtype.JustificationTypeResponse, error)
	ListJustificationTypes(ctx context.Context, includeInactive bool) ([]justificationtype.JustificationTypeResponse, error)
	UpdateJustificationType(ctx context.Context, req justificationtype.UpdateJustificationTypeRequest) (justificationtype.JustificationTypeResponse, error)
	ToggleJustificationType(ctx context.Context, id string, active bool) (justificationtype.JustificationTypeResponse, error)
}
