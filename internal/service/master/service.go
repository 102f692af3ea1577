package master

import (
	"context"

	"github.com/pontohr/ponto-backend-go/internal/domain/master"
	"github.com/pontohr/ponto-backend-go/internal/domain/master/department"
	"github.com/pontohr/ponto-backend-go/internal/domain/master/employmenttype"
	"github.com/pontohr/ponto-backend-go/internal/domain/master/function"
	"github.com/pontohr/ponto-backend-go/internal/domain/master/justificationtype"
)

type MasterServiceImpl struct {
	departmentRepo        department.DepartmentRepository
	functionRepo          function.FunctionRepository
	employmentTypeRepo    employmenttype.EmploymentTypeRepository
	justificationTypeRepo justificationtype.JustificationTypeRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	functionRepo function.FunctionRepository,
	employmentTypeRepo employmenttype.EmploymentTypeRepository,
	justificationTypeRepo justificationtype.JustificationTypeRepository,
) master.MasterService {
	return &MasterServiceImpl{
		departmentRepo:        departmentRepo,
		functionRepo:          functionRepo,
		employmentTypeRepo:    employmentTypeRepo,
		justificationTypeRepo: justificationTypeRepo,
	}
}

// CreateDepartment implements master.MasterService.
func (s *MasterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(created), nil
}

// ListDepartments implements master.MasterService.
func (s *MasterServiceImpl) ListDepartments(ctx context.Context, includeInactive bool) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.ToResponse(d))
	}
	return responses, nil
}

// UpdateDepartment implements master.MasterService.
func (s *MasterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	updated, err := s.departmentRepo.Update(ctx, req)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(updated), nil
}

// ToggleDepartment implements master.MasterService.
func (s *MasterServiceImpl) ToggleDepartment(ctx context.Context, id string, active bool) (department.DepartmentResponse, error) {
	toggled, err := s.departmentRepo.ToggleStatus(ctx, id, active)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToResponse(toggled), nil
}

// CreateFunction implements master.MasterService.
func (s *MasterServiceImpl) CreateFunction(ctx context.Context, req function.CreateFunctionRequest) (function.FunctionResponse, error) {
	if err := req.Validate(); err != nil {
		return function.FunctionResponse{}, err
	}

	created, err := s.functionRepo.Create(ctx, function.Function{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return function.FunctionResponse{}, err
	}

	return function.ToResponse(created), nil
}

// ListFunctions implements master.MasterService.
func (s *MasterServiceImpl) ListFunctions(ctx context.Context, includeInactive bool) ([]function.FunctionResponse, error) {
	functions, err := s.functionRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	responses := make([]function.FunctionResponse, 0, len(functions))
	for _, f := range functions {
		responses = append(responses, function.ToResponse(f))
	}
	return responses, nil
}

// UpdateFunction implements master.MasterService.
func (s *MasterServiceImpl) UpdateFunction(ctx context.Context, req function.UpdateFunctionRequest) (function.FunctionResponse, error) {
	if err := req.Validate(); err != nil {
		return function.FunctionResponse{}, err
	}

	updated, err := s.functionRepo.Update(ctx, req)
	if err != nil {
		return function.FunctionResponse{}, err
	}

	return function.ToResponse(updated), nil
}

// ToggleFunction implements master.MasterService.
func (s *MasterServiceImpl) ToggleFunction(ctx context.Context, id string, active bool) (function.FunctionResponse, error) {
	toggled, err := s.functionRepo.ToggleStatus(ctx, id, active)
	if err != nil {
		return function.FunctionResponse{}, err
	}
	return function.ToResponse(toggled), nil
}

// CreateEmploymentType implements master.MasterService.
func (s *MasterServiceImpl) CreateEmploymentType(ctx context.Context, req employmenttype.CreateEmploymentTypeRequest) (employmenttype.EmploymentTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return employmenttype.EmploymentTypeResponse{}, err
	}

	created, err := s.employmentTypeRepo.Create(ctx, employmenttype.EmploymentType{
		Name:           req.Name,
		Description:    req.Description,
		DailyWorkHours: req.DailyWorkHours,
	})
	if err != nil {
		return employmenttype.EmploymentTypeResponse{}, err
	}

	return employmenttype.ToResponse(created), nil
}

// ListEmploymentTypes implements master.MasterService.
func (s *MasterServiceImpl) ListEmploymentTypes(ctx context.Context, includeInactive bool) ([]employmenttype.EmploymentTypeResponse, error) {
	types, err := s.employmentTypeRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	responses := make([]employmenttype.EmploymentTypeResponse, 0, len(types))
	for _, e := range types {
		responses = append(responses, employmenttype.ToResponse(e))
	}
	return responses, nil
}

// UpdateEmploymentType implements master.MasterService.
func (s *MasterServiceImpl) UpdateEmploymentType(ctx context.Context, req employmenttype.UpdateEmploymentTypeRequest) (employmenttype.EmploymentTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return employmenttype.EmploymentTypeResponse{}, err
	}

	updated, err := s.employmentTypeRepo.Update(ctx, req)
	if err != nil {
		return employmenttype.EmploymentTypeResponse{}, err
	}

	return employmenttype.ToResponse(updated), nil
}

// ToggleEmploymentType implements master.MasterService.
func (s *MasterServiceImpl) ToggleEmploymentType(ctx context.Context, id string, active bool) (employmenttype.EmploymentTypeResponse, error) {
	toggled, err := s.employmentTypeRepo.ToggleStatus(ctx, id, active)
	if err != nil {
		return employmenttype.EmploymentTypeResponse{}, err
	}
	return employmenttype.ToResponse(toggled), nil
}

// CreateJustificationType implements master.MasterService.
func (s *MasterServiceImpl) CreateJustificationType(ctx context.Context, req justificationtype.CreateJustificationTypeRequest) (justificationtype.JustificationTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return justificationtype.JustificationTypeResponse{}, err
	}

	created, err := s.justificationTypeRepo.Create(ctx, justificationtype.JustificationType{
		Name:                    req.Name,
		Description:             req.Description,
		RequiresDocumentation:   req.RequiresDocumentation,
		RequiresRecordSelection: req.RequiresRecordSelection,
	})
	if err != nil {
		return justificationtype.JustificationTypeResponse{}, err
	}

	return justificationtype.ToResponse(created), nil
}

// ListJustificationTypes implements master.MasterService.
func (s *MasterServiceImpl) ListJustificationTypes(ctx context.Context, includeInactive bool) ([]justificationtype.JustificationTypeResponse, error) {
	types, err := s.justificationTypeRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	responses := make([]justificationtype.JustificationTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, justificationtype.ToResponse(t))
	}
	return responses, nil
}

// UpdateJustificationType implements master.MasterService.
func (s *MasterServiceImpl) UpdateJustificationType(ctx context.Context, req justificationtype.UpdateJustificationTypeRequest) (justificationtype.JustificationTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return justificationtype.JustificationTypeResponse{}, err
	}

	updated, err := s.justificationTypeRepo.Update(ctx, req)
	if err != nil {
		return justificationtype.JustificationTypeResponse{}, err
	}

	return justificationtype.ToResponse(updated), nil
}

// ToggleJustificationType implements master.MasterService.
func (s *MasterServiceImpl) ToggleJustificationType(ctx context.Context, id string, active bool) (justificationtype.JustificationTypeResponse, error) {
	toggled, err := s.justificationTypeRepo.ToggleStatus(ctx, id, active)
	if err != nil {
		return justificationtype.JustificationTypeResponse{}, err
	}
	return justificationtype.ToResponse(toggled), nil
}
