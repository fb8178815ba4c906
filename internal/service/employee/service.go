package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/vetanhr/payroll-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse joining date: %w", err)
	}

	emp, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode:  req.EmployeeCode,
		FullName:      req.FullName,
		Email:         req.Email,
		Designation:   req.Designation,
		JoiningDate:   joiningDate,
		Status:        employee.StatusActive,
		Salary:        req.Salary,
		BasicSalary:   req.BasicSalary,
		HRA:           req.HRA,
		Allowances:    req.Allowances,
		PFOptIn:       req.PFOptIn,
		ESIApplicable: req.ESIApplicable,
		BankName:      req.BankName,
		BankAccount:   req.BankAccount,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		data = append(data, mapEmployeeResponse(emp))
	}

	return employee.ListEmployeeResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Designation != nil {
		emp.Designation = req.Designation
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	if req.BasicSalary != nil {
		emp.BasicSalary = *req.BasicSalary
	}
	if req.HRA != nil {
		emp.HRA = *req.HRA
	}
	if req.Allowances != nil {
		emp.Allowances = *req.Allowances
	}
	if req.PFOptIn != nil {
		emp.PFOptIn = *req.PFOptIn
	}
	if req.ESIApplicable != nil {
		emp.ESIApplicable = *req.ESIApplicable
	}
	if req.BankName != nil {
		emp.BankName = req.BankName
	}
	if req.BankAccount != nil {
		emp.BankAccount = req.BankAccount
	}

	if emp.BasicSalary.GreaterThan(emp.Salary) {
		return employee.EmployeeResponse{}, fmt.Errorf("basic salary cannot exceed gross salary")
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeResponse(updated), nil
}

func (s *EmployeeServiceImpl) SetStatus(ctx context.Context, id string, status employee.Status) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if emp.Status == status {
		if status == employee.StatusActive {
			return employee.ErrEmployeeAlreadyActive
		}
		return employee.ErrEmployeeAlreadyInactive
	}

	return s.employeeRepo.SetStatus(ctx, id, status)
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

func mapEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		EmployeeCode:  emp.EmployeeCode,
		FullName:      emp.FullName,
		Email:         emp.Email,
		Designation:   emp.Designation,
		JoiningDate:   emp.JoiningDate.Format("2006-01-02"),
		Status:        string(emp.Status),
		Salary:        emp.Salary,
		BasicSalary:   emp.BasicSalary,
		HRA:           emp.HRA,
		Allowances:    emp.Allowances,
		PFOptIn:       emp.PFOptIn,
		ESIApplicable: emp.ESIApplicable,
		BankName:      emp.BankName,
		BankAccount:   emp.BankAccount,
	}
}
