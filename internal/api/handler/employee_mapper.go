package handler

import (
	"github.com/hrops/payroll-system/internal/core/domain"
	"github.com/hrops/payroll-system/internal/core/ports"
)

// --- Request → Service input ---

func toEmployeeInput(req employeeRequest) ports.EmployeeInput {
	return ports.EmployeeInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		RoleID:   req.Role.ID,
	}
}

// --- Domain → HTTP response ---

func toEmployeeResponse(e domain.Employee) employeeResponse {
	return employeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Username: e.Username,
		Role:     toRoleResponse(e.Role),
	}
}

func toEmployeeListResponse(employees []domain.Employee) []employeeResponse {
	out := make([]employeeResponse, len(employees))
	for i, e := range employees {
		out[i] = toEmployeeResponse(e)
	}
	return out
}

func toRoleResponse(r domain.Role) roleResponse {
	return roleResponse{ID: r.ID, Name: r.Name}
}

func toRoleListResponse(roles []domain.Role) []roleResponse {
	out := make([]roleResponse, len(roles))
	for i, r := range roles {
		out[i] = toRoleResponse(r)
	}
	return out
}
