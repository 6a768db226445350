package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// roleRefRequest references an existing role by id, mirroring the stored
// role reference on the employee record.
type roleRefRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

type employeeRequest struct {
	Name     string         `json:"name"     validate:"required"`
	Username string         `json:"username" validate:"required"`
	Password string         `json:"password"`
	Role     roleRefRequest `json:"role"     validate:"required"`
}

type roleRequest struct {
	Name string `json:"name" validate:"required"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes. The password hash has no representation here.

type roleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type employeeResponse struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Username string       `json:"username"`
	Role     roleResponse `json:"role"`
}
