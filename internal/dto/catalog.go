package dto

// CreateAllocatedPostRequest creates a new post instance in the caller's
// department scope from an existing catalog post name.
type CreateAllocatedPostRequest struct {
	PostNameID  string `json:"postNameID" binding:"required"`
	Description string `json:"description"`
}

// CreateCatalogNameRequest adds a new entry to one of the global name
// catalogs (post names or duty names).
type CreateCatalogNameRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// AllocatePostRequest assigns an existing allocated post to an employee.
type AllocatePostRequest struct {
	AllocatedPostID string `json:"allocatedPostID" binding:"required"`
}

// AssignDutyRequest assigns a catalog duty name to an employee.
type AssignDutyRequest struct {
	EmployeeID  string `json:"employeeID" binding:"required"`
	DutyNameID  string `json:"dutyNameID" binding:"required"`
	Description string `json:"description"`
}

// ProvisionEmployeeRequest creates a new employee account in the caller's
// department with the documented default password.
type ProvisionEmployeeRequest struct {
	EmployeeID      string `json:"employeeID" binding:"required,max=20"`
	Username        string `json:"username" binding:"required"`
	AllocatedPostID string `json:"allocatedPostID" binding:"required"`
}

// ProvisionEmployeeResponse reports the created account and its initial
// password so the head can hand it over.
type ProvisionEmployeeResponse struct {
	EmployeeID      string `json:"employeeID"`
	Username        string `json:"username"`
	InitialPassword string `json:"initialPassword"`
}
