package models

// DepartmentCreatePayload is the request body for POST /department.
type DepartmentCreatePayload struct {
	DepartmentName string `json:"departmentName"`
}

// SalaryAssignmentPayload is the request body for PATCH /department and
// PATCH /department/employee. Optional fields are pointers so that an
// absent value reaches the routine as NULL.
type SalaryAssignmentPayload struct {
	DepartmentID           *int     `json:"departmentID"`
	Salary                 *float64 `json:"salary"`
	ChildrenQuantity       *int     `json:"childrenQuantity"`
	HasSpouse              *bool    `json:"hasSpouse"`
	ContributionPercentage *float64 `json:"contributionPercentage"`
}

// MembershipInsertPayload is the request body for PUT /department.
type MembershipInsertPayload struct {
	DepartmentID *int    `json:"departmentID"`
	CardIDs      []int64 `json:"cardIDs"`
}
