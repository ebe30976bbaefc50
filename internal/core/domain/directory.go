package domain

// DepartmentOption is a (code, label) pair used for department dropdowns.
type DepartmentOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Departments lists the registered departments in display order.
var Departments = []DepartmentOption{
	{Code: "ADM", Label: "Administrative Office"},
	{Code: "SOE", Label: "School of Engineering"},
	{Code: "SLS", Label: "School of Life Sciences"},
}

// subDepartments maps a department code to its ordered sub-department options.
var subDepartments = map[string][]DepartmentOption{
	"ADM": {
		{Code: "Sessional-Head", Label: "Sessional Head"},
		{Code: "ADM-Research", Label: "ADM Research"},
		{Code: "B-Employee", Label: "B Employee"},
	},
	"SOE": {
		{Code: "CSE", Label: "Department of Computer Science"},
		{Code: "CE", Label: "Department of Civil"},
		{Code: "ECE", Label: "Department of Electronics"},
		{Code: "ME", Label: "Department of Mechanical"},
		{Code: "EE", Label: "Department of Electrical"},
	},
	"SLS": {
		{Code: "xxxxx", Label: "xxxx"},
		{Code: "yyyyy", Label: "yyyy"},
	},
}

// SubDepartmentsFor returns the sub-department options for a department code.
// Unknown codes yield an empty slice, never an error.
func SubDepartmentsFor(department string) []DepartmentOption {
	opts, ok := subDepartments[department]
	if !ok {
		return []DepartmentOption{}
	}
	out := make([]DepartmentOption, len(opts))
	copy(out, opts)
	return out
}

// IsKnownDepartment reports whether the code is one of the registered departments.
func IsKnownDepartment(department string) bool {
	for _, d := range Departments {
		if d.Code == department {
			return true
		}
	}
	return false
}
