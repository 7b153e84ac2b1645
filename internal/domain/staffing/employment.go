package staffing

import "github.com/salonops/salon-scheduler/internal/httperr"

type EmploymentType string

const (
	EmploymentEmployee   EmploymentType = "employee"
	EmploymentFreelancer EmploymentType = "freelancer"
)

func ValidEmploymentType(t EmploymentType) bool {
	return t == EmploymentEmployee || t == EmploymentFreelancer
}

// AssertEmploymentUnchanged guards the immutability of the employment type
// on an existing membership. An empty requested value means "not changing".
func AssertEmploymentUnchanged(current, requested EmploymentType) error {
	if requested == "" || requested == current {
		return nil
	}
	return httperr.ErrBusiness("employment_type_immutable")
}
