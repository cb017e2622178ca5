package enums

// UserRole partitions accounts for role-based access control.
type UserRole string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleVendor   UserRole = "VENDOR"
	UserRoleAdmin    UserRole = "ADMIN"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCustomer, UserRoleVendor, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) String() string {
	return string(r)
}
