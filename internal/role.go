package internal

type Role string

const (
	RoleMember Role = "member"
	RoleStaff  Role = "staff"
)

type Capability string

const (
	CapReviewBorrowRequests  Capability = "borrow_requests:review"
	CapViewAllBorrowRequests Capability = "borrow_requests:view_all"
)

var roleCapabilities = map[Role][]Capability{
	RoleMember: {},
	RoleStaff: {
		CapReviewBorrowRequests,
		CapViewAllBorrowRequests,
	},
}

func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

func (r Role) Can(c Capability) bool {
	for _, granted := range roleCapabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}

// ParseRole falls back to RoleMember for unknown values.
func ParseRole(s string) Role {
	r := Role(s)
	if r.Valid() {
		return r
	}
	return RoleMember
}
