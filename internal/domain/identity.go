package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the authenticated caller as established by the bearer middleware.
type Identity struct {
	UserID uint
	Email  string
	Role   string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func (i Identity) CanModify(ownerID uint) bool {
	return i.IsAdmin() || i.UserID == ownerID
}
