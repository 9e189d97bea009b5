package domain

import (
	"context"
	"strings"
)

// User roles.
const (
	RoleAdministrator = "Administrator"
	RoleEmployee      = "Employee"
)

// UserRoles lists the accepted role values.
var UserRoles = []string{RoleAdministrator, RoleEmployee}

// NormalizeRole maps a case-insensitive role name to its canonical form.
// Unknown roles return the empty string.
func NormalizeRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "administrator", "admin":
		return RoleAdministrator
	case "employee":
		return RoleEmployee
	default:
		return ""
	}
}

// User represents a back-office operator. Users are created by
// administrators; there is no self-registration. Email is unique across
// active and inactive rows so a deactivated account blocks address reuse.
type User struct {
	BaseModel
	SoftDelete
	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:100;not null" json:"-"`
	Role         string `gorm:"size:50;not null" json:"role"`
	NationalID   string `gorm:"size:30" json:"national_id"`
	Phone        string `gorm:"size:30" json:"phone"`
	PhotoPath    string `gorm:"size:300" json:"photo_path"`
}

// UserListConfig drives the listing engine for users. Sorting matches the
// original admin screens: full name ascending with id as tie-breaker.
var UserListConfig = ListConfig{
	SortFields: map[string]string{
		"full_name": "full_name",
		"email":     "email",
		"role":      "role",
	},
	DefaultSortKey:     "full_name",
	TieBreakColumn:     "id",
	SearchColumns:      []string{"full_name", "email"},
	ExactFilterColumns: []string{"role"},
	LikeFilterColumns:  []string{"full_name"},
}

// UserRepository defines the data access interface for users.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint, ignoreActiveFilter bool) (*User, error)
	// GetByEmail is restricted to active users; inactive accounts cannot log in.
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, spec QuerySpec, sel ActiveSelector) (*PagedResult[User], error)
	Update(ctx context.Context, u *User) error
	Deactivate(ctx context.Context, id uint, stamp AuditStamp) error
	Reactivate(ctx context.Context, id uint) error
}

// UserService defines the business logic interface for users.
type UserService interface {
	CreateUser(ctx context.Context, u *User, password string) (*User, error)
	GetUser(ctx context.Context, id uint) (*User, error)
	ListUsers(ctx context.Context, spec QuerySpec, sel ActiveSelector) (*PagedResult[User], error)
	UpdateUser(ctx context.Context, id uint, u *User, newPassword string) (*User, error)
	DeactivateUser(ctx context.Context, id uint, actor Identity) error
	ReactivateUser(ctx context.Context, id uint) error
}
