package domain

import "time"

type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleDeveloper  Role = "DEVELOPER"
)

// Home — стартовая страница для роли после входа.
func (r Role) Home() string {
	switch r {
	case RoleSuperAdmin:
		return "/super-admin"
	case RoleDeveloper:
		return "/developer"
	case RoleAdmin:
		return "/admin"
	default:
		return "/"
	}
}

type UserStatus string

const (
	StatusActive  UserStatus = "ACTIVE"
	StatusBlocked UserStatus = "BLOCKED"
)

type User struct {
	ID           string
	Email        string // всегда в нижнем регистре, без пробелов
	Username     string
	FirstName    string
	LastName     string
	Role         Role
	Status       UserStatus
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUserParams struct {
	Email        string
	Username     string
	FirstName    string
	LastName     string
	Role         Role
	PasswordHash string
}

type UserRepo interface {
	Create(p CreateUserParams) (*User, error)
	GetByID(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	ExistsByEmail(email string) (bool, error)
	ExistsByUsername(username string) (bool, error)
	UpdatePassword(userID string, newHash string) error
	UpdateProfile(userID string, firstName *string, lastName *string) error
}
