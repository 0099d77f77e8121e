package domain

import (
	"context"
	"time"
)

// Role constants
const (
	RoleJobSeeker = "jobseeker"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

// ValidRoles for setup validation. Admin accounts are provisioned manually
// and are not a selectable role.
var ValidRoles = []string{RoleJobSeeker, RoleEmployer}

type User struct {
	ID                string    `json:"id"` // Supabase UUID
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	IsFirstLogin      bool      `json:"is_first_login"`
	HasCompletedSetup bool      `json:"has_completed_setup"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	// CompleteSetup sets the role once, clears the first-login flag and marks
	// setup as done. Must not overwrite an already-assigned role.
	CompleteSetup(ctx context.Context, userID, role, name string) error
}

type AuthUsecase interface {
	EnsureUserExists(ctx context.Context, user *User) error
	GetCurrentUser(ctx context.Context, id string) (*User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CompleteSetup(ctx context.Context, userID, role, name string) (*User, error)
}
