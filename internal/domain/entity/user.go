package entity

// Role determines the layout and the actions a user is allowed to take.
// It is immutable once set on the server.
type Role string

const (
	RoleStudent Role = "student"
	RoleMentor  Role = "mentor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleMentor
}

// User is a session snapshot of the authenticated account.
// Created on the auth callback, mutated on profile edits, cleared on logout.
type User struct {
	ID          string            `json:"id"`
	Username    string            `json:"username"`
	Email       string            `json:"email"`
	Name        string            `json:"name"`
	Avatar      string            `json:"avatar,omitempty"`
	Role        Role              `json:"role"`
	Bio         string            `json:"bio,omitempty"`
	Skills      []string          `json:"skills,omitempty"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
}
