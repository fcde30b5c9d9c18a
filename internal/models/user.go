package models

// Role values returned by the backend on login/verify.
const RoleAdmin = "admin"

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// IsAdmin is the single derivation point for the admin flag. Nothing else in
// the codebase may compare Role against RoleAdmin directly.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Session is a point-in-time snapshot of the auth slice, returned by value so
// callers never alias store internals.
type Session struct {
	User            *User
	IsAuthenticated bool
	AccessToken     string
	RefreshToken    string
	Loading         bool
	Error           string
}

func (s Session) IsAdmin() bool {
	return s.IsAuthenticated && s.User.IsAdmin()
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResult is the payload of a successful login, register or refresh call.
type AuthResult struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
