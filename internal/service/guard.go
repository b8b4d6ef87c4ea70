package service

import "github.com/emshaw/inkwell/internal/domain"

// Guard is the authorization gate. The blog has exactly one administrator,
// identified by a designated user id rather than a role column; by default
// that is the first account ever created.
type Guard struct {
	adminID int64
}

// NewGuard creates a Guard with the designated administrator id.
func NewGuard(adminID int64) *Guard {
	return &Guard{adminID: adminID}
}

// RequireAuthenticated permits any logged-in user. A nil user is anonymous.
func (g *Guard) RequireAuthenticated(user *domain.User) error {
	if user == nil {
		return domain.ErrUnauthorized
	}
	return nil
}

// RequireAdmin permits only the designated administrator. Anonymous callers
// and every other user are rejected with domain.ErrForbidden.
func (g *Guard) RequireAdmin(user *domain.User) error {
	if user == nil || user.ID != g.adminID {
		return domain.ErrForbidden
	}
	return nil
}

// IsAdmin reports whether the user is the designated administrator. Used by
// templates to decide whether to show the management links.
func (g *Guard) IsAdmin(user *domain.User) bool {
	return user != nil && user.ID == g.adminID
}
