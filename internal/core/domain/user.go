package domain

import "errors"

// UserType discriminates the two account roles known to the API.
type UserType string

const (
	UserTypeAdmin UserType = "ADMIN"
	UserTypeUser  UserType = "USER"
)

// UserStatus is the account standing reported by the server.
type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBlocked UserStatus = "BLOCKED"
	UserStatusPending UserStatus = "PENDING"
)

var ErrUnknownUserType = errors.New("unknown user type")
var ErrUnknownUserStatus = errors.New("unknown user status")

// ParseUserType converts a wire string into a UserType, rejecting values
// outside the closed set.
func ParseUserType(s string) (UserType, error) {
	switch UserType(s) {
	case UserTypeAdmin, UserTypeUser:
		return UserType(s), nil
	}
	return "", ErrUnknownUserType
}

// ParseUserStatus converts a wire string into a UserStatus.
func ParseUserStatus(s string) (UserStatus, error) {
	switch UserStatus(s) {
	case UserStatusActive, UserStatusBlocked, UserStatusPending:
		return UserStatus(s), nil
	}
	return "", ErrUnknownUserStatus
}

// Identity is the client's cached copy of the authenticated account. It is
// held for display and role gating only; the server remains the source of
// truth. Owned exclusively by the session manager for the lifetime of the
// session and destroyed on logout.
type Identity struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number"`
	Type        UserType   `json:"type"`
	Status      UserStatus `json:"status"`
}

// IsAdmin reports whether the identity may be offered operator controls.
// The server still enforces authorization on every call.
func (i Identity) IsAdmin() bool {
	switch i.Type {
	case UserTypeAdmin:
		return true
	case UserTypeUser:
		return false
	}
	return false
}
