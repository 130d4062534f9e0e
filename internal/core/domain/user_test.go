package domain

import "testing"

func TestParseUserType(t *testing.T) {
	if got, err := ParseUserType("ADMIN"); err != nil || got != UserTypeAdmin {
		t.Errorf("ParseUserType(ADMIN): got %q, %v", got, err)
	}
	if got, err := ParseUserType("USER"); err != nil || got != UserTypeUser {
		t.Errorf("ParseUserType(USER): got %q, %v", got, err)
	}
	if _, err := ParseUserType("SUPERADMIN"); err == nil {
		t.Error("unknown type must be rejected, not treated as a guessed role")
	}
	if _, err := ParseUserType("admin"); err == nil {
		t.Error("lowercase type must be rejected")
	}
}

func TestParseUserStatus(t *testing.T) {
	for _, valid := range []string{"ACTIVE", "BLOCKED", "PENDING"} {
		if _, err := ParseUserStatus(valid); err != nil {
			t.Errorf("ParseUserStatus(%q): unexpected error %v", valid, err)
		}
	}
	if _, err := ParseUserStatus("SUSPENDED"); err == nil {
		t.Error("unknown status must be rejected")
	}
}

func TestIdentity_IsAdmin(t *testing.T) {
	if (Identity{Type: UserTypeUser}).IsAdmin() {
		t.Error("USER must not be admin")
	}
	if !(Identity{Type: UserTypeAdmin}).IsAdmin() {
		t.Error("ADMIN must be admin")
	}
	if (Identity{Type: UserType("ROOT")}).IsAdmin() {
		t.Error("unknown type must not grant admin")
	}
}
