package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/orderdesk/pkg/auth"
)

func TestNewUser(t *testing.T) {
	u := NewUser("Ana Lima", "ana@example.com", "hash", auth.RoleCashier)
	if u.ID == uuid.Nil {
		t.Fatal("expected generated ID")
	}
	if u.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	p := u.Principal()
	if p.UserID != u.ID || p.Role != auth.RoleCashier || p.Email != "ana@example.com" {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestUser_RoleLabel(t *testing.T) {
	u := &User{}
	if got := u.RoleLabel(); got != NoRoleLabel {
		t.Fatalf("expected %q, got %q", NoRoleLabel, got)
	}
	u.Role = auth.RoleAccountant
	if got := u.RoleLabel(); got != "Accountant" {
		t.Fatalf("expected Accountant, got %q", got)
	}
}

func TestNormalizeFullName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"  Ana Lima ", "Ana Lima", false},
		{strings.Repeat("a", 100), strings.Repeat("a", 100), false},
		{"", "", true},
		{"   ", "", true},
		{strings.Repeat("a", 101), "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeFullName(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("NormalizeFullName(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("NormalizeFullName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{" Ana@Example.COM ", "ana@example.com", false},
		{"bob@example.org", "bob@example.org", false},
		{"", "", true},
		{"not-an-email", "", true},
		{"Ana <ana@example.com>", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeEmail(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("NormalizeEmail(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
