package models

import (
	"testing"
)

func TestMessageTemplate_OpenRate(t *testing.T) {
	tmpl := &MessageTemplate{TimesSent: 20, TimesOpened: 5}
	if got := tmpl.OpenRate(); got != 25 {
		t.Errorf("OpenRate() = %v, want 25", got)
	}
}

func TestMessageTemplate_OpenRate_NoSends(t *testing.T) {
	tmpl := &MessageTemplate{}
	if got := tmpl.OpenRate(); got != 0 {
		t.Errorf("OpenRate() = %v, want 0 when nothing sent", got)
	}
}

func TestMessageTemplate_ResponseRate(t *testing.T) {
	tmpl := &MessageTemplate{TimesSent: 10, TimesResponded: 3}
	if got := tmpl.ResponseRate(); got != 30 {
		t.Errorf("ResponseRate() = %v, want 30", got)
	}

	empty := &MessageTemplate{}
	if got := empty.ResponseRate(); got != 0 {
		t.Errorf("ResponseRate() = %v, want 0 when nothing sent", got)
	}
}

func TestUser_PasswordRoundTrip(t *testing.T) {
	u := &User{Username: "admin"}
	if err := u.SetPassword("s3cret"); err != nil {
		t.Fatalf("SetPassword() error: %v", err)
	}
	if u.PasswordHash == "" {
		t.Fatal("expected password hash to be set")
	}
	if u.PasswordHash == "s3cret" {
		t.Fatal("password must not be stored in plaintext")
	}

	if !u.CheckPassword("s3cret") {
		t.Error("CheckPassword() should accept the original password")
	}
	if u.CheckPassword("wrong") {
		t.Error("CheckPassword() should reject a wrong password")
	}
}
