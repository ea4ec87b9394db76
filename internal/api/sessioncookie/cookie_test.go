package sessioncookie

import (
	"testing"
	"time"
)

func TestMintParseRoundTrip(t *testing.T) {
	token, err := Mint("secret", "sid-1", time.Hour)
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	sid, err := Parse("secret", token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if sid != "sid-1" {
		t.Fatalf("sid = %q", sid)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	token, _ := Mint("secret", "sid-1", time.Hour)
	if _, err := Parse("other", token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParse_Expired(t *testing.T) {
	token, _ := Mint("secret", "sid-1", -time.Minute)
	if _, err := Parse("secret", token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParse_Garbage(t *testing.T) {
	if _, err := Parse("secret", "not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCookies(t *testing.T) {
	c := New("gt_session", "tok", time.Hour)
	if !c.HttpOnly || c.Path != "/" || c.MaxAge != 3600 {
		t.Fatalf("unexpected cookie: %+v", c)
	}

	e := Expired("gt_session")
	if e.MaxAge >= 0 || e.Value != "" {
		t.Fatalf("expired cookie must clear: %+v", e)
	}
}
