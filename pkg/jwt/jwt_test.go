package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var issuedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestSignParseRoundTrip(t *testing.T) {
	key := []byte("secret")
	token, err := Sign("acc-1", key, time.Hour, issuedAt)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	id, err := Parse(token, key, issuedAt)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if id != "acc-1" {
		t.Fatalf("account id = %q, want %q", id, "acc-1")
	}
}

func TestSignIsDeterministic(t *testing.T) {
	key := []byte("secret")
	a, err := Sign("acc-1", key, time.Hour, issuedAt)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	b, err := Sign("acc-1", key, time.Hour, issuedAt)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if a != b {
		t.Fatal("expected identical tokens for identical inputs")
	}
}

func TestParseExpired(t *testing.T) {
	key := []byte("secret")
	token, err := Sign("acc-1", key, time.Hour, issuedAt)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	tests := []struct {
		name string
		at   time.Time
	}{
		{"exactly at expiry", issuedAt.Add(time.Hour)},
		{"after expiry", issuedAt.Add(2 * time.Hour)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(token, key, tt.at)
			if got := KindOf(err); got != Expired {
				t.Fatalf("kind = %v, want %v (err=%v)", got, Expired, err)
			}
		})
	}

	if _, err := Parse(token, key, issuedAt.Add(time.Hour-time.Second)); err != nil {
		t.Fatalf("token should still be valid one second before expiry: %v", err)
	}
}

func TestIssueExpiryMatchesClaim(t *testing.T) {
	now := issuedAt.Add(900 * time.Millisecond)
	m, err := NewManager("secret", time.Hour, "wes-social", WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, exp, err := m.Issue("acc-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if want := issuedAt.Add(time.Hour).Unix(); exp != want {
		t.Fatalf("expiresAt = %d, want %d", exp, want)
	}

	expiry := time.Unix(exp, 0)
	now = expiry.Add(-time.Nanosecond)
	if _, err := m.Verify(token); err != nil {
		t.Fatalf("token should be valid just before expiresAt: %v", err)
	}
	now = expiry
	if _, err := m.Verify(token); KindOf(err) != Expired {
		t.Fatalf("expected Expired at expiresAt, got %v", err)
	}
}

func TestParseWrongKey(t *testing.T) {
	token, err := Sign("acc-1", []byte("other"), time.Hour, issuedAt)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	_, err = Parse(token, []byte("secret"), issuedAt)
	if got := KindOf(err); got != SignatureInvalid {
		t.Fatalf("kind = %v, want %v", got, SignatureInvalid)
	}
}

func TestParseTampered(t *testing.T) {
	key := []byte("secret")
	token, err := Sign("acc-1", key, time.Hour, issuedAt)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	forged, err := Sign("acc-2", []byte("attacker"), time.Hour, issuedAt)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	// Keep the original signature but swap in another payload.
	parts := strings.Split(token, ".")
	forgedParts := strings.Split(forged, ".")
	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]

	_, err = Parse(tampered, key, issuedAt)
	if got := KindOf(err); got != SignatureInvalid {
		t.Fatalf("kind = %v, want %v", got, SignatureInvalid)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, token := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := Parse(token, []byte("secret"), issuedAt)
		if got := KindOf(err); got != Malformed {
			t.Errorf("Parse(%q) kind = %v, want %v", token, got, Malformed)
		}
	}
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(issuedAt.Add(time.Hour)),
		},
		AccountID: "acc-1",
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	_, err = Parse(token, []byte("secret"), issuedAt)
	if got := KindOf(err); got != SignatureInvalid {
		t.Fatalf("kind = %v, want %v", got, SignatureInvalid)
	}
}

func TestSignWithoutKey(t *testing.T) {
	if _, err := Sign("acc-1", nil, time.Hour, issuedAt); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("err = %v, want ErrMissingSecret", err)
	}
}

func TestNewManagerValidation(t *testing.T) {
	if _, err := NewManager("", time.Hour, "wes-social"); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("err = %v, want ErrMissingSecret", err)
	}
	if _, err := NewManager("secret", 0, "wes-social"); err == nil {
		t.Fatal("expected error for non-positive ttl")
	}
}

func TestManagerIssueVerify(t *testing.T) {
	now := issuedAt
	m, err := NewManager("secret", 24*time.Hour, "wes-social", WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, exp, err := m.Issue("acc-9")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if want := issuedAt.Add(24 * time.Hour).Unix(); exp != want {
		t.Fatalf("expiresAt = %d, want %d", exp, want)
	}

	id, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if id != "acc-9" {
		t.Fatalf("account id = %q, want %q", id, "acc-9")
	}

	now = issuedAt.Add(25 * time.Hour)
	if _, err := m.Verify(token); KindOf(err) != Expired {
		t.Fatalf("expected Expired after ttl, got %v", err)
	}
}
