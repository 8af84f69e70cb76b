package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingSecret is returned by NewManager when no signing key is configured.
var ErrMissingSecret = errors.New("jwt secret is not configured")

// FailureKind tags why a token was rejected.
type FailureKind int

const (
	Malformed FailureKind = iota + 1
	SignatureInvalid
	Expired
)

func (k FailureKind) String() string {
	switch k {
	case Malformed:
		return "malformed"
	case SignatureInvalid:
		return "signature_invalid"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// VerificationError is returned when a token fails verification.
type VerificationError struct {
	Kind FailureKind
	Err  error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("token %s: %v", e.Kind, e.Err)
}

func (e *VerificationError) Unwrap() error { return e.Err }

// KindOf returns the failure kind carried by err, or 0 if err is not a VerificationError.
func KindOf(err error) FailureKind {
	var ve *VerificationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return 0
}

// Claims represents JWT claims.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
}

// Sign creates an HS256 token for accountID that expires at now+ttl.
// Token timestamps have whole-second precision, so now is truncated to the
// second first.
func Sign(accountID string, secretKey []byte, ttl time.Duration, now time.Time) (string, error) {
	return sign(accountID, secretKey, ttl, now, "")
}

// Parse verifies token against secretKey at instant now and returns the account id.
// A token whose expiry equals now is already expired.
func Parse(token string, secretKey []byte, now time.Time) (string, error) {
	return parse(token, secretKey, func() time.Time { return now })
}

func sign(accountID string, secretKey []byte, ttl time.Duration, now time.Time, issuer string) (string, error) {
	if len(secretKey) == 0 {
		return "", ErrMissingSecret
	}
	now = now.Truncate(time.Second)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		AccountID: accountID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func parse(tokenString string, secretKey []byte, now func() time.Time) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", classify(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.AccountID == "" {
		return "", &VerificationError{Kind: Malformed, Err: errors.New("missing account claim")}
	}

	return claims.AccountID, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return &VerificationError{Kind: Malformed, Err: err}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return &VerificationError{Kind: SignatureInvalid, Err: err}
	case errors.Is(err, jwt.ErrTokenExpired):
		return &VerificationError{Kind: Expired, Err: err}
	default:
		return &VerificationError{Kind: Malformed, Err: err}
	}
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source used for signing and verification.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// Manager handles JWT operations with a fixed key, ttl and issuer.
type Manager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewManager creates a new JWT manager.
func NewManager(secret string, ttl time.Duration, issuer string, opts ...Option) (*Manager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive, got %s", ttl)
	}

	m := &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Issue creates a token for accountID and returns it with its unix expiry.
func (m *Manager) Issue(accountID string) (string, int64, error) {
	now := m.now().Truncate(time.Second)
	token, err := sign(accountID, m.secret, m.ttl, now, m.issuer)
	if err != nil {
		return "", 0, err
	}
	return token, now.Add(m.ttl).Unix(), nil
}

// Verify validates a token and returns the account id it was issued for.
func (m *Manager) Verify(token string) (string, error) {
	return parse(token, m.secret, m.now)
}
