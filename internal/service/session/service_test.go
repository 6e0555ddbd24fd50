package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

type fakeUsers struct {
	user  *domain.User
	err   error
	delay time.Duration
}

func (f *fakeUsers) Me(ctx context.Context) (*domain.User, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.user, f.err
}

var now = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

var testKey = []byte("test-secret")

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	return signWith(t, testKey, claims)
}

func signWith(t *testing.T, key []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func newVerifier() *Verifier {
	return NewVerifier(testKey, "", "")
}

func TestService_Bootstrap(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		svc := NewService(&fakeUsers{user: &domain.User{ID: "u-1", Role: domain.RoleAdmin}}, newVerifier(), time.Second, nopLogger{})

		state := svc.Bootstrap(context.Background())

		assert.Equal(t, StatusAuthenticated, state.Status)
		assert.True(t, state.HasRole(domain.RoleAdmin))
	})

	t.Run("failure is anonymous", func(t *testing.T) {
		svc := NewService(&fakeUsers{err: errors.New("401")}, newVerifier(), time.Second, nopLogger{})

		state := svc.Bootstrap(context.Background())

		assert.Equal(t, StatusAnonymous, state.Status)
		assert.Nil(t, state.User)
	})

	t.Run("timeout is anonymous", func(t *testing.T) {
		svc := NewService(&fakeUsers{user: &domain.User{ID: "u-1"}, delay: time.Second}, newVerifier(), 20*time.Millisecond, nopLogger{})

		state := svc.Bootstrap(context.Background())

		assert.Equal(t, StatusAnonymous, state.Status)
	})
}

func TestParseClaims(t *testing.T) {
	claims := jwt.MapClaims{
		"email":     "staff@swap.io",
		"role":      "Staff",
		"stationId": "st-3",
		"exp":       float64(now.Add(time.Hour).Unix()),
	}
	claims[subjectClaims[2]] = "u-7"
	token := signToken(t, claims)

	parsed, err := newVerifier().ParseClaims(token, now)

	require.NoError(t, err)
	assert.Equal(t, "u-7", parsed.Subject)
	assert.Equal(t, domain.RoleStaff, parsed.Role)
	assert.Equal(t, "st-3", parsed.User().StationID)
}

func TestParseClaims_Expired(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "u-1",
		"exp": float64(now.Add(-time.Minute).Unix()),
	})

	_, err := newVerifier().ParseClaims(token, now)

	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseClaims_Garbage(t *testing.T) {
	_, err := newVerifier().ParseClaims("not-a-jwt", now)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseClaims_RejectsForeignSignature(t *testing.T) {
	token := signWith(t, []byte("some-other-key"), jwt.MapClaims{
		"sub":  "victim-1",
		"role": "Admin",
		"exp":  float64(now.Add(time.Hour).Unix()),
	})

	_, err := newVerifier().ParseClaims(token, now)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseClaims_RejectsUnsignedToken(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  "victim-1",
		"role": "Admin",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newVerifier().ParseClaims(token, now)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseClaims_IssuerAndAudience(t *testing.T) {
	verifier := NewVerifier(testKey, "swap-backend", "swap-portal")
	claims := func(iss, aud string) jwt.MapClaims {
		return jwt.MapClaims{"sub": "u-1", "iss": iss, "aud": aud, "exp": float64(now.Add(time.Hour).Unix())}
	}

	_, err := verifier.ParseClaims(signToken(t, claims("swap-backend", "swap-portal")), now)
	require.NoError(t, err)

	_, err = verifier.ParseClaims(signToken(t, claims("elsewhere", "swap-portal")), now)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = verifier.ParseClaims(signToken(t, claims("swap-backend", "other-app")), now)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseClaims_NoKeyConfigured(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "u-1"})

	_, err := NewVerifier(nil, "", "").ParseClaims(token, now)

	assert.ErrorIs(t, err, ErrNoSigningKey)
}

func TestService_FromToken(t *testing.T) {
	svc := NewService(&fakeUsers{}, newVerifier(), time.Second, nopLogger{})
	claims := jwt.MapClaims{
		"sub":  "victim-1",
		"role": "Admin",
		"exp":  float64(now.Add(time.Hour).Unix()),
	}

	t.Run("own signature is authenticated", func(t *testing.T) {
		state := svc.FromToken(signToken(t, claims), now)

		assert.Equal(t, StatusAuthenticated, state.Status)
		require.NotNil(t, state.User)
		assert.Equal(t, "victim-1", state.User.ID)
	})

	t.Run("foreign signature is anonymous", func(t *testing.T) {
		state := svc.FromToken(signWith(t, []byte("attacker-chosen-key"), claims), now)

		assert.Equal(t, StatusAnonymous, state.Status)
		assert.Nil(t, state.User)
	})

	t.Run("empty token is anonymous", func(t *testing.T) {
		assert.Equal(t, StatusAnonymous, svc.FromToken("", now).Status)
	})
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, StatusLoading, FromContext(context.Background()).Status)

	ctx := WithState(context.Background(), Authenticated(&domain.User{ID: "u-1"}))
	user, err := UserFrom(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)

	_, err = UserFrom(WithState(context.Background(), Anonymous()))
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
