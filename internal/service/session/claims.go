package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// Имена claim'ов, которые выдаёт backend (короткие и длинные URI из ASP.NET Identity)
var (
	subjectClaims = []string{"sub", "nameid", "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"}
	emailClaims   = []string{"email", "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"}
	nameClaims    = []string{"name", "unique_name", "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"}
	roleClaims    = []string{"role", "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"}
	stationClaims = []string{"stationId", "station_id"}
)

// Claims данные пользователя из bearer-токена
type Claims struct {
	Subject   string
	Email     string
	Name      string
	Role      domain.Role
	StationID string
	ExpiresAt *time.Time
}

// User собирает частичную модель пользователя из claim'ов
func (c *Claims) User() *domain.User {
	return &domain.User{
		ID:        c.Subject,
		Email:     c.Email,
		FullName:  c.Name,
		Role:      c.Role,
		StationID: c.StationID,
		IsActive:  true,
	}
}

// HMAC-алгоритмы, которыми backend подписывает токены
var signingMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// Verifier проверяет подпись, срок действия и (если заданы) issuer/audience токена
type Verifier struct {
	key      []byte
	issuer   string
	audience string
}

// NewVerifier создает верификатор с общим с backend ключом подписи
func NewVerifier(key []byte, issuer, audience string) *Verifier {
	return &Verifier{
		key:      key,
		issuer:   issuer,
		audience: audience,
	}
}

// ParseClaims проверяет токен и читает claim'ы.
// Токен с чужой подписью, без подписи или с неверным issuer/audience отклоняется.
func (v *Verifier) ParseClaims(token string, now time.Time) (*Claims, error) {
	if v == nil || len(v.key) == 0 {
		return nil, ErrNoSigningKey
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods(signingMethods),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	mapClaims := jwt.MapClaims{}
	_, err := jwt.NewParser(opts...).ParseWithClaims(token, mapClaims, func(*jwt.Token) (interface{}, error) {
		return v.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims := &Claims{
		Subject:   firstClaim(mapClaims, subjectClaims),
		Email:     firstClaim(mapClaims, emailClaims),
		Name:      firstClaim(mapClaims, nameClaims),
		Role:      domain.Role(firstClaim(mapClaims, roleClaims)),
		StationID: firstClaim(mapClaims, stationClaims),
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: subject claim is missing", ErrInvalidToken)
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if exp != nil {
		expiresAt := exp.Time
		claims.ExpiresAt = &expiresAt
	}
	return claims, nil
}

func firstClaim(claims jwt.MapClaims, names []string) string {
	for _, name := range names {
		switch v := claims[name].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		case []interface{}:
			// Несколько ролей: берём первую
			if len(v) > 0 {
				if s, ok := v[0].(string); ok {
					return s
				}
			}
		}
	}
	return ""
}
