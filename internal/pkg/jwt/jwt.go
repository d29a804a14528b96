package jwt

import (
	"strconv"
	"sync"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(u user.User) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	// RevokeToken blocks token until its own expiry.
	RevokeToken(token string) error
	IsTokenRevoked(token string) bool
	// PruneRevoked forgets revoked tokens that have expired by now.
	PruneRevoked(now time.Time) int
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime time.Duration) *JWTService {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(u user.User) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"sub":         strconv.FormatInt(u.ID, 10),
		"user_id":     u.ID,
		"email":       u.Email,
		"employee_id": j.returnValueOrNil(u.EmployeeID),
		"role":        string(u.Role),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string) error {
	decoded, err := j.tokenAuth.Decode(token)
	if err != nil {
		return err
	}
	expiresAt := decoded.Expiration().Unix()

	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = expiresAt
	return nil
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

func (j *JWTService) PruneRevoked(now time.Time) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	pruned := 0
	for token, expiresAt := range j.revokedTokens {
		if expiresAt <= now.Unix() {
			delete(j.revokedTokens, token)
			pruned++
		}
	}
	return pruned
}

func (j *JWTService) returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
