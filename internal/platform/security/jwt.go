package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenInvalid = errors.New("token_invalid")

// SessionClaims — что лежит в сессионном токене (cookie или Bearer).
type SessionClaims struct {
	UserID string
	Role   string
	Status string
}

type JWTManager struct {
	secret     []byte
	sessionTTL time.Duration
}

func NewJWTManager(secret string, sessionTTL time.Duration) *JWTManager {
	if sessionTTL == 0 {
		sessionTTL = 24 * time.Hour
	}
	return &JWTManager{secret: []byte(secret), sessionTTL: sessionTTL}
}

func (j *JWTManager) SessionTTL() time.Duration { return j.sessionTTL }

// IssueSession выпускает HS256-токен с ролью и статусом пользователя.
func (j *JWTManager) IssueSession(userID, role, status string) (string, time.Time, error) {
	exp := time.Now().Add(j.sessionTTL)
	claims := jwt.MapClaims{
		"sub":    userID,
		"role":   role,
		"status": status,
		"exp":    exp.Unix(),
		"iat":    time.Now().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := t.SignedString(j.secret)
	return token, exp, err
}

// ParseSession проверяет подпись и срок и возвращает клеймы.
func (j *JWTManager) ParseSession(tokenStr string) (*SessionClaims, error) {
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// принимаем только HMAC-семейство
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrTokenInvalid
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	sc := &SessionClaims{}
	sc.UserID, _ = claims["sub"].(string)
	sc.Role, _ = claims["role"].(string)
	sc.Status, _ = claims["status"].(string)
	if sc.UserID == "" {
		return nil, ErrTokenInvalid
	}
	return sc, nil
}
