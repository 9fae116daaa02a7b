// Package resettoken — компактный подписанный токен сброса пароля.
//
// Токен живёт между двумя запросами (проверка кода и установка нового
// пароля) и не хранится на сервере: email и срок действия зашиты в сам
// токен и защищены HMAC-подписью.
//
// Формат: base64url(JSON{email,exp}) + "." + base64url(HMAC-SHA256(secret, body)).
// base64url без паддинга. Подпись считается по сырым байтам JSON-тела.
package resettoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var ErrInvalid = errors.New("reset_token_invalid")

type Claims struct {
	Email string `json:"email"`
	Exp   int64  `json:"exp"` // unix seconds
}

type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL возвращает срок действия выдаваемых токенов.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Sign выпускает токен для email со сроком now+ttl.
func (c *Codec) Sign(email string) (string, error) {
	claims := Claims{Email: email, Exp: time.Now().Add(c.ttl).Unix()}
	body, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	return encode(body) + "." + encode(c.sign(body)), nil
}

// Verify разбирает и проверяет токен: структура, подпись, срок.
// Любой дефект — ErrInvalid, без деталей.
func (c *Codec) Verify(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, ErrInvalid
	}
	body, err := decode(parts[0])
	if err != nil {
		return nil, ErrInvalid
	}
	var claims Claims
	if err := json.Unmarshal(body, &claims); err != nil {
		return nil, ErrInvalid
	}
	// сравниваем подписи в base64url за константное время
	want := encode(c.sign(body))
	if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(want)) != 1 {
		return nil, ErrInvalid
	}
	if claims.Exp <= 0 || time.Now().Unix() > claims.Exp {
		return nil, ErrInvalid
	}
	return &claims, nil
}

func (c *Codec) sign(body []byte) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write(body)
	return mac.Sum(nil)
}

func encode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

func decode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
