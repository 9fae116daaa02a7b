// Package otp — генерация и проверка одноразовых числовых кодов.
package otp

import (
	"crypto/rand"

	"github.com/alexedwards/argon2id"
)

const DefaultLength = 6

// GenerateCode возвращает строку из n независимых случайных десятичных цифр.
// Ведущие нули не подавляются: "042117" — валидный код.
func GenerateCode(n int) (string, error) {
	if n <= 0 {
		n = DefaultLength
	}
	out := make([]byte, 0, n)
	buf := make([]byte, 1)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		// отбрасываем 250..255, иначе распределение цифр неравномерно
		if buf[0] >= 250 {
			continue
		}
		out = append(out, '0'+buf[0]%10)
	}
	return string(out), nil
}

// HashCode — односторонний соленый хеш кода для хранения в БД.
func HashCode(code string) (string, error) {
	return argon2id.CreateHash(code, argon2id.DefaultParams)
}

// VerifyCode сравнивает введённый код с хешем. Любое несоответствие,
// включая мусор на входе, — это false, а не ошибка.
func VerifyCode(submitted, storedHash string) bool {
	ok, err := argon2id.ComparePasswordAndHash(submitted, storedHash)
	return err == nil && ok
}
