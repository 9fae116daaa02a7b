package domain

import "time"

// MaxOTPAttempts — после пятой неудачной попытки запись больше не выбирается.
const MaxOTPAttempts = 5

// PasswordResetOTP — одноразовый код восстановления пароля.
// На каждый запрос создаётся новая запись; старые не инвалидируются явно,
// они просто перестают выбираться (см. LatestEligible).
type PasswordResetOTP struct {
	ID         string
	Email      string
	CodeHash   string // argon2id-хеш шестизначного кода, открытый код не храним
	Attempts   int
	ConsumedAt *time.Time
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Usable reports whether the record can still be verified against.
func (o *PasswordResetOTP) Usable(now time.Time) bool {
	return o.ConsumedAt == nil && now.Before(o.ExpiresAt) && o.Attempts < MaxOTPAttempts
}

type OTPRepo interface {
	Save(o PasswordResetOTP) error
	// LatestEligible возвращает самую свежую пригодную запись для email
	// (не использована, не истекла, попытки < MaxOTPAttempts) или nil.
	LatestEligible(email string, now time.Time) (*PasswordResetOTP, error)
	// IncrementAttempts должен быть атомарным на уровне хранилища.
	IncrementAttempts(id string) error
	Consume(id string, at time.Time) error
}
