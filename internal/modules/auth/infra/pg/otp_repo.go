// internal/modules/auth/infra/pg/otp_repo.go
package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
)

type OTPRepo struct {
	db *pgxpool.Pool
}

func NewOTPRepo(db *pgxpool.Pool) *OTPRepo {
	return &OTPRepo{db: db}
}

func (r *OTPRepo) Save(o domain.PasswordResetOTP) error {
	_, err := r.db.Exec(context.Background(),
		`INSERT INTO password_reset_otps (email, code_hash, expires_at)
		 VALUES ($1, $2, $3)`,
		o.Email, o.CodeHash, o.ExpiresAt,
	)
	return err
}

// LatestEligible: срок и лимит попыток проверяются прямо в запросе,
// фоновой чистки устаревших строк нет.
func (r *OTPRepo) LatestEligible(email string, now time.Time) (*domain.PasswordResetOTP, error) {
	var o domain.PasswordResetOTP
	err := r.db.QueryRow(context.Background(), `
SELECT id, email, code_hash, attempts, consumed_at, expires_at, created_at
FROM password_reset_otps
WHERE email = $1
  AND consumed_at IS NULL
  AND expires_at > $2
  AND attempts < $3
ORDER BY created_at DESC
LIMIT 1
`, email, now, domain.MaxOTPAttempts).
		Scan(&o.ID, &o.Email, &o.CodeHash, &o.Attempts, &o.ConsumedAt, &o.ExpiresAt, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// IncrementAttempts — инкремент на стороне БД: параллельные неудачные
// попытки не теряются, лимит в 5 не размывается.
func (r *OTPRepo) IncrementAttempts(id string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE password_reset_otps SET attempts = attempts + 1 WHERE id = $1`, id)
	return err
}

func (r *OTPRepo) Consume(id string, at time.Time) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE password_reset_otps SET consumed_at = $2 WHERE id = $1 AND consumed_at IS NULL`,
		id, at)
	return err
}
