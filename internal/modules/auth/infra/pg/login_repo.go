package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
)

type LoginRepo struct {
	db *pgxpool.Pool
}

func NewLoginRepo(db *pgxpool.Pool) *LoginRepo {
	return &LoginRepo{db: db}
}

func (r *LoginRepo) Record(l domain.LoginRecord) (*domain.LoginRecord, error) {
	row := r.db.QueryRow(context.Background(),
		`INSERT INTO login_records (user_id, ip_address, user_agent)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, ip_address, user_agent, created_at`,
		l.UserID, l.IPAddress, l.UserAgent,
	)
	var out domain.LoginRecord
	if err := row.Scan(&out.ID, &out.UserID, &out.IPAddress, &out.UserAgent, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LoginRepo) ListByUser(userID string, page, limit int) ([]domain.LoginRecord, int, error) {
	ctx := context.Background()

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM login_records WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
SELECT id, user_id, ip_address, user_agent, created_at
FROM login_records
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]domain.LoginRecord, 0, limit)
	for rows.Next() {
		var l domain.LoginRecord
		if err := rows.Scan(&l.ID, &l.UserID, &l.IPAddress, &l.UserAgent, &l.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, l)
	}
	return out, total, rows.Err()
}
