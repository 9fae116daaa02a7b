package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, email, username, first_name, last_name, role, status, password_hash, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
		&u.Role, &u.Status, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(p domain.CreateUserParams) (*domain.User, error) {
	row := r.db.QueryRow(context.Background(),
		`INSERT INTO users (email, username, first_name, last_name, role, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+userColumns,
		p.Email, p.Username, p.FirstName, p.LastName, p.Role, p.PasswordHash,
	)
	return scanUser(row)
}

func (r *UserRepo) GetByID(id string) (*domain.User, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepo) GetByEmail(email string) (*domain.User, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepo) ExistsByEmail(email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *UserRepo) ExistsByUsername(username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

func (r *UserRepo) UpdatePassword(userID string, newHash string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		userID, newHash)
	return err
}

func (r *UserRepo) UpdateProfile(userID string, firstName *string, lastName *string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE users
		 SET first_name = COALESCE($2, first_name),
		     last_name  = COALESCE($3, last_name),
		     updated_at = now()
		 WHERE id = $1`,
		userID, firstName, lastName)
	return err
}
