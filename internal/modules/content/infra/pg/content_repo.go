package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/content/domain"
)

type ServiceRepo struct{ db *pgxpool.Pool }

func NewServiceRepo(db *pgxpool.Pool) *ServiceRepo { return &ServiceRepo{db: db} }

const serviceColumns = `id, title, slug, summary, body, icon, sort_order, published, created_at, updated_at`

func scanService(row pgx.Row) (*domain.Service, error) {
	var s domain.Service
	err := row.Scan(&s.ID, &s.Title, &s.Slug, &s.Summary, &s.Body, &s.Icon,
		&s.SortOrder, &s.Published, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepo) Create(s domain.Service) (*domain.Service, error) {
	row := r.db.QueryRow(context.Background(),
		`INSERT INTO services (title, slug, summary, body, icon, sort_order, published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+serviceColumns,
		s.Title, s.Slug, s.Summary, s.Body, s.Icon, s.SortOrder, s.Published)
	return scanService(row)
}

func (r *ServiceRepo) Update(s domain.Service) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE services
		 SET title=$2, slug=$3, summary=$4, body=$5, icon=$6, sort_order=$7, published=$8, updated_at=now()
		 WHERE id=$1`,
		s.ID, s.Title, s.Slug, s.Summary, s.Body, s.Icon, s.SortOrder, s.Published)
	return err
}

func (r *ServiceRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM services WHERE id=$1`, id)
	return err
}

func (r *ServiceRepo) GetBySlug(slug string) (*domain.Service, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+serviceColumns+` FROM services WHERE slug=$1`, slug)
	return scanService(row)
}

func (r *ServiceRepo) List(publishedOnly bool) ([]domain.Service, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+serviceColumns+` FROM services
		 WHERE (NOT $1::bool) OR published
		 ORDER BY sort_order, created_at`, publishedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

type TeamRepo struct{ db *pgxpool.Pool }

func NewTeamRepo(db *pgxpool.Pool) *TeamRepo { return &TeamRepo{db: db} }

const teamColumns = `id, name, title, photo_url, bio, sort_order, created_at, updated_at`

func (r *TeamRepo) Create(m domain.TeamMember) (*domain.TeamMember, error) {
	row := r.db.QueryRow(context.Background(),
		`INSERT INTO team_members (name, title, photo_url, bio, sort_order)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+teamColumns,
		m.Name, m.Title, m.PhotoURL, m.Bio, m.SortOrder)
	var out domain.TeamMember
	if err := row.Scan(&out.ID, &out.Name, &out.Title, &out.PhotoURL, &out.Bio,
		&out.SortOrder, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *TeamRepo) Update(m domain.TeamMember) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE team_members
		 SET name=$2, title=$3, photo_url=$4, bio=$5, sort_order=$6, updated_at=now()
		 WHERE id=$1`,
		m.ID, m.Name, m.Title, m.PhotoURL, m.Bio, m.SortOrder)
	return err
}

func (r *TeamRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM team_members WHERE id=$1`, id)
	return err
}

func (r *TeamRepo) List() ([]domain.TeamMember, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+teamColumns+` FROM team_members ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Title, &m.PhotoURL, &m.Bio,
			&m.SortOrder, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type TestimonialRepo struct{ db *pgxpool.Pool }

func NewTestimonialRepo(db *pgxpool.Pool) *TestimonialRepo { return &TestimonialRepo{db: db} }

const testimonialColumns = `id, author, company, quote, rating, published, created_at, updated_at`

func (r *TestimonialRepo) Create(t domain.Testimonial) (*domain.Testimonial, error) {
	row := r.db.QueryRow(context.Background(),
		`INSERT INTO testimonials (author, company, quote, rating, published)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+testimonialColumns,
		t.Author, t.Company, t.Quote, t.Rating, t.Published)
	var out domain.Testimonial
	if err := row.Scan(&out.ID, &out.Author, &out.Company, &out.Quote, &out.Rating,
		&out.Published, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *TestimonialRepo) Update(t domain.Testimonial) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE testimonials
		 SET author=$2, company=$3, quote=$4, rating=$5, published=$6, updated_at=now()
		 WHERE id=$1`,
		t.ID, t.Author, t.Company, t.Quote, t.Rating, t.Published)
	return err
}

func (r *TestimonialRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM testimonials WHERE id=$1`, id)
	return err
}

func (r *TestimonialRepo) List(publishedOnly bool) ([]domain.Testimonial, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+testimonialColumns+` FROM testimonials
		 WHERE (NOT $1::bool) OR published
		 ORDER BY created_at DESC`, publishedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Author, &t.Company, &t.Quote, &t.Rating,
			&t.Published, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

type PortfolioRepo struct{ db *pgxpool.Pool }

func NewPortfolioRepo(db *pgxpool.Pool) *PortfolioRepo { return &PortfolioRepo{db: db} }

const portfolioColumns = `id, title, slug, client, summary, cover_url, tags, published, created_at, updated_at`

func scanPortfolio(row pgx.Row) (*domain.PortfolioItem, error) {
	var p domain.PortfolioItem
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Client, &p.Summary, &p.CoverURL,
		&p.Tags, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PortfolioRepo) Create(p domain.PortfolioItem) (*domain.PortfolioItem, error) {
	row := r.db.QueryRow(context.Background(),
		`INSERT INTO portfolio_items (title, slug, client, summary, cover_url, tags, published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+portfolioColumns,
		p.Title, p.Slug, p.Client, p.Summary, p.CoverURL, p.Tags, p.Published)
	return scanPortfolio(row)
}

func (r *PortfolioRepo) Update(p domain.PortfolioItem) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE portfolio_items
		 SET title=$2, slug=$3, client=$4, summary=$5, cover_url=$6, tags=$7, published=$8, updated_at=now()
		 WHERE id=$1`,
		p.ID, p.Title, p.Slug, p.Client, p.Summary, p.CoverURL, p.Tags, p.Published)
	return err
}

func (r *PortfolioRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM portfolio_items WHERE id=$1`, id)
	return err
}

func (r *PortfolioRepo) GetBySlug(slug string) (*domain.PortfolioItem, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+portfolioColumns+` FROM portfolio_items WHERE slug=$1`, slug)
	return scanPortfolio(row)
}

func (r *PortfolioRepo) List(publishedOnly bool) ([]domain.PortfolioItem, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+portfolioColumns+` FROM portfolio_items
		 WHERE (NOT $1::bool) OR published
		 ORDER BY created_at DESC`, publishedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.PortfolioItem
	for rows.Next() {
		p, err := scanPortfolio(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

type ContactRepo struct{ db *pgxpool.Pool }

func NewContactRepo(db *pgxpool.Pool) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Create(s domain.ContactSubmission) (*domain.ContactSubmission, error) {
	row := r.db.QueryRow(context.Background(),
		`INSERT INTO contact_submissions (name, email, subject, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, email, subject, message, resolved_at, created_at`,
		s.Name, s.Email, s.Subject, s.Message)
	var out domain.ContactSubmission
	if err := row.Scan(&out.ID, &out.Name, &out.Email, &out.Subject, &out.Message,
		&out.ResolvedAt, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ContactRepo) List(unresolvedOnly bool) ([]domain.ContactSubmission, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT id, name, email, subject, message, resolved_at, created_at
		 FROM contact_submissions
		 WHERE (NOT $1::bool) OR resolved_at IS NULL
		 ORDER BY created_at DESC`, unresolvedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.ContactSubmission
	for rows.Next() {
		var s domain.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message,
			&s.ResolvedAt, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ContactRepo) Resolve(id string, at time.Time) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE contact_submissions SET resolved_at=$2 WHERE id=$1 AND resolved_at IS NULL`,
		id, at)
	return err
}
