// Package domain — сущности витрины сайта, которыми управляет админка.
package domain

import "time"

type Service struct {
	ID        string
	Title     string
	Slug      string
	Summary   string
	Body      string
	Icon      string
	SortOrder int
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TeamMember struct {
	ID        string
	Name      string
	Title     string
	PhotoURL  string
	Bio       string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Testimonial struct {
	ID        string
	Author    string
	Company   string
	Quote     string
	Rating    int
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PortfolioItem struct {
	ID        string
	Title     string
	Slug      string
	Client    string
	Summary   string
	CoverURL  string
	Tags      []string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ContactSubmission struct {
	ID         string
	Name       string
	Email      string
	Subject    string
	Message    string
	ResolvedAt *time.Time
	CreatedAt  time.Time
}

type ServiceRepo interface {
	Create(s Service) (*Service, error)
	Update(s Service) error
	Delete(id string) error
	GetBySlug(slug string) (*Service, error)
	List(publishedOnly bool) ([]Service, error)
}

type TeamRepo interface {
	Create(m TeamMember) (*TeamMember, error)
	Update(m TeamMember) error
	Delete(id string) error
	List() ([]TeamMember, error)
}

type TestimonialRepo interface {
	Create(t Testimonial) (*Testimonial, error)
	Update(t Testimonial) error
	Delete(id string) error
	List(publishedOnly bool) ([]Testimonial, error)
}

type PortfolioRepo interface {
	Create(p PortfolioItem) (*PortfolioItem, error)
	Update(p PortfolioItem) error
	Delete(id string) error
	GetBySlug(slug string) (*PortfolioItem, error)
	List(publishedOnly bool) ([]PortfolioItem, error)
}

type ContactRepo interface {
	Create(s ContactSubmission) (*ContactSubmission, error)
	List(unresolvedOnly bool) ([]ContactSubmission, error)
	Resolve(id string, at time.Time) error
}
