package infra

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
)

var ErrNotFound = errors.New("not_found")

type memUserRepo struct {
	mu         sync.RWMutex
	users      map[string]*domain.User // id -> user
	byEmail    map[string]string       // email -> id
	byUsername map[string]string
}

func NewMemUserRepo() domain.UserRepo {
	return &memUserRepo{
		users:      make(map[string]*domain.User),
		byEmail:    make(map[string]string),
		byUsername: make(map[string]string),
	}
}

func (r *memUserRepo) Create(p domain.CreateUserParams) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[p.Email]; ok {
		return nil, errors.New("email_taken")
	}
	if _, ok := r.byUsername[p.Username]; ok {
		return nil, errors.New("username_taken")
	}
	now := time.Now().UTC()
	u := &domain.User{
		ID: uuid.New().String(), Email: p.Email, Username: p.Username,
		FirstName: p.FirstName, LastName: p.LastName,
		Role: p.Role, Status: domain.StatusActive, PasswordHash: p.PasswordHash,
		CreatedAt: now, UpdatedAt: now,
	}
	r.users[u.ID] = u
	r.byEmail[u.Email] = u.ID
	r.byUsername[u.Username] = u.ID
	return u, nil
}

func (r *memUserRepo) GetByID(id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r.users[id]
	return &cp, nil
}

func (r *memUserRepo) ExistsByEmail(email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *memUserRepo) ExistsByUsername(username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byUsername[username]
	return ok, nil
}

func (r *memUserRepo) UpdatePassword(userID string, newHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.PasswordHash = newHash
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memUserRepo) UpdateProfile(userID string, firstName *string, lastName *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	if firstName != nil {
		u.FirstName = strings.TrimSpace(*firstName)
	}
	if lastName != nil {
		u.LastName = strings.TrimSpace(*lastName)
	}
	u.UpdatedAt = time.Now().UTC()
	return nil
}

type memOTPRepo struct {
	mu    sync.Mutex
	codes []domain.PasswordResetOTP // в порядке создания
}

func NewMemOTPRepo() domain.OTPRepo {
	return &memOTPRepo{}
}

func (r *memOTPRepo) Save(o domain.PasswordResetOTP) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	r.codes = append(r.codes, o)
	return nil
}

func (r *memOTPRepo) LatestEligible(email string, now time.Time) (*domain.PasswordResetOTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// с конца: самая свежая пригодная запись; непригодные никто не чистит,
	// они просто не выбираются
	for i := len(r.codes) - 1; i >= 0; i-- {
		c := &r.codes[i]
		if c.Email == email && c.Usable(now) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memOTPRepo) IncrementAttempts(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.codes {
		if r.codes[i].ID == id {
			r.codes[i].Attempts++
			return nil
		}
	}
	return ErrNotFound
}

func (r *memOTPRepo) Consume(id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.codes {
		if r.codes[i].ID == id {
			t := at
			r.codes[i].ConsumedAt = &t
			return nil
		}
	}
	return ErrNotFound
}

type memLoginRepo struct {
	mu     sync.RWMutex
	byUser map[string][]domain.LoginRecord
}

func NewMemLoginRepo() domain.LoginRepo {
	return &memLoginRepo{byUser: make(map[string][]domain.LoginRecord)}
}

func (r *memLoginRepo) Record(l domain.LoginRecord) (*domain.LoginRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	l.CreatedAt = time.Now().UTC()
	r.byUser[l.UserID] = append(r.byUser[l.UserID], l)
	cp := l
	return &cp, nil
}

func (r *memLoginRepo) ListByUser(userID string, page, limit int) ([]domain.LoginRecord, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := r.byUser[userID]
	total := len(all)
	// свежие сверху
	out := make([]domain.LoginRecord, 0, limit)
	start := (page - 1) * limit
	for i := total - 1 - start; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, total, nil
}
