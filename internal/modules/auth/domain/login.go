package domain

import "time"

// LoginRecord — запись истории входов, показывается в профиле.
type LoginRecord struct {
	ID        string
	UserID    string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}

type LoginRepo interface {
	Record(l LoginRecord) (*LoginRecord, error)
	ListByUser(userID string, page, limit int) ([]LoginRecord, int, error)
}
