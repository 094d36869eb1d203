// Package usecase contains application-level services.
package usecase

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tesso57/headlines/internal/domain/news"
)

// HistoryRepository abstracts read history persistence.
type HistoryRepository interface {
	RecordOpened(item news.Item, at time.Time) error
	OpenedKeys() (map[string]bool, error)
}

// ReadingService records which articles the user has opened.
type ReadingService struct {
	HistoryRepo HistoryRepository
	Now         func() time.Time
}

// NewReadingService constructs a ReadingService.
func NewReadingService(historyRepo HistoryRepository, now func() time.Time) ReadingService {
	return ReadingService{
		HistoryRepo: historyRepo,
		Now:         now,
	}
}

// RecordOpened persists that item was opened now.
func (s ReadingService) RecordOpened(item news.Item) error {
	if s.HistoryRepo == nil {
		return nil
	}
	return s.HistoryRepo.RecordOpened(item, s.now())
}

// OpenedKeys returns the keys of every article opened so far.
func (s ReadingService) OpenedKeys() (map[string]bool, error) {
	if s.HistoryRepo == nil {
		return map[string]bool{}, nil
	}
	keys, err := s.HistoryRepo.OpenedKeys()
	if keys == nil {
		keys = map[string]bool{}
	}
	return keys, err
}

func (s ReadingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
