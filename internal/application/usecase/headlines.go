package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tesso57/headlines/internal/domain/news"
)

// ErrFetchFailed is the only failure the presentation layer distinguishes.
// Network errors, rate limiting and malformed payloads all collapse into it.
var ErrFetchFailed = errors.New("fetch headlines failed")

// HeadlineSource abstracts a remote headline provider.
type HeadlineSource interface {
	Fetch(ctx context.Context) (news.Page, error)
}

// HeadlinesService fetches headlines from the configured source.
type HeadlinesService struct {
	Source  HeadlineSource
	Timeout time.Duration
	Logger  logrus.FieldLogger
}

// NewHeadlinesService constructs a HeadlinesService.
func NewHeadlinesService(source HeadlineSource, timeout time.Duration, logger logrus.FieldLogger) HeadlinesService {
	return HeadlinesService{
		Source:  source,
		Timeout: timeout,
		Logger:  logger,
	}
}

// FetchHeadlines fetches one page of headlines. Any error is wrapped with
// ErrFetchFailed and the underlying cause.
func (s HeadlinesService) FetchHeadlines(ctx context.Context) (news.Page, error) {
	if s.Source == nil {
		return news.Page{}, fmt.Errorf("%w: no headline source configured", ErrFetchFailed)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	started := time.Now()
	page, err := s.Source.Fetch(ctx)
	log := s.logger().WithField("elapsed", time.Since(started).String())
	if err != nil {
		log.WithError(err).Warn("headline fetch failed")
		return news.Page{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	log.WithFields(logrus.Fields{
		"total":    page.Total(),
		"articles": len(page.Articles),
	}).Info("headlines fetched")
	return page, nil
}

func (s HeadlinesService) logger() logrus.FieldLogger {
	if s.Logger != nil {
		return s.Logger
	}
	return discardLogger()
}
