package service

import (
	"context"
	"fmt"

	"clicktrack/pkg/logging"
	"clicktrack/pkg/storage"
)

// ClickService appends click events. Fire-and-forget from the browser's side:
// a failure here must never interrupt the visitor's navigation, so callers
// log and move on.
type ClickService struct {
	storage storage.ClickStorage
	logger  *logging.Logger
}

func NewClickService(storage storage.ClickStorage, logger *logging.Logger) *ClickService {
	return &ClickService{
		storage: storage,
		logger:  logger,
	}
}

type RecordClickRequest struct {
	LinkURL  string `json:"linkUrl"`
	LinkText string `json:"linkText"`
}

// RecordClick validates and appends one click event. LinkText falls back to
// the URL; origin IP and user agent fall back to "unknown".
func (s *ClickService) RecordClick(ctx context.Context, req *RecordClickRequest, originIP, userAgent string) error {
	if req.LinkURL == "" {
		return fmt.Errorf("%w: linkUrl is required", ErrValidation)
	}

	linkText := req.LinkText
	if linkText == "" {
		linkText = req.LinkURL
	}
	if originIP == "" {
		originIP = "unknown"
	}
	if userAgent == "" {
		userAgent = "unknown"
	}

	click := &storage.ClickEvent{
		LinkURL:   req.LinkURL,
		LinkText:  linkText,
		IPAddress: originIP,
		UserAgent: userAgent,
	}

	if err := s.storage.Insert(ctx, click); err != nil {
		s.logger.LogClickRecorded(ctx, req.LinkURL, false)
		return err
	}

	s.logger.LogClickRecorded(ctx, req.LinkURL, true)
	return nil
}
