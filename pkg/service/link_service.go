package service

import (
	"context"
	"fmt"

	"clicktrack/pkg/logging"
	"clicktrack/pkg/storage"
)

// LinkService owns CRUD over the admin-curated link registry.
type LinkService struct {
	storage storage.LinkStorage
	logger  *logging.Logger
}

func NewLinkService(storage storage.LinkStorage, logger *logging.Logger) *LinkService {
	return &LinkService{
		storage: storage,
		logger:  logger,
	}
}

type SaveLinkRequest struct {
	Text         string `json:"text"`
	URL          string `json:"url"`
	Category     string `json:"category"`
	Subtitle     string `json:"subtitle"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"display_order"`
}

func (r *SaveLinkRequest) validate() error {
	if r.Text == "" {
		return fmt.Errorf("%w: text is required", ErrValidation)
	}
	if r.URL == "" {
		return fmt.Errorf("%w: url is required", ErrValidation)
	}
	if r.Category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	return nil
}

// PublicLink is the listing shape shown on the landing page: no timestamps.
type PublicLink struct {
	ID           int64  `json:"id"`
	Text         string `json:"text"`
	URL          string `json:"url"`
	Category     string `json:"category"`
	Subtitle     string `json:"subtitle"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"display_order"`
}

func (s *LinkService) CreateLink(ctx context.Context, req *SaveLinkRequest) (int64, error) {
	if err := req.validate(); err != nil {
		return 0, err
	}

	link := &storage.Link{
		Text:         req.Text,
		URL:          req.URL,
		Category:     req.Category,
		Subtitle:     req.Subtitle,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
	}

	id, err := s.storage.Create(ctx, link)
	if err != nil {
		s.logger.LogLinkOperation(ctx, "create", 0, false)
		return 0, err
	}

	s.logger.LogLinkOperation(ctx, "create", id, true)
	return id, nil
}

// UpdateLink replaces all mutable fields of the link. Updating an id that
// does not exist reports success without writing anything; the registry's
// missing-id no-op is a documented contract.
func (s *LinkService) UpdateLink(ctx context.Context, id int64, req *SaveLinkRequest) error {
	if err := req.validate(); err != nil {
		return err
	}

	link := &storage.Link{
		ID:           id,
		Text:         req.Text,
		URL:          req.URL,
		Category:     req.Category,
		Subtitle:     req.Subtitle,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
	}

	if err := s.storage.Update(ctx, link); err != nil {
		s.logger.LogLinkOperation(ctx, "update", id, false)
		return err
	}

	s.logger.LogLinkOperation(ctx, "update", id, true)
	return nil
}

// DeleteLink is idempotent; deleting a missing id reports success.
func (s *LinkService) DeleteLink(ctx context.Context, id int64) error {
	if err := s.storage.Delete(ctx, id); err != nil {
		s.logger.LogLinkOperation(ctx, "delete", id, false)
		return err
	}

	s.logger.LogLinkOperation(ctx, "delete", id, true)
	return nil
}

// ListPublic returns the registry in (category, display_order, id) order with
// the public field set only.
func (s *LinkService) ListPublic(ctx context.Context) ([]PublicLink, error) {
	links, err := s.storage.List(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]PublicLink, len(links))
	for i, l := range links {
		public[i] = PublicLink{
			ID:           l.ID,
			Text:         l.Text,
			URL:          l.URL,
			Category:     l.Category,
			Subtitle:     l.Subtitle,
			Icon:         l.Icon,
			DisplayOrder: l.DisplayOrder,
		}
	}
	return public, nil
}

// ListAdmin returns the registry with all fields, timestamps included.
func (s *LinkService) ListAdmin(ctx context.Context) ([]storage.Link, error) {
	return s.storage.List(ctx)
}
