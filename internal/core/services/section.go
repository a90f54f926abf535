package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aidoc-cli/internal/logger"
)

// Ensure SectionService implements the interface.
var _ driving.SectionService = (*SectionService)(nil)

type refineRequest struct {
	Prompt string `json:"prompt"`
}

type feedbackRequest struct {
	IsLike bool `json:"is_like"`
}

type commentRequest struct {
	Text string `json:"text"`
}

// SectionService performs per-section mutations. Response bodies are
// ignored; callers re-fetch the project to see the result.
type SectionService struct {
	gateway driven.Gateway
}

// NewSectionService creates a new section service.
func NewSectionService(gateway driven.Gateway) *SectionService {
	return &SectionService{gateway: gateway}
}

// Refine asks the backend to rewrite the section following prompt.
func (s *SectionService) Refine(ctx context.Context, sectionID int64, prompt string) error {
	if s.gateway == nil {
		return domain.ErrNotImplemented
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return fmt.Errorf("%w: refine prompt is empty", domain.ErrInvalidInput)
	}

	logger.Debug("Refining section %d: %q", sectionID, prompt)
	if err := s.post(ctx, sectionID, "refine", refineRequest{Prompt: prompt}); err != nil {
		return fmt.Errorf("refine section %d: %w", sectionID, err)
	}
	return nil
}

// Feedback records a like or dislike.
func (s *SectionService) Feedback(ctx context.Context, sectionID int64, isLike bool) error {
	if s.gateway == nil {
		return domain.ErrNotImplemented
	}
	if err := s.post(ctx, sectionID, "feedback", feedbackRequest{IsLike: isLike}); err != nil {
		return fmt.Errorf("feedback on section %d: %w", sectionID, err)
	}
	return nil
}

// AddComment attaches trimmed text to the section.
func (s *SectionService) AddComment(ctx context.Context, sectionID int64, text string) error {
	if s.gateway == nil {
		return domain.ErrNotImplemented
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: comment is empty", domain.ErrInvalidInput)
	}
	if err := s.post(ctx, sectionID, "comments", commentRequest{Text: text}); err != nil {
		return fmt.Errorf("comment on section %d: %w", sectionID, err)
	}
	return nil
}

func (s *SectionService) post(ctx context.Context, sectionID int64, action string, body any) error {
	_, err := s.gateway.Do(ctx, driven.Request{
		Method: http.MethodPost,
		Path:   "/sections/" + strconv.FormatInt(sectionID, 10) + "/" + action,
		JSON:   body,
		Kind:   driven.ResponseJSON,
	})
	return err
}
