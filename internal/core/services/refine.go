package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driving"
)

// Ensure RefineService implements the interface.
var _ driving.TextRefiner = (*RefineService)(nil)

const generateRefinePath = "/generate/refine"

type refineTextRequest struct {
	Text        string `json:"text"`
	Instruction string `json:"instruction"`
}

type refineTextResponse struct {
	RefinedText string `json:"refined_text"`
}

// RefineService rewrites freeform text with the backend's generator.
type RefineService struct {
	gateway driven.Gateway
}

// NewRefineService creates a new refine service.
func NewRefineService(gateway driven.Gateway) *RefineService {
	return &RefineService{gateway: gateway}
}

// RefineText returns the refined text. When the backend answers without a
// refined_text field the raw body is returned so the user still sees
// whatever came back.
func (s *RefineService) RefineText(ctx context.Context, text, instruction string) (string, error) {
	if s.gateway == nil {
		return "", domain.ErrNotImplemented
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: text is empty", domain.ErrInvalidInput)
	}

	resp, err := s.gateway.Do(ctx, driven.Request{
		Method: http.MethodPost,
		Path:   generateRefinePath,
		JSON:   refineTextRequest{Text: text, Instruction: instruction},
		Kind:   driven.ResponseJSON,
	})
	if err != nil {
		return "", fmt.Errorf("refine text: %w", err)
	}

	var out refineTextResponse
	if err := json.Unmarshal(resp.Body, &out); err == nil && out.RefinedText != "" {
		return out.RefinedText, nil
	}
	return string(resp.Body), nil
}
