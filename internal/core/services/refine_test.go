package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
)

func TestRefineService_RefineText(t *testing.T) {
	gateway := &mockGateway{}
	gateway.DoFunc = respondWith(t, map[string]string{"refined_text": "Crisper text."})
	service := NewRefineService(gateway)

	out, err := service.RefineText(context.Background(), "some text", "make it crisp")

	require.NoError(t, err)
	assert.Equal(t, "Crisper text.", out)
	req := gateway.Requests()[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/generate/refine", req.Path)
	assert.Equal(t, refineTextRequest{Text: "some text", Instruction: "make it crisp"}, req.JSON)
}

func TestRefineService_RefineText_FallsBackToRawBody(t *testing.T) {
	gateway := &mockGateway{DoFunc: func(context.Context, driven.Request) (*driven.Response, error) {
		return &driven.Response{StatusCode: 200, Body: []byte(`{"result":"other"}`)}, nil
	}}
	service := NewRefineService(gateway)

	out, err := service.RefineText(context.Background(), "some text", "")

	require.NoError(t, err)
	assert.Equal(t, `{"result":"other"}`, out)
}

func TestRefineService_RefineText_Failure(t *testing.T) {
	gateway := &mockGateway{DoFunc: failWith(&domain.RejectedError{StatusCode: http.StatusBadGateway})}
	service := NewRefineService(gateway)

	_, err := service.RefineText(context.Background(), "some text", "shorter")

	assert.True(t, domain.IsRejected(err))
}

func TestRefineService_RefineText_EmptyText(t *testing.T) {
	gateway := &mockGateway{}
	service := NewRefineService(gateway)

	_, err := service.RefineText(context.Background(), "  ", "shorter")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, gateway.Requests())
}
