package services

import (
	"bytes"
	"encoding/json"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
)

// decodeJSON unmarshals a successful response into v. An empty or
// undecodable body is a malformed response, not a rejected request.
func decodeJSON(resp *driven.Response, what string, v any) error {
	if resp == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
		return &domain.MalformedResponseError{What: what}
	}
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return &domain.MalformedResponseError{What: what, Err: err}
	}
	return nil
}
