package api

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var specYAML []byte

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(specYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi spec: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi spec: %w", err)
	}

	return doc, nil
}

// ResponseSchema returns the JSON schema of the response to GET path with
// the given status, or nil when the document does not describe one.
func ResponseSchema(doc *openapi3.T, path string, status int) *openapi3.Schema {
	item := doc.Paths.Find(path)
	if item == nil || item.Get == nil || item.Get.Responses == nil {
		return nil
	}

	ref := item.Get.Responses.Status(status)
	if ref == nil || ref.Value == nil {
		return nil
	}

	media := ref.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}
