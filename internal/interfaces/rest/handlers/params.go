package handlers

import (
	"net/url"

	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
	"github.com/oapi-codegen/runtime"
)

// queryBinder binds optional form-style query parameters and collects
// binding failures as field issues.
type queryBinder struct {
	query  url.Values
	issues []*domain.DomainError
}

func newQueryBinder(query url.Values) *queryBinder {
	return &queryBinder{query: query}
}

func (b *queryBinder) bind(name string, dest **string) {
	if err := runtime.BindQueryParameter("form", true, false, name, b.query, dest); err != nil {
		b.issues = append(b.issues, domain.NewInvalidParameterError(name, err))
	}
}

func (b *queryBinder) err() error {
	if len(b.issues) == 0 {
		return nil
	}
	return domain.NewValidationError(b.issues)
}

func value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
