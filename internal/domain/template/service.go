package template

import "context"

type TemplateService interface {
	Get(ctx context.Context, personID string) (TemplateResponse, error)
	Upsert(ctx context.Context, req UpsertTemplateRequest) (TemplateResponse, error)
	Delete(ctx context.Context, personID string) error
}
