package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/salarium/salarium-backend-go/internal/domain/person"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePersonService struct {
	got       string
	responses map[string]person.PersonResponse
}

func (f *fakePersonService) Create(ctx context.Context, req person.CreatePersonRequest) (person.PersonResponse, error) {
	return person.PersonResponse{}, nil
}

func (f *fakePersonService) Get(ctx context.Context, id string) (person.PersonResponse, error) {
	f.got = id
	if resp, ok := f.responses[id]; ok {
		return resp, nil
	}
	return person.PersonResponse{}, person.ErrPersonNotFound
}

func (f *fakePersonService) List(ctx context.Context) ([]person.PersonResponse, error) {
	return nil, nil
}

func (f *fakePersonService) Update(ctx context.Context, req person.UpdatePersonRequest) (person.PersonResponse, error) {
	return person.PersonResponse{}, nil
}

func (f *fakePersonService) Delete(ctx context.Context, id string) error {
	return nil
}

func getRequest(t *testing.T, id string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/persons/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPersonHandler_Get_RejectsMalformedID(t *testing.T) {
	svc := &fakePersonService{}
	handler := NewPersonHandler(svc)

	for _, id := range []string{"", "abc", "123", "not-a-uuid-at-all"} {
		rec := httptest.NewRecorder()
		handler.Get(rec, getRequest(t, id))

		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", id)
		assert.Empty(t, svc.got, "service must not be called for id %q", id)
	}
}

func TestPersonHandler_Get_PassesValidID(t *testing.T) {
	id := uuid.New().String()
	svc := &fakePersonService{
		responses: map[string]person.PersonResponse{
			id: {ID: id, Name: "Alice"},
		},
	}
	handler := NewPersonHandler(svc)

	rec := httptest.NewRecorder()
	handler.Get(rec, getRequest(t, id))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, svc.got)
	assert.Contains(t, rec.Body.String(), "Alice")
}
