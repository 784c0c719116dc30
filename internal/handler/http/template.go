package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/salarium/salarium-backend-go/internal/domain/template"
	"github.com/salarium/salarium-backend-go/internal/handler/http/response"
	"github.com/salarium/salarium-backend-go/internal/pkg/validator"
)

type TemplateHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type templateHandlerImpl struct {
	templateService template.TemplateService
}

func NewTemplateHandler(templateService template.TemplateService) TemplateHandler {
	return &templateHandlerImpl{templateService: templateService}
}

func (h *templateHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personId")
	if !validator.IsValidUUID(personID) {
		response.BadRequest(w, "Person ID must be a valid UUID", nil)
		return
	}

	result, err := h.templateService.Get(r.Context(), personID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *templateHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personId")
	if !validator.IsValidUUID(personID) {
		response.BadRequest(w, "Person ID must be a valid UUID", nil)
		return
	}

	var req template.UpsertTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.PersonID = personID

	result, err := h.templateService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *templateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personId")
	if !validator.IsValidUUID(personID) {
		response.BadRequest(w, "Person ID must be a valid UUID", nil)
		return
	}

	if err := h.templateService.Delete(r.Context(), personID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary template deleted", nil)
}
