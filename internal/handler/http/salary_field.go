package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/salarium/salarium-backend-go/internal/domain/salaryfield"
	"github.com/salarium/salarium-backend-go/internal/handler/http/response"
	"github.com/salarium/salarium-backend-go/internal/pkg/validator"
)

type SalaryFieldHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type salaryFieldHandlerImpl struct {
	fieldService salaryfield.SalaryFieldService
}

func NewSalaryFieldHandler(fieldService salaryfield.SalaryFieldService) SalaryFieldHandler {
	return &salaryFieldHandlerImpl{fieldService: fieldService}
}

func (h *salaryFieldHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req salaryfield.CreateSalaryFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.fieldService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary field created", result)
}

func (h *salaryFieldHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.fieldService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryFieldHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Salary field ID must be a valid UUID", nil)
		return
	}

	var req salaryfield.UpdateSalaryFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	if err := h.fieldService.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary field updated", nil)
}

func (h *salaryFieldHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Salary field ID must be a valid UUID", nil)
		return
	}

	if err := h.fieldService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary field deleted", nil)
}
