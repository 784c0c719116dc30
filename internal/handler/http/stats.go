package http

import (
	"net/http"
	"strconv"

	"github.com/salarium/salarium-backend-go/internal/domain/stats"
	"github.com/salarium/salarium-backend-go/internal/handler/http/response"
)

type StatsHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Yearly(w http.ResponseWriter, r *http.Request)
	Family(w http.ResponseWriter, r *http.Request)
	CumulativeInsurance(w http.ResponseWriter, r *http.Request)
	IncomeComposition(w http.ResponseWriter, r *http.Request)
	DeductionsBreakdown(w http.ResponseWriter, r *http.Request)
	ContributionsCumulative(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandlerImpl{statsService: statsService}
}

func parseStatsFilter(r *http.Request) (stats.StatsFilter, error) {
	var filter stats.StatsFilter

	if personID := r.URL.Query().Get("person_id"); personID != "" {
		filter.PersonID = &personID
	}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return stats.StatsFilter{}, err
		}
		filter.Year = &year
	}
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			return stats.StatsFilter{}, err
		}
		filter.Month = &month
	}
	filter.Range = r.URL.Query().Get("range")

	return filter, nil
}

func (h *statsHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	filter, err := parseStatsFilter(r)
	if err != nil {
		response.BadRequest(w, "Invalid filter parameter", nil)
		return
	}

	result, err := h.statsService.Monthly(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *statsHandlerImpl) Yearly(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("year")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "Invalid or missing year", nil)
		return
	}

	var personID *string
	if pid := r.URL.Query().Get("person_id"); pid != "" {
		personID = &pid
	}

	result, err := h.statsService.Yearly(r.Context(), personID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *statsHandlerImpl) Family(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("year")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "Invalid or missing year", nil)
		return
	}

	result, err := h.statsService.Family(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *statsHandlerImpl) CumulativeInsurance(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.CumulativeInsurance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *statsHandlerImpl) IncomeComposition(w http.ResponseWriter, r *http.Request) {
	filter, err := parseStatsFilter(r)
	if err != nil {
		response.BadRequest(w, "Invalid filter parameter", nil)
		return
	}

	result, err := h.statsService.IncomeComposition(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *statsHandlerImpl) DeductionsBreakdown(w http.ResponseWriter, r *http.Request) {
	filter, err := parseStatsFilter(r)
	if err != nil {
		response.BadRequest(w, "Invalid filter parameter", nil)
		return
	}

	result, err := h.statsService.DeductionsBreakdown(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *statsHandlerImpl) ContributionsCumulative(w http.ResponseWriter, r *http.Request) {
	personID := r.URL.Query().Get("person_id")
	if personID == "" {
		response.BadRequest(w, "Person ID is required", nil)
		return
	}

	result, err := h.statsService.ContributionsCumulative(r.Context(), personID, r.URL.Query().Get("range"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
