package handlers

import (
	"net/http"

	"github.com/cypress-app/cypress-api/internal/models"
	"github.com/cypress-app/cypress-api/internal/store"
	"github.com/cypress-app/cypress-api/internal/utils"
)

type ReportHandler struct {
	Reports *store.ReportStore
}

func NewReportHandler(reports *store.ReportStore) *ReportHandler {
	return &ReportHandler{Reports: reports}
}

// ---------------------- CREATE ----------------------

func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Lat         *float64 `json:"lat"`
		Lng         *float64 `json:"lng"`
		ImageURL    *string  `json:"image_url"`
	}

	if err := utils.DecodeJSON(w, r, &body); err != nil {
		return
	}

	if body.Title == "" || body.Description == "" {
		utils.JSONError(w, http.StatusBadRequest, "title and description required")
		return
	}
	if body.Lat == nil || body.Lng == nil {
		utils.JSONError(w, http.StatusBadRequest, "lat and lng required")
		return
	}

	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	report := models.Report{
		UserID:      user.ID,
		Title:       body.Title,
		Description: body.Description,
		ImageURL:    body.ImageURL,
		Lat:         *body.Lat,
		Lng:         *body.Lng,
	}

	if err := h.Reports.Create(r.Context(), &report); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSON(w, http.StatusCreated, report)
}

// ---------------------- LIST ----------------------

func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Reports.List(r.Context())
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSON(w, http.StatusOK, reports)
}
