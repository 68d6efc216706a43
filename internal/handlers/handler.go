package handlers

import (
	"net/http"

	"github.com/cypress-app/cypress-api/internal/auth"
	"github.com/cypress-app/cypress-api/internal/store"
	"github.com/cypress-app/cypress-api/internal/utils"
)

type Handler struct {
	Auth    *AuthHandler
	Reports *ReportHandler
}

func NewHandler(authSvc *auth.Service, reports *store.ReportStore) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(authSvc),
		Reports: NewReportHandler(reports),
	}
}

// Root is the unauthenticated welcome endpoint.
func Root(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to Cypress API",
	})
}
