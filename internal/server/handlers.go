package server

import (
	"net/http"

	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/service"
)

type AuthHandler struct {
	svc *service.HabitService
}

func NewAuthHandler(svc *service.HabitService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}
	token, err := h.svc.Register(r.Context(), creds)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, models.TokenResponse{Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}
	token, err := h.svc.Login(r.Context(), creds)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.TokenResponse{Token: token})
}

type HabitHandler struct {
	svc *service.HabitService
}

func NewHabitHandler(svc *service.HabitService) *HabitHandler {
	return &HabitHandler{svc: svc}
}

func (h *HabitHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

// GetWeekly expects an optional ?date=YYYY-MM-DD.
func (h *HabitHandler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Week(r.Context(), userIDFrom(r), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.MutateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.Update(r.Context(), userIDFrom(r), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *HabitHandler) GetGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.Goals(r.Context(), userIDFrom(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (h *HabitHandler) SaveGoals(w http.ResponseWriter, r *http.Request) {
	var req models.SaveGoalsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	goals, err := h.svc.SaveGoals(r.Context(), userIDFrom(r), req.Goals)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}
