package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Router struct {
	authHandler  *AuthHandler
	habitHandler *HabitHandler
	middleware   *Middleware
	router       *mux.Router
}

func NewRouter(
	authHandler *AuthHandler,
	habitHandler *HabitHandler,
	middleware *Middleware,
	router *mux.Router) *Router {
	return &Router{
		authHandler:  authHandler,
		habitHandler: habitHandler,
		middleware:   middleware,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(r.middleware.Logging)
	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.router.HandleFunc("/healthz", r.habitHandler.Health).Methods("GET")
	r.router.HandleFunc("/auth/register", r.authHandler.Register).Methods("POST")
	r.router.HandleFunc("/auth/login", r.authHandler.Login).Methods("POST")

	// everything below needs a bearer token
	protected := r.router.NewRoute().Subrouter()
	protected.Use(r.middleware.RequireAuth)
	protected.HandleFunc("/habits/weekly", r.habitHandler.GetWeekly).Methods("GET")
	protected.HandleFunc("/habits/update", r.habitHandler.Update).Methods("POST")
	protected.HandleFunc("/goals", r.habitHandler.GetGoals).Methods("GET")
	protected.HandleFunc("/goals", r.habitHandler.SaveGoals).Methods("POST")
}
