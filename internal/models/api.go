package models

// Request and response payloads shared by the HTTP server and the gateway client.

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// WeekResponse is the wire shape of GET /habits/weekly.
type WeekResponse struct {
	WeekStart string                     `json:"weekStart"`
	Data      map[HabitKind][]HabitEntry `json:"data"`
}

// MutateRequest is the body of POST /habits/update.
type MutateRequest struct {
	Type  HabitKind  `json:"type"`
	Op    MutationOp `json:"op"`
	Value *int       `json:"value,omitempty"`
	Date  string     `json:"date,omitempty"`
}

// MutateResponse acknowledges an update. Clients only rely on the status code.
type MutateResponse struct {
	OK        bool         `json:"ok"`
	Day       string       `json:"day"`
	Type      HabitKind    `json:"type"`
	Value     int          `json:"value"`
	WeekStart string       `json:"weekStart"`
	Weekly    []HabitEntry `json:"weekly"`
}

type SaveGoalsRequest struct {
	Goals Goals `json:"goals"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
