package tallysdk

import "time"

// RegisterRequest is the JSON body for POST /v1/auth/register.
type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest is the JSON body for POST /v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token minted by a successful login.
type LoginResponse struct {
	Detail string `json:"detail"`
	Token  string `json:"token"`
}

// MessageResponse is the generic detail-only body used by most endpoints.
type MessageResponse struct {
	Detail string `json:"detail"`
}

// Task is the wire shape of a task owned by the authenticated user.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskRequest is the JSON body for creating or replacing a task.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// Cost is the wire shape of a ledger entry. Amount is integer cents.
type Cost struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CostRequest is the JSON body for creating or replacing a cost.
type CostRequest struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

// HealthResponse is returned by the system probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies, readyz only.
type HealthChecks struct {
	Database string `json:"database"`
}
