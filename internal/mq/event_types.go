package mq

import "time"

// Routing keys published by the API and consumed by the audit worker.
const (
	RoutingKeyActivityLogged = "activity.logged"
	RoutingKeyLeaveRequested = "leave.requested"
	RoutingKeyExpenseLogged  = "expense.logged"
)

type ActivityLoggedPayload struct {
	ActivityID int       `json:"activity_id"`
	UserID     int       `json:"user_id"`
	Date       string    `json:"date"`
	Client     string    `json:"client"`
	Project    string    `json:"project"`
	Hours      float64   `json:"hours"`
	LoggedAt   time.Time `json:"logged_at"`
}

type LeaveRequestedPayload struct {
	LeaveID     int       `json:"leave_id"`
	UserID      int       `json:"user_id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	LeaveType   string    `json:"leave_type"`
	RequestedAt time.Time `json:"requested_at"`
}

type ExpenseLoggedPayload struct {
	ExpenseID int       `json:"expense_id"`
	UserID    int       `json:"user_id"`
	Date      string    `json:"date"`
	Project   string    `json:"project"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	LoggedAt  time.Time `json:"logged_at"`
}
