package model

// StatusPending is the initial status of leave requests and expenses.
const StatusPending = "pending"

// Leave is a leave request covering the inclusive [StartDate, EndDate] range.
type Leave struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	StartDate   Date   `json:"start_date"`
	EndDate     Date   `json:"end_date"`
	LeaveType   string `json:"leave_type"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
