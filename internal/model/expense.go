package model

type Expense struct {
	ID          int     `json:"id"`
	UserID      int     `json:"user_id"`
	Date        Date    `json:"date"`
	Project     string  `json:"project"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
}
