package model

// Activity is one logged unit of daily work. Records are immutable once
// created; the only mutation is deletion by the owning user.
type Activity struct {
	ID           int     `json:"id"`
	UserID       int     `json:"user_id"`
	Date         Date    `json:"date"`
	Client       string  `json:"client"`
	Project      string  `json:"project"`
	ActivityType string  `json:"activity_type"`
	Achievements string  `json:"achievements"`
	Challenges   string  `json:"challenges"`
	Hours        float64 `json:"hours"`
}
