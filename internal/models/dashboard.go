package models

// DashboardStats — ответ GET /dashboard/stats.
type DashboardStats struct {
	Bookings struct {
		Total     int `json:"total"`
		Pending   int `json:"pending"`
		Completed int `json:"completed"`
	} `json:"bookings"`
	Contacts struct {
		Total  int `json:"total"`
		Unread int `json:"unread"`
		Read   int `json:"read"`
	} `json:"contacts"`
	Users struct {
		Total  int `json:"total"`
		Active int `json:"active"`
	} `json:"users"`
	Services struct {
		Total  int `json:"total"`
		Active int `json:"active"`
	} `json:"services"`
}

// DashboardActivity — ответ GET /dashboard/activity.
type DashboardActivity struct {
	RecentBookings []Booking `json:"recentBookings"`
	RecentContacts []Contact `json:"recentContacts"`
}

// MessageResponse — ответы вида {"message": "..."} (seed и т.п.).
type MessageResponse struct {
	Message string `json:"message"`
}
