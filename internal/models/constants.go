package models

// Роли пользователей
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// BookingStatus константы статусов бронирований
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// BookingStatuses перечисляет статусы в порядке жизненного цикла.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusInProgress,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

// ValidBookingStatuses список валидных статусов бронирований
var ValidBookingStatuses = map[string]struct{}{
	BookingStatusPending:    {},
	BookingStatusConfirmed:  {},
	BookingStatusInProgress: {},
	BookingStatusCompleted:  {},
	BookingStatusCancelled:  {},
}

// BookingStatusLabels подписи статусов для интерфейса.
var BookingStatusLabels = map[string]string{
	BookingStatusPending:    "Pending",
	BookingStatusConfirmed:  "Confirmed",
	BookingStatusInProgress: "In Progress",
	BookingStatusCompleted:  "Completed",
	BookingStatusCancelled:  "Cancelled",
}

// IsValidBookingStatus проверяет статус бронирования.
func IsValidBookingStatus(status string) bool {
	_, ok := ValidBookingStatuses[status]
	return ok
}
