package domain

// Business validation constants
const (
	MaxEventNameLength          = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MinGuestCount               = 1
	MaxGuestCount               = 10000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Такие бронирования не занимают зал и не участвуют в поиске конфликтов
var InactiveStatuses = []BookingStatus{
	StatusCancelledByCustomer,
	StatusCancelledByVenue,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
