package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByCustomer BookingStatus = "cancelled_by_customer"
	StatusCancelledByVenue    BookingStatus = "cancelled_by_venue"
	StatusNoShow              BookingStatus = "no_show"
)

// Booking represents a venue booking in the system
type Booking struct {
	ID         int64
	CustomerID int64
	VenueID    int64
	SpaceID    int64
	EventName  string
	EventDate  time.Time
	StartTime  time.Time
	EndTime    time.Time
	GuestCount int
	Status     BookingStatus
	BasePrice  decimal.Decimal
	TotalPrice decimal.Decimal

	// Denormalized data for history and conflict display
	CustomerName string
	SpaceName    string
	VenueName    string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the booking time interval
func (b *Booking) Window() TimeWindow {
	return TimeWindow{Start: b.StartTime, End: b.EndTime}
}

// IsActive returns true if the booking still occupies its space
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByCustomer &&
		b.Status != StatusCancelledByVenue &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByCustomer || b.Status == StatusCancelledByVenue
}

// VenueBookingsFilter фильтр для получения бронирований площадки
type VenueBookingsFilter struct {
	VenueID         int64          // Обязательный параметр
	SpaceID         *int64         // Фильтр по залу (опционально, если nil - все залы)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли неактивные бронирования
}
