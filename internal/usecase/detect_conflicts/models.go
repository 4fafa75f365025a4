package detect_conflicts

import (
	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Request модель запроса на проверку конфликтов бронирования
type Request struct {
	UserID           int64             // ID пользователя (для логирования, не влияет на результат)
	SpaceIDs         []int64           // Залы, выбранные для предполагаемого бронирования
	Window           domain.TimeWindow // Предполагаемое время бронирования
	ExcludeBookingID *int64            // Исключить бронирование (при редактировании существующего)
}

// Response модель ответа с конфликтами и сводкой по площадкам
type Response struct {
	Conflicts []SpaceConflict // Конфликты по залам (только залы, где есть пересечения)
	Report    Report          // Сводка по площадкам для отображения предупреждения
}

// SpaceConflict конфликты одного зала: все существующие бронирования,
// пересекающиеся с предполагаемым временем
type SpaceConflict struct {
	SpaceID   int64
	SpaceName string
	VenueID   int64
	VenueName string
	Bookings  []ConflictingBooking
}

// ConflictingBooking существующее бронирование, пересекающееся с запрошенным временем
type ConflictingBooking struct {
	BookingID    int64
	EventName    string
	CustomerName string
	Window       domain.TimeWindow
}

// Report сводка конфликтов, сгруппированная по площадкам
// Ключ - id площадки в десятичной записи, либо "unknown" для бронирований без площадки
type Report map[string]*VenueReport

// VenueReport сводка конфликтов одной площадки
type VenueReport struct {
	VenueName      string
	Spaces         []SpaceSummary
	TotalConflicts int // Сумма пересечений по всем залам, а не число залов
}

// SpaceSummary число конфликтов одного зала
type SpaceSummary struct {
	SpaceName     string
	ConflictCount int
}
