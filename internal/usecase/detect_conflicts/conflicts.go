package detect_conflicts

import (
	"strconv"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Бронирования без площадки группируются в отдельную корзину,
// чтобы конфликт не потерялся молча
const (
	unknownVenueKey  = "unknown"
	unknownVenueName = "Unknown venue"
)

// detectConflicts находит для каждого выбранного зала существующие бронирования,
// пересекающиеся с запрошенным временем
//
// Пересечение проверяется по строгим неравенствам (полуоткрытые интервалы):
// - Запрос 12:00-13:00, бронирование 10:00-12:00 → НЕТ конфликта (граничат)
// - Запрос 11:59-13:00, бронирование 10:00-12:00 → ЕСТЬ конфликт (11:59-12:00)
//
// В результат попадают ТОЛЬКО залы, у которых есть хотя бы одно пересечение -
// это список конфликтов, а не список всех залов. Порядок залов в результате
// повторяет порядок spaceIDs, бронирования внутри зала идут по времени начала.
//
// Пустой список залов или окно с start >= end означают "нечего проверять" -
// возвращается пустой результат, а не ошибка.
func detectConflicts(
	spaceIDs []int64,
	window domain.TimeWindow,
	bookings []*domain.Booking,
	excludeBookingID int64,
) []SpaceConflict {
	if len(spaceIDs) == 0 || !window.IsValid() {
		return []SpaceConflict{}
	}

	// Группируем пересекающиеся бронирования по залам
	overlappingBySpace := make(map[int64][]*domain.Booking)
	for _, booking := range bookings {
		// При редактировании бронирование не должно конфликтовать само с собой
		if excludeBookingID != 0 && booking.ID == excludeBookingID {
			continue
		}

		// Неактивные бронирования зал не занимают
		if !booking.IsActive() {
			continue
		}

		if !window.Overlaps(booking.Window()) {
			continue
		}

		overlappingBySpace[booking.SpaceID] = append(overlappingBySpace[booking.SpaceID], booking)
	}

	result := make([]SpaceConflict, 0, len(overlappingBySpace))
	seen := make(map[int64]struct{}, len(spaceIDs))

	for _, spaceID := range spaceIDs {
		// Повторы во входном наборе залов не порождают дублей в результате
		if _, dup := seen[spaceID]; dup {
			continue
		}
		seen[spaceID] = struct{}{}

		overlapping := overlappingBySpace[spaceID]
		if len(overlapping) == 0 {
			continue
		}

		conflict := SpaceConflict{
			SpaceID:   spaceID,
			SpaceName: overlapping[0].SpaceName,
			VenueID:   overlapping[0].VenueID,
			VenueName: overlapping[0].VenueName,
			Bookings:  make([]ConflictingBooking, 0, len(overlapping)),
		}

		for _, booking := range overlapping {
			conflict.Bookings = append(conflict.Bookings, ConflictingBooking{
				BookingID:    booking.ID,
				EventName:    booking.EventName,
				CustomerName: booking.CustomerName,
				Window:       booking.Window(),
			})
		}

		result = append(result, conflict)
	}

	return result
}

// buildReport агрегирует конфликты по площадкам для отображения предупреждения
func buildReport(conflicts []SpaceConflict) Report {
	report := make(Report)

	for _, conflict := range conflicts {
		key := unknownVenueKey
		name := unknownVenueName
		if conflict.VenueID > 0 {
			key = strconv.FormatInt(conflict.VenueID, 10)
			name = conflict.VenueName
		}

		venueReport, ok := report[key]
		if !ok {
			venueReport = &VenueReport{VenueName: name}
			report[key] = venueReport
		}

		venueReport.Spaces = append(venueReport.Spaces, SpaceSummary{
			SpaceName:     conflict.SpaceName,
			ConflictCount: len(conflict.Bookings),
		})
		// Итог по площадке - сумма пересечений, а не число залов
		venueReport.TotalConflicts += len(conflict.Bookings)
	}

	return report
}
