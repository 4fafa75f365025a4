package detect_conflicts

import (
	"context"
	"fmt"
	"time"
)

// UseCase use case проверки конфликтов бронирования
// Вызывается при каждом изменении выбранных залов или времени в черновике
// бронирования - результат пересчитывается с нуля и нигде не кешируется
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку конфликтов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DetectConflicts: user=%d, spaces=%v, window=[%s, %s)",
		req.UserID, req.SpaceIDs,
		req.Window.Start.Format(time.RFC3339), req.Window.End.Format(time.RFC3339))

	// Некорректный запрос - это "нечего проверять", а не ошибка:
	// подсказка о конфликтах не должна блокировать форму
	if len(req.SpaceIDs) == 0 || !req.Window.IsValid() {
		uc.logger.Warn("DetectConflicts: nothing to check (spaces=%d, window valid=%t)",
			len(req.SpaceIDs), req.Window.IsValid())
		return emptyResponse(), nil
	}

	// Получаем все активные бронирования выбранных залов на эту дату
	date := dateOnly(req.Window.Start)
	bookings, err := uc.bookingRepo.GetActiveBySpaces(ctx, req.SpaceIDs, date)
	if err != nil {
		uc.logger.Error("DetectConflicts: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	var excludeID int64
	if req.ExcludeBookingID != nil {
		excludeID = *req.ExcludeBookingID
	}

	conflicts := detectConflicts(req.SpaceIDs, req.Window, bookings, excludeID)
	report := buildReport(conflicts)

	uc.logger.Info("DetectConflicts: found %d conflicting spaces across %d venues",
		len(conflicts), len(report))

	return &Response{
		Conflicts: conflicts,
		Report:    report,
	}, nil
}

func emptyResponse() *Response {
	return &Response{
		Conflicts: []SpaceConflict{},
		Report:    Report{},
	}
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
