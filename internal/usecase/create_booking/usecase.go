package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	customerClient "github.com/m04kA/SMC-VenueService/internal/integrations/customerservice"
	venueRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/venue"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	ruleRepo       RuleRepository
	venueRepo      VenueRepository
	customerClient CustomerServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	ruleRepo RuleRepository,
	venueRepository VenueRepository,
	customerServiceClient CustomerServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		ruleRepo:       ruleRepo,
		venueRepo:      venueRepository,
		customerClient: customerServiceClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости зала и вставка выполняются в сериализуемой транзакции,
// чтобы два конкурентных бронирования не заняли один зал на одно время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, space=%d, date=%s, window=[%s, %s)",
		req.CustomerID, req.SpaceID, req.EventDate.Format(domain.DateFormat),
		req.Window.Start.Format(time.RFC3339), req.Window.End.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.EventDate, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем зал вместе с площадкой
	space, err := uc.venueRepo.GetSpace(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrSpaceNotFound) {
			uc.logger.Warn("CreateBooking: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	// 4. Проверяем вместимость зала
	if space.Capacity > 0 && req.GuestCount > space.Capacity {
		uc.logger.Warn("CreateBooking: guest count %d exceeds capacity %d of space id=%d",
			req.GuestCount, space.Capacity, req.SpaceID)
		return nil, ErrCapacityExceeded
	}

	// 5. Получаем клиента (имя денормализуется в бронирование)
	customer, err := uc.customerClient.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customerClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 6. Считаем стоимость по выбранным налогам и сборам
	// Каталог правил читается вне транзакции - он не участвует в гонке за зал
	ruleIDs := make([]int64, 0, len(req.FeeIDs)+len(req.TaxIDs))
	ruleIDs = append(ruleIDs, req.FeeIDs...)
	ruleIDs = append(ruleIDs, req.TaxIDs...)

	catalog, err := uc.ruleRepo.GetByIDs(ctx, ruleIDs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}

	breakdown := domain.ComputePriceBreakdown(req.BasePrice, req.FeeIDs, req.TaxIDs, catalog)

	// Переменная для хранения результата
	var result *domain.Booking

	// 7. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем активные бронирования зала на эту дату (с блокировкой FOR UPDATE)
		existing, err := uc.bookingRepo.GetActiveBySpaces(txCtx, []int64{req.SpaceID}, dateOnly(req.EventDate))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get existing bookings: %v", err)
			return fmt.Errorf("%w: failed to get existing bookings: %v", ErrInternal, err)
		}

		// 7.2. Зал занят, если хоть одно активное бронирование пересекается с окном
		for _, booking := range existing {
			if req.Window.Overlaps(booking.Window()) {
				uc.logger.Warn("CreateBooking: space id=%d is occupied by booking id=%d",
					req.SpaceID, booking.ID)
				return ErrSpaceNotAvailable
			}
		}

		// 7.3. Создаем бронирование
		newBooking := &domain.Booking{
			CustomerID:   req.CustomerID,
			VenueID:      space.VenueID,
			SpaceID:      space.ID,
			EventName:    req.EventName,
			EventDate:    dateOnly(req.EventDate),
			StartTime:    req.Window.Start,
			EndTime:      req.Window.End,
			GuestCount:   req.GuestCount,
			Status:       domain.StatusPending,
			BasePrice:    breakdown.BasePrice,
			TotalPrice:   breakdown.Total,
			CustomerName: customer.Name,
			SpaceName:    space.Name,
			VenueName:    space.VenueName,
			Notes:        req.Notes,
		}

		result, err = uc.bookingRepo.Create(txCtx, newBooking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d created for customer=%d, space=%d, total=%s",
		result.ID, req.CustomerID, req.SpaceID, result.TotalPrice)

	return &Response{
		Booking:   result,
		Breakdown: breakdown,
	}, nil
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
