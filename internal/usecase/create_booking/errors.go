package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeWindow возвращается, когда окно бронирования некорректно (start >= end)
	ErrInvalidTimeWindow = errors.New("invalid booking time window")

	// ErrDateInPast возвращается при попытке бронирования на прошедшую дату
	ErrDateInPast = errors.New("booking date is in the past")

	// ErrSpaceNotFound возвращается, когда зал не найден
	ErrSpaceNotFound = errors.New("space not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrSpaceNotAvailable возвращается, когда зал занят в выбранное время
	ErrSpaceNotAvailable = errors.New("space is not available for the requested window")

	// ErrCapacityExceeded возвращается, когда гостей больше вместимости зала
	ErrCapacityExceeded = errors.New("guest count exceeds space capacity")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
