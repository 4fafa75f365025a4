package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	createBooking "github.com/m04kA/SMC-VenueService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SpaceID       int64           `json:"spaceId"`
	EventName     string          `json:"eventName"`
	EventDate     string          `json:"eventDate"` // "2026-10-15"
	Start         time.Time       `json:"start"`     // ISO 8601
	End           time.Time       `json:"end"`       // ISO 8601
	GuestCount    int             `json:"guestCount"`
	BasePrice     handlers.Amount `json:"basePrice"`
	EnabledFeeIDs []int64         `json:"enabledFeeIds"`
	EnabledTaxIDs []int64         `json:"enabledTaxIds"`
	Notes         *string         `json:"notes,omitempty"`
}

// PriceLineResponse строка детализации (сбор или налог)
type PriceLineResponse struct {
	RuleID int64  `json:"ruleId"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// PriceBreakdownResponse детализация стоимости бронирования
type PriceBreakdownResponse struct {
	BasePrice         string              `json:"basePrice"`
	Fees              []PriceLineResponse `json:"fees"`
	Taxes             []PriceLineResponse `json:"taxes"`
	SubtotalAfterFees string              `json:"subtotalAfterFees"`
	Total             string              `json:"total"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64                   `json:"id"`
	CustomerID   int64                   `json:"customerId"`
	VenueID      int64                   `json:"venueId"`
	SpaceID      int64                   `json:"spaceId"`
	EventName    string                  `json:"eventName"`
	EventDate    string                  `json:"eventDate"`
	Start        string                  `json:"start"`
	End          string                  `json:"end"`
	GuestCount   int                     `json:"guestCount"`
	Status       string                  `json:"status"`
	CustomerName string                  `json:"customerName"`
	SpaceName    string                  `json:"spaceName"`
	VenueName    string                  `json:"venueName"`
	Notes        *string                 `json:"notes,omitempty"`
	Price        *PriceBreakdownResponse `json:"price"`
	CreatedAt    string                  `json:"createdAt"`
	UpdatedAt    string                  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	eventDate, err := time.Parse(domain.DateFormat, r.EventDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID: userID,
		SpaceID:    r.SpaceID,
		EventName:  r.EventName,
		EventDate:  eventDate,
		Window:     domain.TimeWindow{Start: r.Start, End: r.End},
		GuestCount: r.GuestCount,
		BasePrice:  r.BasePrice.Decimal,
		FeeIDs:     r.EnabledFeeIDs,
		TaxIDs:     r.EnabledTaxIDs,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	b := resp.Booking

	return &BookingResponse{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		VenueID:      b.VenueID,
		SpaceID:      b.SpaceID,
		EventName:    b.EventName,
		EventDate:    b.EventDate.Format(domain.DateFormat),
		Start:        b.StartTime.Format(time.RFC3339),
		End:          b.EndTime.Format(time.RFC3339),
		GuestCount:   b.GuestCount,
		Status:       string(b.Status),
		CustomerName: b.CustomerName,
		SpaceName:    b.SpaceName,
		VenueName:    b.VenueName,
		Notes:        b.Notes,
		Price:        fromDomainBreakdown(resp.Breakdown),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}

func fromDomainBreakdown(b *domain.PriceBreakdown) *PriceBreakdownResponse {
	if b == nil {
		return nil
	}

	return &PriceBreakdownResponse{
		BasePrice:         b.BasePrice.String(),
		Fees:              fromDomainLines(b.Fees),
		Taxes:             fromDomainLines(b.Taxes),
		SubtotalAfterFees: b.SubtotalAfterFees.String(),
		Total:             b.Total.String(),
	}
}

func fromDomainLines(lines []domain.PriceLine) []PriceLineResponse {
	result := make([]PriceLineResponse, len(lines))
	for i, line := range lines {
		result[i] = PriceLineResponse{
			RuleID: line.RuleID,
			Name:   line.Name,
			Amount: line.Amount.String(),
		}
	}
	return result
}
