package detect_conflicts

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	detectConflicts "github.com/m04kA/SMC-VenueService/internal/usecase/detect_conflicts"
)

// DetectConflictsRequest HTTP request model
type DetectConflictsRequest struct {
	SpaceIDs         []int64   `json:"spaceIds"`
	Start            time.Time `json:"start"` // ISO 8601
	End              time.Time `json:"end"`   // ISO 8601
	ExcludeBookingID *int64    `json:"excludeBookingId,omitempty"`
}

// ConflictingBookingResponse существующее бронирование, пересекающееся с запрошенным временем
type ConflictingBookingResponse struct {
	BookingID    int64  `json:"bookingId"`
	EventName    string `json:"eventName"`
	CustomerName string `json:"customerName"`
	Start        string `json:"start"`
	End          string `json:"end"`
}

// SpaceConflictResponse конфликты одного зала
type SpaceConflictResponse struct {
	SpaceID   int64                        `json:"spaceId"`
	SpaceName string                       `json:"spaceName"`
	VenueID   int64                        `json:"venueId"`
	VenueName string                       `json:"venueName"`
	Conflicts []ConflictingBookingResponse `json:"conflicts"`
}

// SpaceSummaryResponse число конфликтов одного зала в сводке
type SpaceSummaryResponse struct {
	SpaceName     string `json:"spaceName"`
	ConflictCount int    `json:"conflictCount"`
}

// VenueReportResponse сводка конфликтов одной площадки
type VenueReportResponse struct {
	VenueName      string                 `json:"venueName"`
	Spaces         []SpaceSummaryResponse `json:"spaces"`
	TotalConflicts int                    `json:"totalConflicts"`
}

// DetectConflictsResponse HTTP response model
// Report сгруппирован по id площадки; бронирования без площадки попадают в ключ "unknown"
type DetectConflictsResponse struct {
	Conflicts []SpaceConflictResponse        `json:"conflicts"`
	Report    map[string]VenueReportResponse `json:"report"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DetectConflictsRequest) ToUseCaseRequest(userID int64) *detectConflicts.Request {
	return &detectConflicts.Request{
		UserID:           userID,
		SpaceIDs:         r.SpaceIDs,
		Window:           domain.TimeWindow{Start: r.Start, End: r.End},
		ExcludeBookingID: r.ExcludeBookingID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *detectConflicts.Response) *DetectConflictsResponse {
	conflicts := make([]SpaceConflictResponse, len(resp.Conflicts))
	for i, sc := range resp.Conflicts {
		bookings := make([]ConflictingBookingResponse, len(sc.Bookings))
		for j, b := range sc.Bookings {
			bookings[j] = ConflictingBookingResponse{
				BookingID:    b.BookingID,
				EventName:    b.EventName,
				CustomerName: b.CustomerName,
				Start:        b.Window.Start.Format(time.RFC3339),
				End:          b.Window.End.Format(time.RFC3339),
			}
		}
		conflicts[i] = SpaceConflictResponse{
			SpaceID:   sc.SpaceID,
			SpaceName: sc.SpaceName,
			VenueID:   sc.VenueID,
			VenueName: sc.VenueName,
			Conflicts: bookings,
		}
	}

	report := make(map[string]VenueReportResponse, len(resp.Report))
	for venueKey, vr := range resp.Report {
		spaces := make([]SpaceSummaryResponse, len(vr.Spaces))
		for i, s := range vr.Spaces {
			spaces[i] = SpaceSummaryResponse{
				SpaceName:     s.SpaceName,
				ConflictCount: s.ConflictCount,
			}
		}
		report[venueKey] = VenueReportResponse{
			VenueName:      vr.VenueName,
			Spaces:         spaces,
			TotalConflicts: vr.TotalConflicts,
		}
	}

	return &DetectConflictsResponse{
		Conflicts: conflicts,
		Report:    report,
	}
}
