package detect_conflicts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/ptr"
)

var testDay = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func testWindow(startHour, startMin, endHour, endMin int) domain.TimeWindow {
	return domain.TimeWindow{
		Start: testDay.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   testDay.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func testBooking(id, spaceID, venueID int64, w domain.TimeWindow) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		SpaceID:      spaceID,
		VenueID:      venueID,
		EventName:    "Event",
		CustomerName: "Customer",
		SpaceName:    "Space",
		VenueName:    "Venue",
		Status:       domain.StatusConfirmed,
		EventDate:    testDay,
		StartTime:    w.Start,
		EndTime:      w.End,
	}
}

func TestDetectConflicts_HalfOpenOverlap(t *testing.T) {
	existing := []*domain.Booking{
		testBooking(1, 10, 100, testWindow(10, 0, 12, 0)),
	}

	// Окна граничат в 12:00 - конфликта нет
	touching := detectConflicts([]int64{10}, testWindow(12, 0, 13, 0), existing, 0)
	assert.Empty(t, touching)

	// Минутное пересечение - конфликт есть
	overlapping := detectConflicts([]int64{10}, testWindow(11, 59, 13, 0), existing, 0)
	require.Len(t, overlapping, 1)
	require.Len(t, overlapping[0].Bookings, 1)
	assert.Equal(t, int64(1), overlapping[0].Bookings[0].BookingID)
}

func TestDetectConflicts_OnlyConflictingSpacesReported(t *testing.T) {
	existing := []*domain.Booking{
		testBooking(1, 20, 100, testWindow(11, 0, 14, 0)),
	}

	// Из трёх залов пересечение есть только у одного
	conflicts := detectConflicts([]int64{10, 20, 30}, testWindow(12, 0, 13, 0), existing, 0)

	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(20), conflicts[0].SpaceID)
}

func TestDetectConflicts_SelfExclusionWhenEditing(t *testing.T) {
	existing := []*domain.Booking{
		testBooking(7, 10, 100, testWindow(10, 0, 12, 0)),
	}

	// При редактировании бронирования 7 его собственное окно не конфликт
	conflicts := detectConflicts([]int64{10}, testWindow(10, 0, 12, 0), existing, 7)
	assert.Empty(t, conflicts)

	// Без исключения то же окно конфликтует
	conflicts = detectConflicts([]int64{10}, testWindow(10, 0, 12, 0), existing, 0)
	assert.Len(t, conflicts, 1)
}

func TestDetectConflicts_MalformedInputYieldsEmptyResult(t *testing.T) {
	existing := []*domain.Booking{
		testBooking(1, 10, 100, testWindow(10, 0, 12, 0)),
	}

	assert.Empty(t, detectConflicts(nil, testWindow(10, 0, 12, 0), existing, 0),
		"empty space set means nothing to check")
	assert.Empty(t, detectConflicts([]int64{10}, testWindow(12, 0, 10, 0), existing, 0),
		"inverted window means nothing to check")
	assert.Empty(t, detectConflicts([]int64{10}, testWindow(12, 0, 12, 0), existing, 0),
		"zero-length window means nothing to check")
}

func TestDetectConflicts_InactiveBookingsIgnored(t *testing.T) {
	cancelled := testBooking(1, 10, 100, testWindow(10, 0, 12, 0))
	cancelled.Status = domain.StatusCancelledByCustomer

	conflicts := detectConflicts([]int64{10}, testWindow(11, 0, 13, 0), []*domain.Booking{cancelled}, 0)
	assert.Empty(t, conflicts)
}

func TestDetectConflicts_PreservesCandidateOrderAndDeduplicates(t *testing.T) {
	existing := []*domain.Booking{
		testBooking(1, 30, 100, testWindow(10, 0, 12, 0)),
		testBooking(2, 10, 100, testWindow(10, 0, 12, 0)),
	}

	conflicts := detectConflicts([]int64{30, 10, 30}, testWindow(11, 0, 13, 0), existing, 0)

	require.Len(t, conflicts, 2)
	assert.Equal(t, int64(30), conflicts[0].SpaceID)
	assert.Equal(t, int64(10), conflicts[1].SpaceID)
}

func TestBuildReport_GroupsByVenueAndSumsOverlaps(t *testing.T) {
	b1 := testBooking(1, 10, 100, testWindow(10, 0, 12, 0))
	b1.SpaceName = "Grand Hall"
	b1.VenueName = "Riverside"
	b2 := testBooking(2, 10, 100, testWindow(12, 30, 14, 0))
	b2.SpaceName = "Grand Hall"
	b2.VenueName = "Riverside"
	b3 := testBooking(3, 20, 100, testWindow(10, 0, 14, 0))
	b3.SpaceName = "Terrace"
	b3.VenueName = "Riverside"

	conflicts := detectConflicts([]int64{10, 20}, testWindow(9, 0, 18, 0),
		[]*domain.Booking{b1, b2, b3}, 0)
	report := buildReport(conflicts)

	require.Contains(t, report, "100")
	venue := report["100"]
	assert.Equal(t, "Riverside", venue.VenueName)
	require.Len(t, venue.Spaces, 2)
	// Сумма пересечений (3), а не число залов (2)
	assert.Equal(t, 3, venue.TotalConflicts)
	assert.Equal(t, 2, venue.Spaces[0].ConflictCount)
	assert.Equal(t, 1, venue.Spaces[1].ConflictCount)
}

func TestBuildReport_UnknownVenueBucket(t *testing.T) {
	orphan := testBooking(1, 10, 0, testWindow(10, 0, 12, 0))
	orphan.VenueName = ""

	conflicts := detectConflicts([]int64{10}, testWindow(11, 0, 13, 0), []*domain.Booking{orphan}, 0)
	report := buildReport(conflicts)

	// Конфликт без площадки не теряется, а попадает в отдельную корзину
	require.Contains(t, report, "unknown")
	assert.Equal(t, "Unknown venue", report["unknown"].VenueName)
	assert.Equal(t, 1, report["unknown"].TotalConflicts)
}

// stubBookingRepo фейковый репозиторий для тестов usecase
type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error
	calls    int
}

func (s *stubBookingRepo) GetActiveBySpaces(_ context.Context, _ []int64, _ time.Time) ([]*domain.Booking, error) {
	s.calls++
	return s.bookings, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		testBooking(1, 10, 100, testWindow(10, 0, 12, 0)),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceIDs: []int64{10},
		Window:   testWindow(11, 0, 13, 0),
	})

	require.NoError(t, err)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, 1, resp.Report["100"].TotalConflicts)
}

func TestUseCase_Execute_SkipsRepositoryForMalformedInput(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceIDs: []int64{},
		Window:   testWindow(10, 0, 12, 0),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Conflicts)
	assert.Empty(t, resp.Report)
	assert.Zero(t, repo.calls, "malformed input must not hit storage")
}

func TestUseCase_Execute_ExcludeBookingID(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		testBooking(7, 10, 100, testWindow(10, 0, 12, 0)),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceIDs:         []int64{10},
		Window:           testWindow(10, 0, 12, 0),
		ExcludeBookingID: ptr.Ptr(int64(7)),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Conflicts)
}
