package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/worktrail-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/geo"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/geocode"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/worktime"
	"github.com/worktrail-hq/attendance-backend-go/internal/service/file"
)

// Geocoder resolves a position into a human-readable address.
type Geocoder interface {
	Reverse(ctx context.Context, pos geo.Coordinate) (string, error)
}

type AttendanceServiceImpl struct {
	attendance.WorkEntryRepository
	fileService file.FileService
	geocoder    Geocoder
	office      geo.Office
}

func NewAttendanceService(entryRepository attendance.WorkEntryRepository, fileService file.FileService, geocoder Geocoder, office geo.Office) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		WorkEntryRepository: entryRepository,
		fileService:         fileService,
		geocoder:            geocoder,
		office:              office,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

// workDay is the attendance day bucket for a timestamp. Days are tracked in
// UTC so the auto-close job and the uniqueness check agree on boundaries.
func workDay(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// resolveAddress reverse-geocodes the position. Lookup failures degrade to a
// coordinate label; an address is never a reason to refuse attendance.
func (a *AttendanceServiceImpl) resolveAddress(ctx context.Context, pos geo.Coordinate) string {
	address, err := a.geocoder.Reverse(ctx, pos)
	if err != nil || address == "" {
		return geocode.FallbackLabel(pos)
	}
	return address
}

func toResponse(entry attendance.WorkEntry, distance *float64) attendance.WorkEntryResponse {
	resp := attendance.WorkEntryResponse{
		ID:               entry.ID,
		UserID:           entry.UserID,
		Date:             entry.Date.Format("2006-01-02"),
		CheckinTime:      entry.CheckinTime.Format("2006-01-02 15:04:05"),
		CheckoutTime:     timePtrToString(entry.CheckoutTime),
		TimeDifference:   entry.DurationText(),
		CheckinPhotoURL:  entry.CheckinPhotoURL,
		CheckoutPhotoURL: entry.CheckoutPhotoURL,
		CheckinAddress:   entry.CheckinAddress,
		CheckoutAddress:  entry.CheckoutAddress,
		Status:           entry.Status,
		DistanceMeters:   distance,
	}
	if entry.UserName != nil {
		resp.UserName = *entry.UserName
	}
	return resp
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.WorkEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.WorkEntryResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.WorkEntryResponse{}, err
	}

	nowUTC := time.Now().UTC()
	today := workDay(nowUTC)

	dayEntry, err := a.GetDayEntry(ctx, userID, today)
	if err != nil {
		return attendance.WorkEntryResponse{}, fmt.Errorf("failed to check existing entry for today: %w", err)
	}
	if dayEntry != nil {
		if dayEntry.IsOpen() {
			return attendance.WorkEntryResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.WorkEntryResponse{}, attendance.ErrAlreadyCheckedOut
	}

	// Geofence gate: refused positions leave no record at all.
	pos := geo.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	classification := geo.Classify(pos, a.office)
	if !classification.Inside {
		return attendance.WorkEntryResponse{}, &attendance.OutsideGeofenceError{
			DistanceMeters: classification.DistanceMeters,
			RadiusMeters:   a.office.RadiusMeters,
		}
	}

	photoURL, err := a.fileService.UploadProofPhoto(ctx, userID, today, req.File, req.FileHeader.Filename, "checkin")
	if err != nil {
		return attendance.WorkEntryResponse{}, fmt.Errorf("failed to upload proof photo: %w", err)
	}

	address := a.resolveAddress(ctx, pos)

	entry := attendance.WorkEntry{
		UserID:           userID,
		Date:             today,
		CheckinTime:      nowUTC,
		CheckinLatitude:  req.Latitude,
		CheckinLongitude: req.Longitude,
		CheckinPhotoURL:  &photoURL,
		CheckinAddress:   &address,
		Status:           attendance.StatusActive,
	}

	created, err := a.WorkEntryRepository.Create(ctx, entry)
	if err != nil {
		return attendance.WorkEntryResponse{}, fmt.Errorf("failed to create work entry: %w", err)
	}

	return toResponse(created, &classification.DistanceMeters), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.WorkEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.WorkEntryResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.WorkEntryResponse{}, err
	}

	nowUTC := time.Now().UTC()

	entry, err := a.GetOpenEntry(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			dayEntry, dayErr := a.GetDayEntry(ctx, userID, workDay(nowUTC))
			if dayErr == nil && dayEntry != nil && !dayEntry.IsOpen() {
				return attendance.WorkEntryResponse{}, attendance.ErrAlreadyCheckedOut
			}
			return attendance.WorkEntryResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.WorkEntryResponse{}, fmt.Errorf("failed to get open work entry: %w", err)
	}

	pos := geo.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	classification := geo.Classify(pos, a.office)
	if !classification.Inside {
		return attendance.WorkEntryResponse{}, &attendance.OutsideGeofenceError{
			DistanceMeters: classification.DistanceMeters,
			RadiusMeters:   a.office.RadiusMeters,
		}
	}

	photoURL, err := a.fileService.UploadProofPhoto(ctx, userID, entry.Date, req.File, req.FileHeader.Filename, "checkout")
	if err != nil {
		return attendance.WorkEntryResponse{}, fmt.Errorf("failed to upload proof photo: %w", err)
	}

	address := a.resolveAddress(ctx, pos)
	worked := worktime.Elapsed(entry.CheckinTime, nowUTC)
	workMinutes := worked.TotalMinutes

	entry.CheckoutTime = &nowUTC
	entry.CheckoutLatitude = &req.Latitude
	entry.CheckoutLongitude = &req.Longitude
	entry.CheckoutPhotoURL = &photoURL
	entry.CheckoutAddress = &address
	entry.Status = attendance.StatusCompleted
	entry.WorkMinutes = &workMinutes

	if err := a.WorkEntryRepository.Update(ctx, entry); err != nil {
		return attendance.WorkEntryResponse{}, fmt.Errorf("failed to close work entry: %w", err)
	}

	return toResponse(entry, &classification.DistanceMeters), nil
}

// Status implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Status(ctx context.Context) (attendance.StatusResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	nowUTC := time.Now().UTC()

	dayEntry, err := a.GetDayEntry(ctx, userID, workDay(nowUTC))
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to get today's entry: %w", err)
	}

	var status attendance.DayStatus
	if dayEntry != nil {
		checkin := dayEntry.CheckinTime
		status = attendance.DayStatus{
			CheckedIn:   true,
			CheckedOut:  !dayEntry.IsOpen(),
			CheckinTime: &checkin,
		}
	}

	resp := attendance.StatusResponse{
		DayStatus: status,
		State:     attendance.DeriveState(status),
	}

	if resp.State == attendance.StateCheckedInActive {
		elapsed := worktime.Elapsed(dayEntry.CheckinTime, nowUTC)
		text := worktime.FormatHHMM(elapsed)
		resp.Elapsed = &elapsed
		resp.ElapsedText = &text
	}

	return resp, nil
}

func (a *AttendanceServiceImpl) listEntries(ctx context.Context, userID string, filter attendance.OwnTimeFilter) (attendance.ListWorkEntriesResponse, error) {
	entries, total, err := a.ListByUser(ctx, userID, filter)
	if err != nil {
		return attendance.ListWorkEntriesResponse{}, fmt.Errorf("failed to list work entries: %w", err)
	}

	responses := make([]attendance.WorkEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toResponse(entry, nil))
	}

	return attendance.ListWorkEntriesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Entries:    responses,
	}, nil
}

// GetOwnTime implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetOwnTime(ctx context.Context, filter attendance.OwnTimeFilter) (attendance.ListWorkEntriesResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListWorkEntriesResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.ListWorkEntriesResponse{}, err
	}

	return a.listEntries(ctx, userID, filter)
}

// GetUserTime implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetUserTime(ctx context.Context, filter attendance.UserTimeFilter) (attendance.ListWorkEntriesResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListWorkEntriesResponse{}, err
	}

	return a.listEntries(ctx, filter.UserID, attendance.OwnTimeFilter{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Page:      filter.Page,
		Limit:     filter.Limit,
	})
}
