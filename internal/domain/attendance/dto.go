package attendance

import (
	"mime/multipart"
	"strings"

	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/validator"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/worktime"
)

// CheckInRequest carries the check-in position plus the proof photo from the
// multipart form.
type CheckInRequest struct {
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func validatePosition(lat, lng float64) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if lat < -90 || lat > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if lng < -180 || lng > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}
	return errs
}

func validateProofPhoto(header *multipart.FileHeader) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if header == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "attendance proof photo is required",
		})
		return errs
	}

	filename := header.Filename
	dot := strings.LastIndex(filename, ".")
	ext := ""
	if dot >= 0 {
		ext = strings.ToLower(filename[dot:])
	}

	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "invalid file type: only jpg, jpeg, png allowed",
		})
	} else if header.Size > 10<<20 { // 10MB
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "attendance proof photo size must not exceed 10MB",
		})
	}
	return errs
}

func (r *CheckInRequest) Validate() error {
	errs := validatePosition(r.Latitude, r.Longitude)
	errs = append(errs, validateProofPhoto(r.FileHeader)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CheckOutRequest mirrors CheckInRequest for the closing half of the session.
type CheckOutRequest struct {
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	errs := validatePosition(r.Latitude, r.Longitude)
	errs = append(errs, validateProofPhoto(r.FileHeader)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// OwnTimeFilter selects a page of the caller's attendance history.
type OwnTimeFilter struct {
	StartDate *string // YYYY-MM-DD
	EndDate   *string // YYYY-MM-DD
	Page      int
	Limit     int
}

func (f *OwnTimeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "page must be a positive number"})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be a positive number"})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate must be YYYY-MM-DD"})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserTimeFilter is the admin view of one employee's history.
type UserTimeFilter struct {
	UserID    string  `json:"user_id"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Page      int     `json:"page"`
	Limit     int     `json:"limit"`
}

func (f *UserTimeFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}

	own := OwnTimeFilter{StartDate: f.StartDate, EndDate: f.EndDate, Page: f.Page, Limit: f.Limit}
	if err := own.Validate(); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, verrs...)
		}
	}
	f.Page = own.Page
	f.Limit = own.Limit

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WorkEntryResponse is the wire shape of an attendance record. TimeDifference
// carries the "H:MM" text or the Not Checked Out sentinel.
type WorkEntryResponse struct {
	ID               string   `json:"id"`
	UserID           string   `json:"user_id"`
	UserName         string   `json:"user_name,omitempty"`
	Date             string   `json:"date"`
	CheckinTime      string   `json:"checkin_time"`
	CheckoutTime     *string  `json:"checkout_time,omitempty"`
	TimeDifference   string   `json:"time_difference"`
	CheckinPhotoURL  *string  `json:"checkin_photo_url,omitempty"`
	CheckoutPhotoURL *string  `json:"checkout_photo_url,omitempty"`
	CheckinAddress   *string  `json:"checkin_address,omitempty"`
	CheckoutAddress  *string  `json:"checkout_address,omitempty"`
	Status           string   `json:"status"`
	DistanceMeters   *float64 `json:"distance_meters,omitempty"`
}

// ListWorkEntriesResponse is a paged history slice.
type ListWorkEntriesResponse struct {
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
	Entries    []WorkEntryResponse `json:"entries"`
}

// StatusResponse reports the day status, the derived state, and the elapsed
// worked time so clients can seed a live ticking timer without another
// round trip.
type StatusResponse struct {
	DayStatus
	State       State              `json:"state"`
	Elapsed     *worktime.Duration `json:"elapsed,omitempty"`
	ElapsedText *string            `json:"elapsed_text,omitempty"`
}
