package http

import (
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/worktrail-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrail-hq/attendance-backend-go/internal/handler/http/response"
)

type multipartFile struct {
	file   multipart.File
	header *multipart.FileHeader
}

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	GetOwnTime(w http.ResponseWriter, r *http.Request)
	GetUserCheckingData(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// parseProofForm pulls the position JSON from the 'data' field and the proof
// photo from the 'photo' field of a multipart form.
func parseProofForm(w http.ResponseWriter, r *http.Request, position interface{}) (multipartFile, bool) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return multipartFile{}, false
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return multipartFile{}, false
	}

	if err := json.Unmarshal([]byte(dataJSON), position); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return multipartFile{}, false
	}

	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Attendance proof photo is required", nil)
			return multipartFile{}, false
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return multipartFile{}, false
	}

	return multipartFile{file: file, header: fileHeader}, true
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest

	upload, ok := parseProofForm(w, r, &req)
	if !ok {
		return
	}
	defer upload.file.Close()
	req.File = upload.file
	req.FileHeader = upload.header

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in successful", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest

	upload, ok := parseProofForm(w, r, &req)
	if !ok {
		return
	}
	defer upload.file.Close()
	req.File = upload.file
	req.FileHeader = upload.header

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out successful", result)
}

// Status implements AttendanceHandler.
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Status(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func parseTimeFilter(r *http.Request) attendance.OwnTimeFilter {
	filter := attendance.OwnTimeFilter{}

	if startDate := r.URL.Query().Get("startDate"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := r.URL.Query().Get("endDate"); endDate != "" {
		filter.EndDate = &endDate
	}

	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			filter.Page = pageNum
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			filter.Limit = limitNum
		}
	}

	return filter
}

// GetOwnTime implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetOwnTime(w http.ResponseWriter, r *http.Request) {
	filter := parseTimeFilter(r)

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.attendanceService.GetOwnTime(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results.Entries, &response.Meta{
		Page:       results.Page,
		Limit:      results.Limit,
		TotalItems: results.TotalCount,
		TotalPages: results.TotalPages,
	})
}

// GetUserCheckingData implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetUserCheckingData(w http.ResponseWriter, r *http.Request) {
	var filter attendance.UserTimeFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.attendanceService.GetUserTime(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results.Entries, &response.Meta{
		Page:       results.Page,
		Limit:      results.Limit,
		TotalItems: results.TotalCount,
		TotalPages: results.TotalPages,
	})
}
