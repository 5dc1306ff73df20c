package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spdf36/gts-hrms/internal/domain/timesheet"
	"github.com/spdf36/gts-hrms/internal/handler/http/middleware"
	"github.com/spdf36/gts-hrms/internal/handler/http/response"
	"github.com/spdf36/gts-hrms/internal/pkg/validator"
)

type TimesheetHandler interface {
	GetMyTimesheet(w http.ResponseWriter, r *http.Request)
	GetCalendar(w http.ResponseWriter, r *http.Request)
	GetEmployeeTimesheet(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
	now              func() time.Time
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService, now func() time.Time) TimesheetHandler {
	if now == nil {
		now = time.Now
	}
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
		now:              now,
	}
}

func parseTimesheetFilter(r *http.Request) timesheet.TimesheetFilter {
	query := r.URL.Query()
	filter := timesheet.TimesheetFilter{}

	if month := query.Get("month"); month != "" {
		filter.Month = &month
	}
	if startDate := query.Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := query.Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}

	return filter
}

// GetMyTimesheet implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetMyTimesheet(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r.Context())
	if !ok {
		response.HandleError(w, response.ErrMissingEmployee)
		return
	}

	result, err := h.timesheetService.GetMyTimesheet(r.Context(), employeeID, parseTimesheetFilter(r), h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCalendar implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r.Context())
	if !ok {
		response.HandleError(w, response.ErrMissingEmployee)
		return
	}

	result, err := h.timesheetService.GetCalendar(r.Context(), employeeID, parseTimesheetFilter(r), h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeTimesheet implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetEmployeeTimesheet(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if !validator.IsValidUUID(employeeID) {
		response.HandleError(w, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		}})
		return
	}

	result, err := h.timesheetService.GetEmployeeTimesheet(r.Context(), employeeID, parseTimesheetFilter(r), h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
