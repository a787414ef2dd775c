package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/SalonHelios/salon-scheduler/internal/domain/appointment"
	"github.com/SalonHelios/salon-scheduler/internal/dto"
	"github.com/SalonHelios/salon-scheduler/internal/httperr"
	"github.com/SalonHelios/salon-scheduler/internal/httpresp"
	"github.com/SalonHelios/salon-scheduler/internal/middleware"
	"github.com/SalonHelios/salon-scheduler/internal/timeutil"
	ucAppointment "github.com/SalonHelios/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	deleteUC *ucAppointment.DeleteAppointment
	getUC    *ucAppointment.GetAppointment
	listUC   *ucAppointment.ListAppointments

	layout  domain.LayoutConfig
	devMode bool
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	getUC *ucAppointment.GetAppointment,
	listUC *ucAppointment.ListAppointments,
	devMode bool,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		layout:   domain.DefaultLayout,
		devMode:  devMode,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type CreateAppointmentRequest struct {
	ServiceID uint                       `json:"service_id"`
	UserID    uint                       `json:"user_id"`
	StartTime string                     `json:"start_time"`
	Clients   []AppointmentClientRequest `json:"clients"`
}

type UpdateAppointmentRequest struct {
	Status    *string `json:"status,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	Paid      *bool   `json:"paid,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actingUserID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	userID := req.UserID
	if userID == 0 {
		userID = actingUserID
	}

	clients := make([]ucAppointment.ClientInput, 0, len(req.Clients))
	for _, entry := range req.Clients {
		clients = append(clients, ucAppointment.ClientInput{
			Name:  entry.Name,
			Phone: entry.Phone,
			Email: entry.Email,
		})
	}

	id, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ServiceID: req.ServiceID,
		UserID:    userID,
		StartTime: req.StartTime,
		Clients:   clients,
	})
	if err != nil {
		httperr.Respond(c, err, h.devMode)
		return
	}

	httpresp.Created(c, gin.H{"id": id})
}

// ======================================================
// GET / LIST
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, h.devMode)
		return
	}

	httpresp.OK(c, view)
}

// List serves both calendar views: ?date=YYYY-MM-DD for a single day,
// ?startDate=...&endDate=... for a week (or any range). With layout=grid
// the response also carries the computed blocks.
func (h *AppointmentHandler) List(c *gin.Context) {
	var (
		start time.Time
		end   time.Time
	)

	switch {
	case c.Query("date") != "":
		day, err := timeutil.ParseDate(c.Query("date"))
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		start, end = timeutil.DayBounds(day)

	case c.Query("startDate") != "" && c.Query("endDate") != "":
		from, err := timeutil.ParseDate(c.Query("startDate"))
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "startDate must be YYYY-MM-DD.")
			return
		}
		to, err := timeutil.ParseDate(c.Query("endDate"))
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "endDate must be YYYY-MM-DD.")
			return
		}
		start = from
		end = to.AddDate(0, 0, 1) // endDate is inclusive

	default:
		httperr.BadRequest(c, "missing_date", "Provide date or startDate and endDate.")
		return
	}

	appointments, err := h.listUC.Execute(c.Request.Context(), start, end)
	if err != nil {
		httperr.Respond(c, err, h.devMode)
		return
	}

	views := make([]dto.AppointmentView, 0, len(appointments))
	for i := range appointments {
		views = append(views, dto.NewAppointmentView(&appointments[i]))
	}

	if c.Query("layout") == "" {
		httpresp.OK(c, views)
		return
	}

	columns, err := h.listUC.EmployeeColumns(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, h.devMode)
		return
	}

	httpresp.OK(c, gin.H{
		"appointments": views,
		"blocks":       domain.Layout(appointments, columns, h.layout),
	})
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), id, ucAppointment.UpdateAppointmentInput{
		Status:    req.Status,
		StartTime: req.StartTime,
		Paid:      req.Paid,
	})
	if err != nil {
		httperr.Respond(c, err, h.devMode)
		return
	}

	httpresp.OK(c, dto.NewAppointmentView(ap))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err, h.devMode)
		return
	}

	httpresp.OK(c, gin.H{"message": "Appointment deleted."})
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifier must be numeric.")
		return 0, false
	}
	return uint(id), true
}
