package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/SalonHelios/salon-scheduler/internal/domain/appointment"
	"github.com/SalonHelios/salon-scheduler/internal/dto"
	"github.com/SalonHelios/salon-scheduler/internal/infra/repository"
	"github.com/SalonHelios/salon-scheduler/internal/models"
	"github.com/SalonHelios/salon-scheduler/internal/notify"
	ucAppointment "github.com/SalonHelios/salon-scheduler/internal/usecase/appointment"
)

func appointmentRouter(db *gorm.DB, actingUser uint, queue notify.Queue) *gin.Engine {
	repo := repository.NewAppointmentGormRepository(db)
	messenger := notify.Messenger{SalonName: "Salon Helios"}

	h := NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(repo, queue, messenger),
		ucAppointment.NewUpdateAppointment(repo, queue, messenger),
		ucAppointment.NewDeleteAppointment(repo),
		ucAppointment.NewGetAppointment(repo),
		ucAppointment.NewListAppointments(repo),
		true,
	)

	r := gin.New()
	r.Use(asUser(actingUser))
	r.GET("/appointments", h.List)
	r.POST("/appointments", h.Create)
	r.GET("/appointments/:id", h.Get)
	r.PUT("/appointments/:id", h.Update)
	r.DELETE("/appointments/:id", h.Delete)
	return r
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.User, models.Service) {
	t.Helper()

	user := models.User{Name: "Mira", Username: "mira", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	service := models.Service{Name: "Manicure", DurationMin: 45, Price: 20, MaxParticipants: 1}
	require.NoError(t, db.Create(&service).Error)
	return user, service
}

func TestAppointmentCreateDefaultsToActingUser(t *testing.T) {
	db := openTestDB(t)
	user, service := seedCatalog(t, db)
	queue := &stubQueue{}
	r := appointmentRouter(db, user.ID, queue)

	w := doJSON(t, r, "POST", "/appointments", gin.H{
		"service_id": service.ID,
		"start_time": "2026-03-14T09:30:00",
		"clients":    []gin.H{{"name": "Ana", "phone": "+381601111111"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &resp)
	require.NotZero(t, resp.ID)

	var ap models.Appointment
	require.NoError(t, db.First(&ap, resp.ID).Error)
	assert.Equal(t, user.ID, ap.UserID)
	assert.Len(t, queue.events, 1)
}

func TestAppointmentCreateErrors(t *testing.T) {
	db := openTestDB(t)
	user, service := seedCatalog(t, db)
	r := appointmentRouter(db, user.ID, &stubQueue{})

	w := doJSON(t, r, "POST", "/appointments", gin.H{
		"service_id": service.ID,
		"start_time": "not-a-time",
		"clients":    []gin.H{{"name": "Ana", "phone": "+381601111111"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_start_time")

	w = doJSON(t, r, "POST", "/appointments", gin.H{
		"service_id": 999,
		"start_time": "2026-03-14T09:30:00",
		"clients":    []gin.H{{"name": "Ana", "phone": "+381601111111"}},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAppointmentListByDay(t *testing.T) {
	db := openTestDB(t)
	user, service := seedCatalog(t, db)
	r := appointmentRouter(db, user.ID, &stubQueue{})

	for _, start := range []string{"2026-03-14T09:30:00", "2026-03-14T11:00:00", "2026-03-15T09:00:00"} {
		w := doJSON(t, r, "POST", "/appointments", gin.H{
			"service_id": service.ID,
			"start_time": start,
			"clients":    []gin.H{{"name": "Ana", "phone": "+381601111111"}},
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, "GET", "/appointments?date=2026-03-14", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []dto.AppointmentView
	decodeBody(t, w, &views)
	require.Len(t, views, 2)
	assert.Equal(t, "2026-03-14T09:30:00", views[0].StartTime)
	assert.Equal(t, "Mira", views[0].EmployeeName)

	// Week view: endDate is inclusive.
	w = doJSON(t, r, "GET", "/appointments?startDate=2026-03-14&endDate=2026-03-15", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &views)
	assert.Len(t, views, 3)

	w = doJSON(t, r, "GET", "/appointments", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_date")
}

func TestAppointmentListWithLayout(t *testing.T) {
	db := openTestDB(t)
	user, service := seedCatalog(t, db)
	r := appointmentRouter(db, user.ID, &stubQueue{})

	w := doJSON(t, r, "POST", "/appointments", gin.H{
		"service_id": service.ID,
		"start_time": "2026-03-14T09:30:00",
		"clients":    []gin.H{{"name": "Ana", "phone": "+381601111111"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "GET", "/appointments?date=2026-03-14&layout=grid", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Appointments []dto.AppointmentView `json:"appointments"`
		Blocks       []domain.Block        `json:"blocks"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Appointments, 1)
	require.Len(t, resp.Blocks, 1)

	// 09:30 with the doors opening at 08:00, 45 minutes long.
	assert.InDelta(t, 120.0, resp.Blocks[0].Top, 0.01)
	assert.InDelta(t, 56.0, resp.Blocks[0].Height, 0.01)
	assert.Equal(t, 0, resp.Blocks[0].Column)
	assert.Contains(t, resp.Blocks[0].Label, "Ana")
}

func TestAppointmentUpdateAndDelete(t *testing.T) {
	db := openTestDB(t)
	user, service := seedCatalog(t, db)
	queue := &stubQueue{}
	r := appointmentRouter(db, user.ID, queue)

	w := doJSON(t, r, "POST", "/appointments", gin.H{
		"service_id": service.ID,
		"start_time": "2026-03-14T09:30:00",
		"clients":    []gin.H{{"name": "Ana", "phone": "+381601111111"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	queue.events = nil

	w = doJSON(t, r, "PUT", "/appointments/1", gin.H{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code)

	var view dto.AppointmentView
	decodeBody(t, w, &view)
	assert.Equal(t, "cancelled", view.Status)
	assert.Len(t, queue.events, 1)

	w = doJSON(t, r, "PUT", "/appointments/1", gin.H{"status": "postponed"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "DELETE", "/appointments/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/appointments/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
