package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SalonHelios/salon-scheduler/internal/httperr"
	"github.com/SalonHelios/salon-scheduler/internal/httpresp"
	"github.com/SalonHelios/salon-scheduler/internal/models"
	"github.com/SalonHelios/salon-scheduler/internal/timeutil"
	"github.com/SalonHelios/salon-scheduler/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests / responses ---------

type CreateClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// ClientWithStats carries the visit statistics computed at read time.
type ClientWithStats struct {
	models.Client
	Visits    int64   `json:"visits"`
	LastVisit *string `json:"last_visit"`
}

type clientVisitRow struct {
	ClientID  uint
	Visits    int64
	LastVisit *time.Time
}

type appointmentHistoryEntry struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	StartTime    string `json:"start_time"`
	Status       string `json:"status"`
	Paid         bool   `json:"paid"`
	ServiceName  string `json:"service_name"`
	EmployeeName string `json:"employee_name"`
}

// ======================================================
// LIST (with search and per-client statistics)
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	q := h.db.Model(&models.Client{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Could not list clients.")
		return
	}

	stats, err := h.visitStats()
	if err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not compute client statistics.")
		return
	}

	out := make([]ClientWithStats, 0, len(clients))
	for _, client := range clients {
		entry := ClientWithStats{Client: client}
		if s, ok := stats[client.ID]; ok {
			entry.Visits = s.Visits
			if s.LastVisit != nil {
				formatted := timeutil.FormatDateTime(*s.LastVisit)
				entry.LastVisit = &formatted
			}
		}
		out = append(out, entry)
	}

	httpresp.List(c, out)
}

// visitStats aggregates finished appointments per client in one query.
func (h *ClientHandler) visitStats() (map[uint]clientVisitRow, error) {
	var rows []clientVisitRow
	err := h.db.
		Model(&models.AppointmentClient{}).
		Select("appointment_clients.client_id AS client_id, COUNT(*) AS visits, MAX(appointments.start_time) AS last_visit").
		Joins("JOIN appointments ON appointments.id = appointment_clients.appointment_id").
		Where("appointments.status = ?", "finished").
		Group("appointment_clients.client_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make(map[uint]clientVisitRow, len(rows))
	for _, row := range rows {
		stats[row.ClientID] = row
	}
	return stats, nil
}

// ======================================================
// GET (with appointment history)
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	var history []models.Appointment
	if err := h.db.
		Preload("Service").
		Preload("User").
		Joins("JOIN appointment_clients ON appointment_clients.appointment_id = appointments.id").
		Where("appointment_clients.client_id = ?", id).
		Order("appointments.start_time DESC").
		Find(&history).Error; err != nil {
		httperr.Internal(c, "failed_to_load_history", "Could not load appointment history.")
		return
	}

	entries := make([]appointmentHistoryEntry, 0, len(history))
	for _, ap := range history {
		entries = append(entries, appointmentHistoryEntry{
			ID:           ap.ID,
			Title:        ap.Title,
			StartTime:    timeutil.FormatDateTime(ap.StartTime),
			Status:       ap.Status,
			Paid:         ap.Paid,
			ServiceName:  ap.Service.Name,
			EmployeeName: ap.User.Name,
		})
	}

	httpresp.OK(c, gin.H{
		"client":       client,
		"appointments": entries,
	})
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = validators.NormalizePhone(req.Phone)

	if req.Name == "" || req.Phone == "" {
		httperr.BadRequest(c, "missing_fields", "Name and phone are required.")
		return
	}
	if !validators.IsValidPhone(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Phone number is not valid.")
		return
	}
	if req.Email != "" && !validators.IsValidEmail(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Email address is not valid.")
		return
	}

	var count int64
	h.db.Model(&models.Client{}).Where("phone = ?", req.Phone).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "phone_already_exists", "A client with this phone number already exists.")
		return
	}

	client := models.Client{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Could not create client.")
		return
	}

	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if req.Name == nil && req.Phone == nil && req.Email == nil {
		httperr.BadRequest(c, "nothing_to_update", "No fields supplied.")
		return
	}

	if req.Name != nil {
		client.Name = strings.TrimSpace(*req.Name)
	}

	if req.Phone != nil {
		phone := validators.NormalizePhone(*req.Phone)
		if !validators.IsValidPhone(phone) {
			httperr.BadRequest(c, "invalid_phone", "Phone number is not valid.")
			return
		}

		var count int64
		h.db.Model(&models.Client{}).
			Where("phone = ? AND id != ?", phone, client.ID).
			Count(&count)
		if count > 0 {
			httperr.Conflict(c, "phone_already_exists", "A client with this phone number already exists.")
			return
		}
		client.Phone = phone
	}

	if req.Email != nil {
		if *req.Email != "" && !validators.IsValidEmail(*req.Email) {
			httperr.BadRequest(c, "invalid_email", "Email address is not valid.")
			return
		}
		client.Email = *req.Email
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Could not update client.")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	var links int64
	h.db.Model(&models.AppointmentClient{}).Where("client_id = ?", id).Count(&links)
	if links > 0 {
		httperr.Conflict(c, "client_has_appointments", "Cannot delete a client with appointments.")
		return
	}

	if err := h.db.Delete(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Could not delete client.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Client deleted."})
}

// ======================================================
// OVERVIEW STATISTICS
// ======================================================

func (h *ClientHandler) StatsOverview(c *gin.Context) {
	now := time.Now()

	var total int64
	if err := h.db.Model(&models.Client{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not compute statistics.")
		return
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var newThisMonth int64
	h.db.Model(&models.Client{}).
		Where("created_at >= ?", monthStart).
		Count(&newThisMonth)

	weekStart := startOfWeek(now)
	var appointmentsThisWeek int64
	h.db.Model(&models.Appointment{}).
		Where("start_time >= ? AND start_time < ?", weekStart, weekStart.AddDate(0, 0, 7)).
		Count(&appointmentsThisWeek)

	httpresp.OK(c, gin.H{
		"totalClients":         total,
		"newThisMonth":         newThisMonth,
		"appointmentsThisWeek": appointmentsThisWeek,
	})
}

// startOfWeek returns the Monday midnight of the week containing t.
func startOfWeek(t time.Time) time.Time {
	day, _ := timeutil.DayBounds(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
