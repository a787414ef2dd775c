package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SalonHelios/salon-scheduler/internal/httperr"
	"github.com/SalonHelios/salon-scheduler/internal/httpresp"
	"github.com/SalonHelios/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string  `json:"name"`
	DurationMin     int     `json:"duration_min"`
	Price           float64 `json:"price"`
	IsGroup         bool    `json:"is_group"`
	MaxParticipants int     `json:"max_participants"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	DurationMin     *int     `json:"duration_min,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	IsGroup         *bool    `json:"is_group,omitempty"`
	MaxParticipants *int     `json:"max_participants,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	req.Name = strings.TrimSpace(req.Name)

	if req.Name == "" || req.DurationMin <= 0 {
		httperr.BadRequest(c, "missing_fields", "Name and a positive duration are required.")
		return
	}
	if req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Price cannot be negative.")
		return
	}

	maxParticipants, err := resolveCapacity(req.IsGroup, req.MaxParticipants)
	if err != nil {
		httperr.BadRequest(c, "invalid_capacity", err.Error())
		return
	}

	var count int64
	h.db.Model(&models.Service{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "service_name_exists", "A service with this name already exists.")
		return
	}

	service := models.Service{
		Name:            req.Name,
		DurationMin:     req.DurationMin,
		Price:           req.Price,
		IsGroup:         req.IsGroup,
		MaxParticipants: maxParticipants,
	}
	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if req.Name == nil && req.DurationMin == nil && req.Price == nil &&
		req.IsGroup == nil && req.MaxParticipants == nil {
		httperr.BadRequest(c, "nothing_to_update", "No fields supplied.")
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			httperr.BadRequest(c, "invalid_name", "Name cannot be empty.")
			return
		}

		var count int64
		h.db.Model(&models.Service{}).
			Where("name = ? AND id != ?", name, service.ID).
			Count(&count)
		if count > 0 {
			httperr.Conflict(c, "service_name_exists", "A service with this name already exists.")
			return
		}
		service.Name = name
	}

	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be positive.")
			return
		}
		service.DurationMin = *req.DurationMin
	}

	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "Price cannot be negative.")
			return
		}
		service.Price = *req.Price
	}

	// Group flag and capacity are cross-validated on the resulting state.
	isGroup := service.IsGroup
	if req.IsGroup != nil {
		isGroup = *req.IsGroup
	}
	maxParticipants := service.MaxParticipants
	if req.MaxParticipants != nil {
		maxParticipants = *req.MaxParticipants
	}
	if req.IsGroup != nil || req.MaxParticipants != nil {
		resolved, err := resolveCapacity(isGroup, maxParticipants)
		if err != nil {
			httperr.BadRequest(c, "invalid_capacity", err.Error())
			return
		}
		service.IsGroup = isGroup
		service.MaxParticipants = resolved
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var count int64
	h.db.Model(&models.Appointment{}).Where("service_id = ?", id).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "service_has_appointments", "Cannot delete a service with appointments.")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Service deleted."})
}

// resolveCapacity enforces the invariant between the group flag and max
// participants: non-group services always store 1, group services need a
// caller-supplied capacity of at least 2.
func resolveCapacity(isGroup bool, maxParticipants int) (int, error) {
	if !isGroup {
		return 1, nil
	}
	if maxParticipants < 2 {
		return 0, errGroupCapacity
	}
	return maxParticipants, nil
}

var errGroupCapacity = errors.New("Group services need max_participants of at least 2.")
