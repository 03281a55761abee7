package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cleanease/cleanease-api/apperrors"
	"github.com/cleanease/cleanease-api/models"
	"github.com/cleanease/cleanease-api/utils"
)

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

// CreateServiceInput is the JSON shape for creating a service.
type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

// UpdateServiceInput is the partial shape for updating a service. Only the
// fields present in the payload are validated and applied.
type UpdateServiceInput struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Description *string  `json:"description" binding:"omitempty,min=1"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
}

// validate covers what the binding tags cannot: an explicit empty string is
// present but invalid, while an absent field is fine.
func (in *UpdateServiceInput) validate() error {
	if in.Name != nil && *in.Name == "" {
		return apperrors.NewValidation("name: is required")
	}
	if in.Description != nil && *in.Description == "" {
		return apperrors.NewValidation("description: is required")
	}
	return nil
}

// GetAllServices -> public catalog listing, ordered by name.
func (sc *ServiceController) GetAllServices(c *gin.Context) {
	var services []models.Service
	if err := sc.DB.Order("name asc").Find(&services).Error; err != nil {
		raise(c, apperrors.NewDatabase(err.Error()))
		return
	}
	utils.RespondJSON(c, http.StatusOK, services)
}

// GetServiceByID -> public detail of one service.
func (sc *ServiceController) GetServiceByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("service_id"))
	if err != nil {
		raise(c, apperrors.NewNotFound("Service not found"))
		return
	}

	var service models.Service
	if err := sc.DB.First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			raise(c, apperrors.NewNotFound("Service not found"))
			return
		}
		raise(c, apperrors.NewDatabase(err.Error()))
		return
	}

	utils.RespondJSON(c, http.StatusOK, service)
}

// CreateService -> admin adds a catalog entry.
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		raise(c, err)
		return
	}

	service := models.Service{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}

	if err := sc.DB.Create(&service).Error; err != nil {
		raise(c, apperrors.NewDatabase(err.Error()))
		return
	}

	utils.InfoLogger.Printf("Service created: %s (%s)", service.Name, service.ID)
	utils.RespondJSON(c, http.StatusCreated, service)
}

// UpdateService -> admin edits a catalog entry, field by field.
func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("service_id"))
	if err != nil {
		raise(c, apperrors.NewNotFound("Service not found"))
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		raise(c, err)
		return
	}
	if err := input.validate(); err != nil {
		raise(c, err)
		return
	}

	var service models.Service
	if err := sc.DB.First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			raise(c, apperrors.NewNotFound("Service not found"))
			return
		}
		raise(c, apperrors.NewDatabase(err.Error()))
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		service.Price = *input.Price
	}

	if err := sc.DB.Save(&service).Error; err != nil {
		raise(c, apperrors.NewDatabase(err.Error()))
		return
	}

	utils.RespondJSON(c, http.StatusOK, service)
}

// DeleteService -> admin removes a catalog entry. Blocked while any booking
// still references the service; the existence check and the delete share one
// transaction so a concurrent booking cannot slip in between.
func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("service_id"))
	if err != nil {
		raise(c, apperrors.NewNotFound("Service not found"))
		return
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		var service models.Service
		if err := tx.First(&service, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("Service not found")
			}
			return apperrors.NewDatabase(err.Error())
		}

		var bookingCount int64
		if err := tx.Model(&models.Booking{}).Where("service_id = ?", id).Count(&bookingCount).Error; err != nil {
			return apperrors.NewDatabase(err.Error())
		}
		if bookingCount > 0 {
			return apperrors.NewValidation("Cannot delete service that has associated bookings")
		}

		if err := tx.Delete(&service).Error; err != nil {
			return apperrors.NewDatabase(err.Error())
		}
		return nil
	})
	if err != nil {
		raise(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
