package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cleanease/cleanease-api/apperrors"
	"github.com/cleanease/cleanease-api/middlewares"
	"github.com/cleanease/cleanease-api/models"
	"github.com/cleanease/cleanease-api/services"
	"github.com/cleanease/cleanease-api/utils"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// CreateBookingInput is the JSON shape for creating a booking. Any
// client-supplied user_id is ignored; ownership always comes from the token.
type CreateBookingInput struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Address      string `json:"address" binding:"required"`
	DateTime     string `json:"date_time" binding:"required"`
	ServiceID    string `json:"service_id" binding:"required,uuid"`
	Status       string `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
}

// UpdateBookingInput is the partial shape for updating a booking.
type UpdateBookingInput struct {
	CustomerName *string `json:"customer_name" binding:"omitempty,min=1"`
	Address      *string `json:"address" binding:"omitempty,min=1"`
	DateTime     *string `json:"date_time"`
	ServiceID    *string `json:"service_id" binding:"omitempty,uuid"`
	Status       *string `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
}

// validate covers what the binding tags cannot: an explicit empty string is
// present but invalid, while an absent field is fine.
func (in *UpdateBookingInput) validate() error {
	if in.CustomerName != nil && *in.CustomerName == "" {
		return apperrors.NewValidation("customer_name: is required")
	}
	if in.Address != nil && *in.Address == "" {
		return apperrors.NewValidation("address: is required")
	}
	return nil
}

func parseBookingDateTime(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperrors.NewValidation("date_time: must be a valid date-time")
	}
	return t, nil
}

// GetAllBookings -> admin sees every booking, everyone else only their own.
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	caller, ok := middlewares.CallerFrom(c)
	if !ok {
		raise(c, apperrors.NewUnauthorized("Authentication required"))
		return
	}

	query := bc.DB.Preload("Service")
	if !caller.IsAdmin() {
		query = query.Where("user_id = ?", caller.UserID)
	}

	var bookings []models.Booking
	if err := query.Order("date_time asc").Find(&bookings).Error; err != nil {
		raise(c, apperrors.NewDatabase(err.Error()))
		return
	}

	utils.RespondJSON(c, http.StatusOK, bookings)
}

// GetBookingByID -> detail of one booking. For non-admins a booking owned by
// someone else answers exactly like a missing one, so booking ids cannot be
// probed for existence.
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	caller, ok := middlewares.CallerFrom(c)
	if !ok {
		raise(c, apperrors.NewUnauthorized("Authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("booking_id"))
	if err != nil {
		raise(c, apperrors.NewNotFound("Booking not found"))
		return
	}

	query := bc.DB.Preload("Service").Where("id = ?", id)
	if !caller.IsAdmin() {
		query = query.Where("user_id = ?", caller.UserID)
	}

	var booking models.Booking
	if err := query.First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			raise(c, apperrors.NewNotFound("Booking not found"))
			return
		}
		raise(c, apperrors.NewDatabase(err.Error()))
		return
	}

	utils.RespondJSON(c, http.StatusOK, booking)
}

// CreateBooking -> reserve a service for the caller. The referenced service
// must exist; the lookup and the insert run in one transaction so the
// service cannot be deleted in between.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	caller, ok := middlewares.CallerFrom(c)
	if !ok {
		raise(c, apperrors.NewUnauthorized("Authentication required"))
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		raise(c, err)
		return
	}

	dateTime, err := parseBookingDateTime(input.DateTime)
	if err != nil {
		raise(c, err)
		return
	}

	serviceID := uuid.MustParse(input.ServiceID)

	status := input.Status
	if status == "" {
		status = models.BookingStatusPending
	}

	booking := models.Booking{
		CustomerName: input.CustomerName,
		Address:      input.Address,
		DateTime:     dateTime,
		ServiceID:    serviceID,
		UserID:       caller.UserID,
		Status:       status,
	}

	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		var service models.Service
		if err := tx.First(&service, "id = ?", serviceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("Service not found")
			}
			return apperrors.NewDatabase(err.Error())
		}

		if err := tx.Create(&booking).Error; err != nil {
			return apperrors.NewDatabase(err.Error())
		}
		return nil
	})
	if err != nil {
		raise(c, err)
		return
	}

	utils.InfoLogger.Printf("Booking created: %s (user=%s, service=%s)",
		booking.ID, booking.UserID, booking.ServiceID)
	utils.RespondJSON(c, http.StatusCreated, booking)
}

// UpdateBooking -> owner or admin edits a booking. Status changes are
// admin-only and must follow the transition table.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	caller, ok := middlewares.CallerFrom(c)
	if !ok {
		raise(c, apperrors.NewUnauthorized("Authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("booking_id"))
	if err != nil {
		raise(c, apperrors.NewNotFound("Booking not found"))
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		raise(c, err)
		return
	}
	if err := input.validate(); err != nil {
		raise(c, err)
		return
	}

	var booking models.Booking
	if err := bc.DB.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			raise(c, apperrors.NewNotFound("Booking not found"))
			return
		}
		raise(c, apperrors.NewDatabase(err.Error()))
		return
	}

	if !caller.IsAdmin() && booking.UserID != caller.UserID {
		raise(c, apperrors.NewForbidden("You do not have permission to update this booking"))
		return
	}

	if input.Status != nil && *input.Status != booking.Status {
		if !caller.IsAdmin() {
			raise(c, apperrors.NewForbidden("Only admins can change booking status"))
			return
		}
		if !services.CanTransition(booking.Status, *input.Status) {
			raise(c, apperrors.NewValidation(fmt.Sprintf(
				"Cannot change status from %s to %s", booking.Status, *input.Status)))
			return
		}
	}

	if input.CustomerName != nil {
		booking.CustomerName = *input.CustomerName
	}
	if input.Address != nil {
		booking.Address = *input.Address
	}
	if input.DateTime != nil {
		dateTime, err := parseBookingDateTime(*input.DateTime)
		if err != nil {
			raise(c, err)
			return
		}
		booking.DateTime = dateTime
	}
	if input.Status != nil {
		booking.Status = *input.Status
	}

	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		if input.ServiceID != nil {
			serviceID := uuid.MustParse(*input.ServiceID)
			var service models.Service
			if err := tx.First(&service, "id = ?", serviceID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NewNotFound("Service not found")
				}
				return apperrors.NewDatabase(err.Error())
			}
			booking.ServiceID = serviceID
		}

		if err := tx.Save(&booking).Error; err != nil {
			return apperrors.NewDatabase(err.Error())
		}
		return nil
	})
	if err != nil {
		raise(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, booking)
}

// DeleteBooking -> owner cancels their reservation, or admin removes any.
// Hard delete, no tombstone.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	caller, ok := middlewares.CallerFrom(c)
	if !ok {
		raise(c, apperrors.NewUnauthorized("Authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("booking_id"))
	if err != nil {
		raise(c, apperrors.NewNotFound("Booking not found"))
		return
	}

	var booking models.Booking
	if err := bc.DB.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			raise(c, apperrors.NewNotFound("Booking not found"))
			return
		}
		raise(c, apperrors.NewDatabase(err.Error()))
		return
	}

	if !caller.IsAdmin() && booking.UserID != caller.UserID {
		raise(c, apperrors.NewForbidden("You do not have permission to delete this booking"))
		return
	}

	if err := bc.DB.Delete(&booking).Error; err != nil {
		raise(c, apperrors.NewDatabase(err.Error()))
		return
	}

	c.Status(http.StatusNoContent)
}
