package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cleanease/cleanease-api/apperrors"
	"github.com/cleanease/cleanease-api/middlewares"
	"github.com/cleanease/cleanease-api/models"
	"github.com/cleanease/cleanease-api/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Register creates a customer account. The role is never taken from the
// payload; admins are provisioned directly in the store.
func (uc *UserController) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		raise(c, err)
		return
	}

	var existing models.User
	err := uc.DB.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		raise(c, apperrors.NewValidation("email: is already registered"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		raise(c, apperrors.NewDatabase(err.Error()))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		raise(c, apperrors.NewDatabase(err.Error()))
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     models.RoleCustomer,
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		raise(c, apperrors.NewDatabase(err.Error()))
		return
	}

	utils.InfoLogger.Printf("New user registered: %s", user.Email)
	utils.RespondJSON(c, http.StatusCreated, user)
}

// Login checks credentials and returns a signed token carrying the caller's
// id and role claim.
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		raise(c, err)
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		raise(c, apperrors.NewUnauthorized("Invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		raise(c, apperrors.NewUnauthorized("Invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		raise(c, apperrors.NewDatabase(err.Error()))
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"token": token,
		"role":  user.Role,
	})
}

// GetProfile returns the caller's own record.
func (uc *UserController) GetProfile(c *gin.Context) {
	caller, ok := middlewares.CallerFrom(c)
	if !ok {
		raise(c, apperrors.NewUnauthorized("Authentication required"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, "id = ?", caller.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			raise(c, apperrors.NewNotFound("User not found"))
			return
		}
		raise(c, apperrors.NewDatabase(err.Error()))
		return
	}

	utils.RespondJSON(c, http.StatusOK, user)
}
