package Controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cleanease/cleanease-api/models"
	"github.com/cleanease/cleanease-api/router"
	"github.com/cleanease/cleanease-api/utils"
)

// setupTestDB opens a named in-memory database so each test gets its own
// isolated store.
func setupTestDB(name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.User{}, &models.Service{}, &models.Booking{}); err != nil {
		panic(err)
	}
	return db
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	return router.SetupRouter(db)
}

func seedUser(db *gorm.DB, name, email, role string) models.User {
	user := models.User{Name: name, Email: email, Password: "not-a-real-hash", Role: role}
	if err := db.Create(&user).Error; err != nil {
		panic(err)
	}
	return user
}

func seedService(db *gorm.DB, name string, price float64) models.Service {
	service := models.Service{Name: name, Description: "Test service", Price: price}
	if err := db.Create(&service).Error; err != nil {
		panic(err)
	}
	return service
}

func seedBooking(db *gorm.DB, user models.User, service models.Service, status string) models.Booking {
	booking := models.Booking{
		CustomerName: user.Name,
		Address:      "12 Test Street",
		DateTime:     time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second),
		ServiceID:    service.ID,
		UserID:       user.ID,
		Status:       status,
	}
	if err := db.Create(&booking).Error; err != nil {
		panic(err)
	}
	return booking
}

func bearerToken(user models.User) string {
	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		panic(err)
	}
	return "Bearer " + token
}

func doRequest(r *gin.Engine, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		panic(err)
	}
	return out
}

func decodeList(w *httptest.ResponseRecorder) []map[string]interface{} {
	var out []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		panic(err)
	}
	return out
}
