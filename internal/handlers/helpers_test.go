package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SalonHelios/salon-scheduler/internal/middleware"
	"github.com/SalonHelios/salon-scheduler/internal/models"
	"github.com/SalonHelios/salon-scheduler/internal/notify"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.SetupJoinTable(&models.Appointment{}, "Clients", &models.AppointmentClient{}))
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Client{},
		&models.Appointment{},
		&models.AppointmentClient{},
		&models.SmsLog{},
	))

	return db
}

// asUser plays the role of the auth middleware for handler tests.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Next()
	}
}

type stubQueue struct {
	events []notify.Event
}

func (q *stubQueue) Dispatch(ev notify.Event) {
	q.events = append(q.events, ev)
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
