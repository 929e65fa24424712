package adminControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	adminControllers "github.com/marodi-mykhailo/pan-zelek/controllers/admin"
	"github.com/marodi-mykhailo/pan-zelek/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubSender struct {
	statusUpdates []string
	fail          bool
}

func (s *stubSender) SendOrderConfirmation(to, orderID string, total float64) error { return nil }

func (s *stubSender) SendOrderStatusUpdate(to, orderID, status string) error {
	s.statusUpdates = append(s.statusUpdates, orderID+":"+status)
	if s.fail {
		return fmt.Errorf("smtp unavailable")
	}
	return nil
}

func setupAdminTest(t *testing.T, sender *stubSender) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Address{},
		&models.Order{}, &models.OrderItem{},
	))

	r := gin.New()
	r.GET("/api/admin/stats", adminControllers.GetStats(db))
	r.GET("/api/admin/orders", adminControllers.GetAllOrders(db))
	r.PUT("/api/admin/orders/:id/status", adminControllers.UpdateOrderStatus(db, sender))
	return db, r
}

func seedOrder(t *testing.T, db *gorm.DB, status models.OrderStatus, paymentStatus models.PaymentStatus, total float64) models.Order {
	t.Helper()
	address := models.Address{Street: "ul. Słodka 7", City: "Warszawa", PostalCode: "00-001", Country: "Poland"}
	require.NoError(t, db.Create(&address).Error)

	order := models.Order{
		Email:             "jan@example.pl",
		Phone:             "+48123456789",
		Status:            status,
		Total:             total,
		ShippingCost:      15,
		PaymentMethod:     "card",
		PaymentStatus:     paymentStatus,
		ShippingAddressID: address.ID,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func putStatus(t *testing.T, r *gin.Engine, orderID, status string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(gin.H{"status": status})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, "/api/admin/orders/"+orderID+"/status", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	sender := &stubSender{}
	db, r := setupAdminTest(t, sender)
	order := seedOrder(t, db, models.OrderStatusProcessing, models.PaymentStatusPaid, 31)

	w := putStatus(t, r, order.ID, "RETURNED")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid status")

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusProcessing, stored.Status, "rejected transition must leave the status untouched")
	assert.Empty(t, sender.statusUpdates, "no notification for a rejected transition")
}

func TestUpdateOrderStatusSurvivesFailingNotification(t *testing.T) {
	sender := &stubSender{fail: true}
	db, r := setupAdminTest(t, sender)
	order := seedOrder(t, db, models.OrderStatusProcessing, models.PaymentStatusPaid, 31)

	w := putStatus(t, r, order.ID, "SHIPPED")
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, stored.Status)
	require.Len(t, sender.statusUpdates, 1, "the notification must have been attempted")
	assert.Equal(t, order.ID+":SHIPPED", sender.statusUpdates[0])
}

func TestUpdateOrderStatusNormalizesCase(t *testing.T) {
	sender := &stubSender{}
	db, r := setupAdminTest(t, sender)
	order := seedOrder(t, db, models.OrderStatusShipped, models.PaymentStatusPaid, 31)

	w := putStatus(t, r, order.ID, "delivered")
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusDelivered, stored.Status)
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	sender := &stubSender{}
	_, r := setupAdminTest(t, sender)

	w := putStatus(t, r, "no-such-order", "SHIPPED")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, sender.statusUpdates)
}

func TestStatsRevenueCountsPaidOrdersOnly(t *testing.T) {
	db, r := setupAdminTest(t, &stubSender{})
	seedOrder(t, db, models.OrderStatusPending, models.PaymentStatusPaid, 31)
	seedOrder(t, db, models.OrderStatusPending, models.PaymentStatusPaid, 120)
	seedOrder(t, db, models.OrderStatusPending, models.PaymentStatusPending, 55)

	req, err := http.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalOrders  int64   `json:"totalOrders"`
		TotalRevenue float64 `json:"totalRevenue"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 3, resp.TotalOrders)
	assert.Equal(t, 151.0, resp.TotalRevenue)
}
