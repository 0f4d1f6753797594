package api

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/safestreets/safestreets-api/api/mocks"
	"github.com/safestreets/safestreets-api/schema"
	"github.com/safestreets/safestreets-api/store"
)

func testRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	assert.Nil(t, err, "wrong request marshal")

	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAccountRegister(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeStreetsCore(ctl)
	s := Server{store: m}

	m.EXPECT().
		CreateAccount("Asha", "asha@example.com", gomock.Any(), "9876543210", "female").
		Return(&schema.Account{ID: 7, Name: "Asha", Email: "asha@example.com"}, nil).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.accountRegister)

	w := testRequest(t, router, "POST", "/", map[string]string{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "hunter22",
		"phone":    "9876543210",
		"gender":   "female",
	})

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var jResp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "success", jResp["status"], "wrong status field")
	assert.Equal(t, float64(7), jResp["user_id"], "wrong user id")
}

func TestAccountRegisterDuplicateEmail(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeStreetsCore(ctl)
	s := Server{store: m}

	m.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, store.ErrEmailTaken).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.accountRegister)

	w := testRequest(t, router, "POST", "/", map[string]string{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "hunter22",
		"phone":    "9876543210",
		"gender":   "female",
	})

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
	assert.Contains(t, w.Body.String(), "Email already registered.", "wrong error message")
}

func TestAccountRegisterValidation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeStreetsCore(ctl)
	s := Server{store: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.accountRegister)

	// missing fields
	w := testRequest(t, router, "POST", "/", map[string]string{
		"name":  "Asha",
		"email": "asha@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Contains(t, w.Body.String(), "All fields are required.", "wrong error message")

	// malformed phone number
	w = testRequest(t, router, "POST", "/", map[string]string{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "hunter22",
		"phone":    "12345",
		"gender":   "female",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Contains(t, w.Body.String(), "Phone number must be exactly 10 digits.", "wrong error message")
}

func TestAccountLogin(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.Nil(t, err, "wrong rsa key generation")
	viper.Set("jwt.expire", 24)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	assert.Nil(t, err, "wrong bcrypt hash")

	m := mocks.NewMockSafeStreetsCore(ctl)
	s := Server{store: m, jwtPrivateKey: key}

	m.EXPECT().
		GetAccountByEmail("asha@example.com").
		Return(&schema.Account{
			ID:           7,
			Name:         "Asha",
			Email:        "asha@example.com",
			PasswordHash: string(hash),
		}, nil).
		Times(1)
	m.EXPECT().TouchLastLogin(int64(7)).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.accountLogin)

	w := testRequest(t, router, "POST", "/", map[string]string{
		"email":    "asha@example.com",
		"password": "hunter22",
	})

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Login successful!", jResp["message"], "wrong message")
	assert.NotEmpty(t, jResp["jwt_token"], "missing token")
}

// a wrong password and an unknown email must be indistinguishable to
// the caller
func TestAccountLoginRejection(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	assert.Nil(t, err, "wrong bcrypt hash")

	m := mocks.NewMockSafeStreetsCore(ctl)
	s := Server{store: m}

	m.EXPECT().
		GetAccountByEmail("asha@example.com").
		Return(&schema.Account{ID: 7, PasswordHash: string(hash)}, nil).
		Times(1)
	m.EXPECT().
		GetAccountByEmail("nobody@example.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.accountLogin)

	wrongPassword := testRequest(t, router, "POST", "/", map[string]string{
		"email":    "asha@example.com",
		"password": "not-it",
	})
	unknownEmail := testRequest(t, router, "POST", "/", map[string]string{
		"email":    "nobody@example.com",
		"password": "hunter22",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code, "wrong status code")
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code, "wrong status code")
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String(), "rejection bodies differ")
}

func TestAccountDetail(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeStreetsCore(ctl)
	s := Server{store: m}

	m.EXPECT().
		RecentRoutes(int64(7), recentEntryLimit).
		Return([]schema.RouteHistory{
			{ID: 1, AccountID: 7, SourceLat: 12.9, SourceLng: 77.6, DestinationLat: 13.0, DestinationLng: 77.7},
		}, nil).
		Times(1)
	m.EXPECT().
		RecentFeedback(int64(7), recentEntryLimit).
		Return([]schema.Feedback{}, nil).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		c.Set("account", &schema.Account{ID: 7, Name: "Asha", Email: "asha@example.com"})
		s.accountDetail(c)
	})

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		User struct {
			UserID      int64   `json:"user_id"`
			Name        string  `json:"name"`
			RideHistory []gin.H `json:"ride_history"`
		} `json:"user"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(7), jResp.User.UserID, "wrong user id")
	assert.Len(t, jResp.User.RideHistory, 1, "wrong ride history length")
}
