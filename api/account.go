package api

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"github.com/safestreets/safestreets-api/schema"
	"github.com/safestreets/safestreets-api/store"
)

const recentEntryLimit = 5

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// accountRegister is the API for registering a new user
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")

	var params struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
		Gender   string `json:"gender"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorCannotParseRequest.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Name == "" || params.Email == "" || params.Password == "" ||
		params.Phone == "" || params.Gender == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingFields)
		return
	}

	if !phonePattern.MatchString(params.Phone) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidPhone)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if shouldInterupt(err, c) {
		return
	}

	a, err := s.store.CreateAccount(params.Name, params.Email, string(hash), params.Phone, params.Gender)
	if err == store.ErrEmailTaken {
		abortWithEncoding(c, http.StatusConflict, errorEmailTaken)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User registered successfully!",
		"user_id": a.ID,
	})
}

// accountLogin verifies a credential pair. A wrong password and an
// unknown email produce the same response on purpose.
func (s *Server) accountLogin(c *gin.Context) {
	var params struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Email == "" || params.Password == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingCredentials)
		return
	}

	a, err := s.store.GetAccountByEmail(params.Email)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials)
			return
		}
		shouldInterupt(err, c)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(params.Password)) != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials)
		return
	}

	if err := s.store.TouchLastLogin(a.ID); err != nil {
		log.WithError(err).Warn("update last login")
	}

	token, err := s.issueJWT(a)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "Login successful!",
		"user_id":   a.ID,
		"username":  a.Name,
		"email":     a.Email,
		"jwt_token": token,
	})
}

// accountDetail is the API to query the requester's own profile along
// with recent rides and feedback
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	routes, err := s.store.RecentRoutes(account.ID, recentEntryLimit)
	if shouldInterupt(err, c) {
		return
	}

	rideHistory := make([]gin.H, 0, len(routes))
	for _, r := range routes {
		rideHistory = append(rideHistory, gin.H{
			"start": fmt.Sprintf("%v, %v", r.SourceLat, r.SourceLng),
			"end":   fmt.Sprintf("%v, %v", r.DestinationLat, r.DestinationLng),
			"date":  r.RequestTime,
		})
	}

	feedback, err := s.store.RecentFeedback(account.ID, recentEntryLimit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user": gin.H{
			"user_id":      account.ID,
			"name":         account.Name,
			"email":        account.Email,
			"phone":        account.Phone,
			"gender":       account.Gender,
			"created_at":   account.CreatedAt,
			"last_login":   account.LastLogin,
			"ride_history": rideHistory,
			"feedback":     feedback,
		},
	})
}
