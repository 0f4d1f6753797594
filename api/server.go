package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"googlemaps.github.io/maps"

	"github.com/safestreets/safestreets-api/geo"
	"github.com/safestreets/safestreets-api/logmodule"
	"github.com/safestreets/safestreets-api/score"
	"github.com/safestreets/safestreets-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.SafeStreetsCore

	// Route safety scoring pipeline; nil when the maps API is not
	// configured
	scorer *score.RouteScorer

	// Reverse geocoding for route history; nil when the maps API is
	// not configured
	resolver geo.AddressResolver

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mapsClient *maps.Client,
	model score.Predictor,
	jwtKey *rsa.PrivateKey) *Server {
	safestreetsStore := store.NewSafeStreetsStore(ormDB)

	s := &Server{
		store:         safestreetsStore,
		jwtPrivateKey: jwtKey,
	}

	if mapsClient != nil {
		s.scorer = score.NewRouteScorer(
			geo.NewMapsDirections(mapsClient),
			model,
			score.NewIncidentAggregator(safestreetsStore))
		s.resolver = geo.NewGeocodingAddressResolver(mapsClient)
	}

	return s
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET", "POST"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))

	apiRoute.GET("/information", s.information)

	apiRoute.POST("/register", s.accountRegister)
	apiRoute.POST("/login", s.accountLogin)

	apiRoute.POST("/routes", s.getRoutesWithSafety)
	apiRoute.POST("/routes/selected", s.saveSelectedRoute)
	apiRoute.GET("/routes/history/:userID", s.getRouteHistory)

	apiRoute.POST("/feedback", s.saveFeedback)
	apiRoute.GET("/feedback/:userID", s.getFeedback)

	accountRoute := apiRoute.Group("/accounts")
	accountRoute.Use(s.authMiddleware())
	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.GET("/test-db", s.testDB)
		secretRoute.POST("/create-tables", s.createTables)
		secretRoute.POST("/crime-logs", s.loadCrimeLogs)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"name":    "SafeStreets API",
				"version": viper.GetString("server.version"),
			},
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
