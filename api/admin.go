package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safestreets/safestreets-api/schema"
)

func (s *Server) testDB(c *gin.Context) {
	version, err := s.store.DBVersion()
	if err != nil {
		log.WithError(err).Error("database connectivity check failed")
		abortWithEncoding(c, http.StatusInternalServerError, errorDBConnection, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"message":    "Successfully connected to database.",
		"db_version": version,
	})
}

func (s *Server) createTables(c *gin.Context) {
	if err := s.store.Setup(); err != nil {
		log.WithError(err).Error("table setup failed")
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Database tables created or already exist.",
	})
}

// loadCrimeLogs bulk-inserts historical crime records. Intended for
// operators seeding a fresh deployment, not end users.
func (s *Server) loadCrimeLogs(c *gin.Context) {
	var logs []schema.CrimeLog

	if err := c.BindJSON(&logs); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCrimeLogList)
		return
	}

	count, err := s.store.InsertCrimeLogs(logs)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("%d crime records loaded successfully.", count),
	})
}
