package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/safestreets/safestreets-api/store"
)

func (s *Server) saveFeedback(c *gin.Context) {
	var params struct {
		UserID    int64  `json:"userId"`
		SegmentID int64  `json:"segment_id"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Rating < 1 || params.Rating > 5 {
		abortWithEncoding(c, http.StatusBadRequest, errorRatingOutOfRange)
		return
	}

	f, err := s.store.CreateFeedback(params.UserID, params.SegmentID, params.Rating, params.Comment)
	if err == store.ErrUnknownAccount {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownUser)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":      "success",
		"message":     "Feedback submitted successfully",
		"feedback_id": f.ID,
	})
}

func (s *Server) getFeedback(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	feedback, err := s.store.ListFeedback(userID)
	if shouldInterupt(err, c) {
		return
	}

	entries := make([]gin.H, 0, len(feedback))
	for _, f := range feedback {
		entries = append(entries, gin.H{
			"feedback_id":  f.ID,
			"segment_id":   f.SegmentID,
			"rating":       f.Rating,
			"comment":      f.Comment,
			"submitted_at": f.SubmittedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"feedback": entries,
	})
}
