// Package handlers binds the HTTP surface to the service layer. Handlers
// decode and validate the request shape, call exactly one operation, and
// translate its typed failure into a status code.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pratikdhikale87/Social-media/apperr"
	"github.com/pratikdhikale87/Social-media/middleware"
	"github.com/pratikdhikale87/Social-media/service"
)

type Handler struct {
	svc *service.Social
	log *logrus.Logger
}

func New(svc *service.Social, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// abortError maps a typed failure to its HTTP status. Anything that is not
// an *apperr.Error is an unexpected fault and becomes a 500.
func (h *Handler) abortError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(statusFor(appErr.Kind), gin.H{"error": appErr.Message})
		return
	}
	h.log.WithError(err).Error("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "an unknown error occurred"})
}

func statusFor(kind error) int {
	switch kind {
	case apperr.ErrValidation, apperr.ErrTooLarge, apperr.ErrSelfFollow:
		return http.StatusUnprocessableEntity
	case apperr.ErrDuplicate:
		return http.StatusConflict
	case apperr.ErrCredentials:
		return http.StatusBadRequest
	case apperr.ErrNotFound:
		return http.StatusNotFound
	case apperr.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// actorID returns the authenticated user's id. The gate already validated
// the token, so a malformed id here means the credential itself is bad.
func (h *Handler) actorID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// pathID parses the :id path parameter. A malformed id can never name an
// existing document, so it reads as not found.
func (h *Handler) pathID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return primitive.NilObjectID, false
	}
	return id, true
}
