package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktrack/internal/adapter/http/middleware"
	"tasktrack/internal/core/domain"
	"tasktrack/pkg/apierrors"
)

// respondDomainError maps the closed domain error set onto HTTP codes
// and translated messages. Unknown errors become opaque 500s.
func respondDomainError(c *gin.Context, err error) {
	lang := middleware.GetLang(c)

	status, msgKey := http.StatusInternalServerError, apierrors.MsgFailTaskOperation
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgTaskNotFound
	case errors.Is(err, domain.ErrProjectNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgProjectNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		status, msgKey = http.StatusForbidden, apierrors.MsgUnauthorized
	case errors.Is(err, domain.ErrInvalidTitle):
		status, msgKey = http.StatusBadRequest, apierrors.MsgInvalidTitle
	case errors.Is(err, domain.ErrInvalidPriority):
		status, msgKey = http.StatusBadRequest, apierrors.MsgInvalidPriority
	case errors.Is(err, domain.ErrInvalidRecurrence):
		status, msgKey = http.StatusBadRequest, apierrors.MsgInvalidRecurrence
	case errors.Is(err, domain.ErrInvalidSubtaskDeadline):
		status, msgKey = http.StatusBadRequest, apierrors.MsgInvalidSubtaskDeadline
	case errors.Is(err, domain.ErrInvalidFileType):
		status, msgKey = http.StatusBadRequest, apierrors.MsgInvalidFileType
	case errors.Is(err, domain.ErrMaxAssigneesReached):
		status, msgKey = http.StatusConflict, apierrors.MsgMaxAssigneesReached
	case errors.Is(err, domain.ErrFileSizeLimitExceeded):
		status, msgKey = http.StatusConflict, apierrors.MsgFileSizeLimitExceeded
	case errors.Is(err, domain.ErrNoAssignees):
		status, msgKey = http.StatusBadRequest, apierrors.MsgNoAssignees
	case errors.Is(err, domain.ErrMinAssignees):
		status, msgKey = http.StatusConflict, apierrors.MsgMinAssignees
	case errors.Is(err, domain.ErrAssigneeNotFound):
		status, msgKey = http.StatusBadRequest, apierrors.MsgAssigneeNotFound
	case errors.Is(err, domain.ErrCommentNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgCommentNotFound
	case errors.Is(err, domain.ErrEmptyProjectID):
		status, msgKey = http.StatusBadRequest, apierrors.MsgEmptyProjectID
	default:
		zap.L().Error("task operation failed", zap.Error(err))
	}

	c.JSON(status, apierrors.CreateError(status, msgKey, lang))
}

func respondInvalidPayload(c *gin.Context) {
	lang := middleware.GetLang(c)
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
	)
}
