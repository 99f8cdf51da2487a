package registration

import (
	"net/http"

	registrationerrors "github.com/canfinancialsolutions/can-registration-app/internal/registration/errors"
	"github.com/canfinancialsolutions/can-registration-app/internal/shared/apperror"
	"github.com/canfinancialsolutions/can-registration-app/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("registration.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("registration.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, registrationerrors.ErrInvalidJSON.Message, "")
		return
	}

	if err := h.service.Submit(c.Request.Context(), req); err != nil {
		status, appErr := apperror.ToHTTP(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("submission failed", zap.Int("status", status), zap.Error(err))
		}
		response.Error(c, status, appErr.Message, appErr.Detail)
		return
	}

	response.Success(c, http.StatusOK, nil)
}
