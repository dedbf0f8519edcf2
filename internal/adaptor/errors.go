package adaptor

import (
	"errors"
	"net/http"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

// respondServiceError translates service errors into HTTP responses.
// Unrecognized errors are logged and become a 500.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrInvalidState):
		log.Warn("Request rejected", zap.String("operation", operation), zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn("Request unauthorized", zap.String("operation", operation), zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		log.Warn("Request forbidden", zap.String("operation", operation), zap.Error(err))
		utils.ResponseForbidden(w, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn("Resource not found", zap.String("operation", operation), zap.Error(err))
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, usecase.ErrConflict):
		log.Warn("Request conflict", zap.String("operation", operation), zap.Error(err))
		utils.ResponseConflict(w, err.Error())
	default:
		log.Error("Internal error", zap.String("operation", operation), zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// actorFromRequest reads the authenticated identity placed in the request
// context by the identity middleware.
func actorFromRequest(r *http.Request) (usecase.Actor, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Actor{}, false
	}
	role, _ := utils.GetRoleFromContext(r.Context())
	return usecase.Actor{ID: userID, Role: entity.UserRole(role)}, true
}
