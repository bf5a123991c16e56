package adaptor

import (
	"errors"
	"net/http"

	"health-tracker/internal/usecase"
	"health-tracker/pkg/utils"

	"go.uber.org/zap"
)

// writeServiceError maps the usecase error taxonomy onto the numeric wire
// contract. Anything unrecognized is a 500; expected failures never escape
// as exceptions.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, operation string, err error) {
	var validationErr *usecase.ValidationError
	var duplicateErr *usecase.DuplicateError
	var notFoundErr *usecase.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" failed - invalid field", zap.Error(err))
		utils.ResponseError(w, http.StatusBadRequest, utils.CodeInvalidField, validationErr.Field)

	case errors.As(err, &duplicateErr):
		log.Warn(operation+" failed - duplicate", zap.Error(err))
		utils.ResponseError(w, http.StatusConflict, utils.CodeDuplicate, duplicateErr.Field)

	case errors.As(err, &notFoundErr):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseError(w, http.StatusNotFound, utils.CodeNotFound, notFoundErr.Entity)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseError(w, http.StatusUnauthorized, utils.CodeBadLogin, "login")

	case errors.Is(err, usecase.ErrInvalidPin):
		log.Warn(operation+" failed - invalid pin", zap.Error(err))
		utils.ResponseError(w, http.StatusForbidden, utils.CodeInvalidPin, "pin")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w)
	}
}
