package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"health-tracker/internal/dto/request"
	"health-tracker/internal/dto/response"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AccountHandler struct {
	service usecase.AccountService
	config  *utils.Config
	log     *zap.Logger
}

func NewAccountHandler(service usecase.AccountService, config *utils.Config, log *zap.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		config:  config,
		log:     log,
	}
}

// Register handles POST /api/auth/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, utils.CodeInvalidField, "body")
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, "register", err)
		return
	}

	utils.ResponseCreated(w, response.RegisterResponse{User: *user})
}

// Login handles POST /api/auth/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, utils.CodeInvalidField, "body")
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, "login", err)
		return
	}

	utils.ResponseSuccess(w, response.TokenResponse{Token: token})
}

// Verify handles GET /api/auth/verify/{token}. The link lives in the
// confirmation mail, so the response is a redirect to the frontend login
// page carrying the outcome, not a JSON body.
func (h *AccountHandler) Verify(w http.ResponseWriter, r *http.Request) {
	emailToken := chi.URLParam(r, "token")

	verified := h.service.Verify(r.Context(), emailToken)

	location := h.config.App.FrontendURL + "/login?verified=" + strconv.FormatBool(verified)
	http.Redirect(w, r, location, http.StatusTemporaryRedirect)
}

// RequestPasswordChange handles POST /api/auth/password/request
func (h *AccountHandler) RequestPasswordChange(w http.ResponseWriter, r *http.Request) {
	var req request.RequestPasswordChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, utils.CodeInvalidField, "body")
		return
	}

	if err := h.service.RequestPasswordChange(r.Context(), req.Email); err != nil {
		var notFoundErr *usecase.NotFoundError
		if errors.As(err, &notFoundErr) {
			// 409 per the external contract: the address has no account.
			h.log.Warn("Password change for unknown email", zap.Error(err))
			utils.ResponseError(w, http.StatusConflict, utils.CodeNotFound, notFoundErr.Entity)
			return
		}
		writeServiceError(w, h.log, "request password change", err)
		return
	}

	utils.ResponseSuccess(w, nil)
}

// UpdatePassword handles POST /api/auth/password
func (h *AccountHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, utils.CodeInvalidField, "body")
		return
	}

	if err := h.service.UpdatePassword(r.Context(), &req); err != nil {
		var validationErr *usecase.ValidationError
		if errors.As(err, &validationErr) {
			// Weak replacement password is a conflict, not a bad request.
			h.log.Warn("Update password rejected", zap.Error(err))
			utils.ResponseError(w, http.StatusConflict, utils.CodeInvalidField, validationErr.Field)
			return
		}
		writeServiceError(w, h.log, "update password", err)
		return
	}

	utils.ResponseSuccess(w, nil)
}
