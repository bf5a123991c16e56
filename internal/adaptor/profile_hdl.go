package adaptor

import (
	"encoding/json"
	"net/http"

	"health-tracker/internal/dto/request"
	"health-tracker/internal/dto/response"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/utils"

	"go.uber.org/zap"
)

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log,
	}
}

// GetPerson handles GET /api/person
func (h *ProfileHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseError(w, http.StatusUnauthorized, utils.CodeNotFound, "user")
		return
	}

	person, err := h.service.GetPerson(r.Context(), username)
	if err != nil {
		writeServiceError(w, h.log, "get person", err)
		return
	}

	// person may be nil: rendered as {"person": null}.
	utils.ResponseSuccess(w, response.PersonEnvelope{Person: person})
}

// InsertDetails handles POST /api/person
func (h *ProfileHandler) InsertDetails(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseError(w, http.StatusUnauthorized, utils.CodeNotFound, "user")
		return
	}

	var req request.InsertDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, utils.CodeInvalidField, "body")
		return
	}

	person, err := h.service.InsertDetails(r.Context(), username, &req)
	if err != nil {
		writeServiceError(w, h.log, "insert details", err)
		return
	}

	utils.ResponseCreated(w, response.PersonEnvelope{Person: person})
}

// UpdateDetails handles PUT /api/person
func (h *ProfileHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseError(w, http.StatusUnauthorized, utils.CodeNotFound, "user")
		return
	}

	var req request.UpdateDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, utils.CodeInvalidField, "body")
		return
	}

	person, err := h.service.UpdateDetails(r.Context(), username, &req)
	if err != nil {
		writeServiceError(w, h.log, "update details", err)
		return
	}

	utils.ResponseSuccess(w, response.PersonEnvelope{Person: person})
}
