package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the error payload of the public API. The numeric codes are
// an external contract consumed by the frontend:
//
//	602 duplicate, 604 invalid field, 605 bad login,
//	606 invalid or expired pin, 607 not found
type ErrorBody struct {
	Code  int    `json:"code"`
	Field string `json:"field"`
}

const (
	CodeDuplicate    = 602
	CodeInvalidField = 604
	CodeBadLogin     = 605
	CodeInvalidPin   = 606
	CodeNotFound     = 607
)

// ResponseJSON writes any payload as JSON with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// ResponseError writes the contract error body {code, field}.
func ResponseError(w http.ResponseWriter, status, code int, field string) {
	ResponseJSON(w, status, ErrorBody{Code: code, Field: field})
}

func ResponseSuccess(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusOK, payload)
}

func ResponseCreated(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusCreated, payload)
}

func ResponseInternalError(w http.ResponseWriter) {
	ResponseJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
}
