package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/katiamach/hivebox/internal/logger"
)

type dataResponse struct {
	Data interface{} `json:"data"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Respond is a function to send http responses.
func respond(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, fmt.Sprintf("can't marshal the given payload: %v", err), http.StatusInternalServerError)
		logger.Error(err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, err = w.Write(body)
	if err != nil {
		logger.Error(fmt.Errorf("can't write response: %w", err))
		return
	}
}

// RespondData wraps payload into the data envelope.
func respondData(w http.ResponseWriter, code int, payload interface{}) {
	respond(w, code, dataResponse{Data: payload})
}

// RespondErr is a function to make http error responses.
func respondErr(w http.ResponseWriter, code int, err error) {
	respErr := errorResponse{
		Code:    code,
		Message: err.Error(),
	}

	respond(w, code, respErr)
}
