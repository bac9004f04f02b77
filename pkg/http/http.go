// Package http contains utility functions for request and response handling.
package http

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
)

type ErrorCode int

const (
	ErrorCodeInvalidRequestBody ErrorCode = 1
	ErrorCodeUnauthorized                 = 2
	ErrorCodeNotFound                     = 3
	ErrorCodeFailedToStore                = 4
)

// JsonError writes an Error to the ResponseWriter with the provided information.
func JsonError(w http.ResponseWriter, responseCode int, code ErrorCode, msg string) {
	type ErrorResponse struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(responseCode)

	err := json.NewEncoder(w).Encode(ErrorResponse{Code: code, Message: msg})
	if err != nil {
		log.Printf("failed to encode response: %s", err.Error())
	}
}

// JsonSuccess writes a success response to the ResponseWriter.
func JsonSuccess(w http.ResponseWriter) {
	err := JsonEncode(w, map[string]bool{"success": true})
	if err != nil {
		log.Printf("failed to encode response: %s", err.Error())
	}
}

// JsonEncode marshals an interface and writes it to the response.
func JsonEncode(w http.ResponseWriter, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

// GetInt returns an integer query parameter, falling back to a default.
func GetInt(values url.Values, key string, defaultValue int) int {
	val := values.Get(key)
	if val == "" {
		return defaultValue
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}

	return res
}
