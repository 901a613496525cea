package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the error/errorMsg pair every response body carries. Success
// payloads embed it with the zero value; failures set both fields.
type Envelope struct {
	Error    bool   `json:"error"`
	ErrorMsg string `json:"errorMsg"`
}

// JSON writes v with Content-Type and status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a success payload with status 200.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Fail writes the bare error envelope.
func Fail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Envelope{Error: true, ErrorMsg: msg})
}
