package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case BADREQUEST:
		statusCode = http.StatusBadRequest
	case UNAUTHORIZED:
		statusCode = http.StatusUnauthorized
	case NOTFOUND:
		statusCode = http.StatusNotFound
	case CONFLICT:
		statusCode = http.StatusConflict
	}
	respondJSON(w, statusCode, err)
}

func badRequest(w http.ResponseWriter, format string, args ...any) {
	errResp := ErrorResp{}
	errResp.Error.Code = BADREQUEST
	errResp.Error.Message = fmt.Sprintf(format, args...)
	respondError(w, errResp)
}

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		badRequest(w, "invalid request body: %v", err)
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		badRequest(w, "invalid %s: %v", name, err)
		return uuid.Nil, false
	}
	return id, true
}
