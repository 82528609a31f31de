package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AlexZinkM/vesting-panel/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error, kind model.ErrorKind) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: string(kind)})
}

// writeResult sends an action result; failed actions get a status matching their kind.
func writeResult(w http.ResponseWriter, res model.ActionResult) {
	status := http.StatusOK
	if !res.OK {
		status = statusForKind(res.Kind)
	}
	writeJSON(w, status, res)
}

func statusForKind(kind model.ErrorKind) int {
	switch kind {
	case model.KindConversion:
		return http.StatusBadRequest
	case model.KindPrecondition:
		return http.StatusConflict
	case model.KindBusy:
		return http.StatusTooManyRequests
	case model.KindProviderAbsent:
		return http.StatusNotFound
	case model.KindProviderRejected:
		return http.StatusUnauthorized
	case model.KindCallFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
