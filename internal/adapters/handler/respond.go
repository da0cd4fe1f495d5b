package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type MessageResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("failed to write response", zap.Error(err))
	}
}

func respondMessage(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, MessageResponse{Message: message})
}
