package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/CedricFinance/sms_operator/model"
	"github.com/CedricFinance/sms_operator/repository"
	"github.com/go-chi/chi/v5"
)

type CommandLogReader interface {
	GetCommandLog(ctx context.Context, id string) (*model.CommandLog, error)
	GetCommandLogs(ctx context.Context, msisdn string) ([]*model.CommandLog, error)
}

type commandLogResponse struct {
	Id        string `json:"id"`
	MSISDN    string `json:"msisdn"`
	Keyword   string `json:"keyword"`
	Text      string `json:"text"`
	Outcome   string `json:"outcome"`
	Error     string `json:"error,omitempty"`
	CreatedAt string `json:"created_at"`
}

func toCommandLogResponse(entry *model.CommandLog) commandLogResponse {
	return commandLogResponse{
		Id:        entry.Id,
		MSISDN:    entry.MSISDN,
		Keyword:   entry.Keyword,
		Text:      entry.Text,
		Outcome:   entry.Outcome,
		Error:     entry.Error,
		CreatedAt: entry.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// listCommandLogs serves GET /commands?msisdn=
func listCommandLogs(logs CommandLogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msisdn := r.URL.Query().Get("msisdn")
		if msisdn == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "msisdn is required"})
			return
		}

		entries, err := logs.GetCommandLogs(r.Context(), msisdn)
		if err != nil {
			log.Printf("failed to list command logs for %s: %v", msisdn, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal error"})
			return
		}

		response := make([]commandLogResponse, len(entries))
		for i, entry := range entries {
			response[i] = toCommandLogResponse(entry)
		}
		writeJSON(w, http.StatusOK, response)
	}
}

// getCommandLog serves GET /commands/{id}
func getCommandLog(logs CommandLogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		entry, err := logs.GetCommandLog(r.Context(), id)
		var notFound repository.NotFound
		if errors.As(err, &notFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": notFound.Error()})
			return
		}
		if err != nil {
			log.Printf("failed to get command log %s: %v", id, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal error"})
			return
		}

		writeJSON(w, http.StatusOK, toCommandLogResponse(entry))
	}
}
