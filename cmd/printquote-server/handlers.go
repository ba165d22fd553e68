package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/printquote/printquote/internal/export"
	"github.com/printquote/printquote/internal/history"
	"github.com/printquote/printquote/internal/model"
	"github.com/printquote/printquote/internal/pricing"
	"github.com/printquote/printquote/internal/validate"
)

type contextKey string

const userContextKey contextKey = "user"

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors []validate.Error `json:"errors"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := s.auth.currentUser(r)
		if email == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userContextKey, email)))
	})
}

func userFrom(r *http.Request) string {
	email, _ := r.Context().Value(userContextKey).(string)
	return email
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	valid, err := s.auth.validateCredentials(req.Email, req.Password)
	if err != nil {
		s.log.Error("credential check failed", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "authentication error"})
		return
	}
	if !valid {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		return
	}

	s.auth.setSessionCookie(w, req.Email)
	writeJSON(w, http.StatusOK, map[string]string{"email": req.Email})
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// handleCalculate prices an input without persisting anything.
func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	input, ok := s.decodeInput(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, pricing.Calculate(input))
}

// handleQuoteCreate prices an input and saves it to the caller's history.
func (s *server) handleQuoteCreate(w http.ResponseWriter, r *http.Request) {
	input, ok := s.decodeInput(w, r)
	if !ok {
		return
	}

	record := model.NewHistoryRecord(userFrom(r), input, pricing.Calculate(input))
	if _, err := s.store.Append(record); err != nil {
		s.log.Error("failed to save quote", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save quote"})
		return
	}

	s.log.Info("quote saved",
		slog.String("id", record.ID),
		slog.String("owner", record.OwnerID),
		slog.String("product", record.Input.ProductName))
	writeJSON(w, http.StatusCreated, record)
}

func (s *server) handleQuoteList(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(userFrom(r))
	if err != nil {
		s.log.Error("failed to list quotes", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list quotes"})
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *server) handleQuoteDelete(w http.ResponseWriter, r *http.Request) {
	record, ok := s.ownedRecord(w, r)
	if !ok {
		return
	}

	if err := s.store.Delete(record.ID); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "quote not found"})
			return
		}
		s.log.Error("failed to delete quote", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to delete quote"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleQuoteExportXLSX(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(userFrom(r))
	if err != nil {
		s.log.Error("failed to list quotes", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list quotes"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteHistoryXLSX(&buf, records); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="quote-history.xlsx"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	_, _ = w.Write(buf.Bytes())
}

func (s *server) handleQuotePDF(w http.ResponseWriter, r *http.Request) {
	record, ok := s.ownedRecord(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteQuotePDF(&buf, record); err != nil {
		s.log.Error("failed to render quote pdf", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to render quote"})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="quote-%s.pdf"`, record.ID))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	_, _ = w.Write(buf.Bytes())
}

// decodeInput parses and validates a cost input from the request body.
// On failure it writes the error response and returns ok=false.
func (s *server) decodeInput(w http.ResponseWriter, r *http.Request) (model.CostInput, bool) {
	var input model.CostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return model.CostInput{}, false
	}

	if errs := validate.Validate(input); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Errors: errs})
		return model.CostInput{}, false
	}

	return input, true
}

// ownedRecord loads the record named by the {id} URL parameter and checks it
// belongs to the caller. Records of other users are reported as not found.
func (s *server) ownedRecord(w http.ResponseWriter, r *http.Request) (model.HistoryRecord, bool) {
	id := chi.URLParam(r, "id")

	record, err := s.store.Get(id)
	if errors.Is(err, history.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "quote not found"})
		return model.HistoryRecord{}, false
	}
	if err != nil {
		s.log.Error("failed to load quote", slog.String("id", id), slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load quote"})
		return model.HistoryRecord{}, false
	}

	if record.OwnerID != userFrom(r) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "quote not found"})
		return model.HistoryRecord{}, false
	}

	return record, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
