package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sheikh-saqib/statement-ledger-service/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Profile(r.Context(), UserID(r.Context()))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleDeposit(w http.ResponseWriter, r *http.Request) {
	s.createStatement(w, r, models.OperationDeposit)
}

func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	s.createStatement(w, r, models.OperationWithdraw)
}

func (s *Server) createStatement(w http.ResponseWriter, r *http.Request, opType models.OperationType) {
	var req struct {
		Amount      decimal.Decimal `json:"amount"`
		Description string          `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	statement, err := s.ledger.CreateStatement(r.Context(), UserID(r.Context()), opType, req.Amount, req.Description)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, statement)
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := s.ledger.GetBalance(r.Context(), UserID(r.Context()))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

func (s *Server) handleGetStatement(w http.ResponseWriter, r *http.Request) {
	statementID := chi.URLParam(r, "statement_id")

	statement, err := s.ledger.GetStatementOperation(r.Context(), UserID(r.Context()), statementID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statement)
}

// writeDomainError maps the domain error kinds onto HTTP statuses.
// Anything outside the domain vocabulary is an infrastructure failure
// and surfaces as a 500, never remapped to a client error.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUserNotFound), errors.Is(err, models.ErrStatementNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInsufficientFunds),
		errors.Is(err, models.ErrAmountNotPositive),
		errors.Is(err, models.ErrInvalidOperationType),
		errors.Is(err, models.ErrInvalidUserData),
		errors.Is(err, models.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrIncorrectCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
