package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sheikh-saqib/statement-ledger-service/internal/ledger"
	"github.com/sheikh-saqib/statement-ledger-service/internal/users"
	"go.uber.org/zap"
)

// Server is the HTTP transport over the ledger and user services.
type Server struct {
	ledger *ledger.Ledger
	users  *users.Service
	logger *zap.Logger
}

// New builds the API router. Routes mirror the public contract:
// account management is open, everything touching the ledger sits
// behind the bearer-token middleware.
func New(ledgerService *ledger.Ledger, userService *users.Service, jwtSecret []byte, logger *zap.Logger) http.Handler {
	s := &Server{
		ledger: ledgerService,
		users:  userService,
		logger: logger,
	}

	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", s.handleCreateUser)
		r.Post("/sessions", s.handleCreateSession)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(jwtSecret))

			r.Get("/profile", s.handleProfile)
			r.Post("/statements/deposit", s.handleDeposit)
			r.Post("/statements/withdraw", s.handleWithdraw)
			r.Get("/statements/balance", s.handleBalance)
			r.Get("/statements/{statement_id}", s.handleGetStatement)
		})
	})

	return r
}
