package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/compta-server/internal/handlers/v1/account"
	"github.com/carson-networks/compta-server/internal/handlers/v1/report"
	"github.com/carson-networks/compta-server/internal/handlers/v1/status"
	"github.com/carson-networks/compta-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/compta-server/internal/logging"
	"github.com/carson-networks/compta-server/internal/service"
	"github.com/carson-networks/compta-server/internal/storage"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Storage *storage.Storage
	Service *service.Service
}

// Handler builds the router: /status as a plain handler and every /v1
// operation through huma.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("compta", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)

	account.NewGetRegistryHandler(r.Service.Account).Register(api)
	account.NewCreateAccountHandler(r.Service.Account).Register(api)
	account.NewRenameAccountHandler(r.Service.Account).Register(api)
	account.NewDeleteAccountHandler(r.Service.Account).Register(api)
	account.NewLinkAccountHandler(r.Service.Account).Register(api)
	account.NewPreferencesHandler(r.Service.Account).Register(api)

	report.NewDashboardHandler(r.Service.Report).Register(api)
	report.NewDrilldownHandler(r.Service.Report).Register(api)
	report.NewArchiveHandler(r.Service.Report).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
