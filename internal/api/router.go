package api

import (
	"net/http"

	"github.com/AlexZinkM/hd-wallet/internal/handler"

	"github.com/btcsuite/btclog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(logger btclog.Logger) (http.Handler, error) {
	hdHandler, err := handler.NewHDHandler(logger)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// HD wallet endpoints
	mux.HandleFunc("/hd/generate", hdHandler.Generate)
	mux.HandleFunc("/hd/import", hdHandler.Import)
	mux.HandleFunc("/hd/address", hdHandler.Address)
	mux.HandleFunc("/hd/derive", hdHandler.Derive)
	mux.HandleFunc("/hd/inspect", hdHandler.Inspect)
	mux.HandleFunc("/hd/strength", hdHandler.Strength)

	return mux, nil
}
