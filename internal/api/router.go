package api

import (
	"errors"
	"net/http"

	_ "github.com/AlexZinkM/vesting-panel/docs"
	"github.com/AlexZinkM/vesting-panel/internal/handler"
	"github.com/AlexZinkM/vesting-panel/vesting"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// Deps are the collaborators the router wires into handlers
type Deps struct {
	Panel          *vesting.Panel
	WalletFilePath string
	Password       func() ([]byte, error)
	Log            *zap.Logger
}

// SetupRouter sets up router with handlers
func SetupRouter(deps Deps) (http.Handler, error) {
	if deps.Panel == nil {
		return nil, errors.New("panel is required")
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	vestingHandler := handler.NewVestingHandler(deps.Panel)
	walletHandler := handler.NewWalletHandler(deps.WalletFilePath, deps.Password)
	pageHandler := handler.NewPageHandler(deps.Panel, deps.Log)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Prometheus
	mux.Handle("/metrics", promhttp.Handler())

	// HTML form
	mux.HandleFunc("/", pageHandler.Index)
	mux.HandleFunc("/ui/{action}", pageHandler.Action)

	// Vesting endpoints
	mux.HandleFunc("/vesting/connect", vestingHandler.Connect)
	mux.HandleFunc("/vesting/beneficiary", vestingHandler.Beneficiary)
	mux.HandleFunc("/vesting/claim", vestingHandler.Claim)
	mux.HandleFunc("/vesting/start", vestingHandler.Start)
	mux.HandleFunc("/vesting/status", vestingHandler.Status)
	mux.HandleFunc("/vesting/state", vestingHandler.State)

	// Wallet endpoints
	mux.HandleFunc("/wallet", walletHandler.Info)
	mux.HandleFunc("/wallet/generate", walletHandler.Generate)

	return mux, nil
}
