package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/vesting-panel/internal/api"
	"github.com/AlexZinkM/vesting-panel/internal/client"
	"github.com/AlexZinkM/vesting-panel/internal/config"
	"github.com/AlexZinkM/vesting-panel/internal/logger"
	"github.com/AlexZinkM/vesting-panel/vesting"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the panel HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(); err != nil {
			return err
		}
		cfg := config.Get()

		if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
			return err
		}
		log := logger.Get()
		defer log.Sync()

		// Password is needed to unlock (or generate) the key file
		walletFile := config.GetWalletFilePath()
		if walletFile != "" {
			if err := config.PromptForPassword(); err != nil {
				return err
			}
		} else {
			log.Warn("WALLET_FILE_PATH not set: connect will report wallet not detected")
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		node, err := ethclient.DialContext(ctx, cfg.RPCURL)
		if err != nil {
			return fmt.Errorf("failed to dial %s: %w", cfg.RPCURL, err)
		}
		defer node.Close()

		vestingClient, err := client.NewVestingClient(config.GetContractAddress(), node)
		if err != nil {
			return err
		}

		provider := vesting.NewKeyfileProvider(
			walletFile,
			config.GetWalletPasswordBytes,
			node,
			big.NewInt(cfg.ChainID),
			vestingClient,
		)

		panel := vesting.NewPanel(provider, vestingClient, log, vesting.Options{
			CallTimeout:    cfg.CallTimeout,
			ConfirmTimeout: cfg.ConfirmTimeout,
		})

		router, err := api.SetupRouter(api.Deps{
			Panel:          panel,
			WalletFilePath: walletFile,
			Password:       config.GetWalletPasswordBytes,
			Log:            log,
		})
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              "127.0.0.1:" + config.GetPort(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("panel listening",
				zap.String("addr", srv.Addr),
				zap.String("contract", vestingClient.Address().Hex()),
				zap.Int64("chainId", cfg.ChainID))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintln(os.Stderr, "shutdown:", err)
			return err
		}
		return nil
	},
}
