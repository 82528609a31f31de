package handler

import (
	"errors"
	"net/http"

	"github.com/AlexZinkM/vesting-panel/internal/model"
	"github.com/AlexZinkM/vesting-panel/vesting"
)

// WalletHandler manages the local key file
type WalletHandler struct {
	filePath string
	password func() ([]byte, error)
}

// NewWalletHandler creates a new WalletHandler. password returns a copy of the
// startup password; it is zeroed after each use.
func NewWalletHandler(filePath string, password func() ([]byte, error)) *WalletHandler {
	return &WalletHandler{
		filePath: filePath,
		password: password,
	}
}

// Generate handles POST /wallet/generate
// @Summary      Generate new wallet
// @Description  Generates a new Ethereum key and saves it to the configured .vkey file
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. should be POST", http.StatusMethodNotAllowed)
		return
	}
	if h.filePath == "" {
		writeError(w, http.StatusBadRequest, errors.New("WALLET_FILE_PATH not set"), model.KindProviderAbsent)
		return
	}

	// Get password as []byte, use it, then zero it immediately
	passwordBytes, err := h.password()
	if err != nil {
		writeError(w, http.StatusBadRequest, err, model.KindProviderRejected)
		return
	}
	defer clear(passwordBytes) // Always clear password from memory

	address, err := vesting.GenerateWallet(h.filePath, passwordBytes)
	if err != nil {
		if vesting.IsFileExistsError(err) {
			writeError(w, http.StatusConflict, err, "")
			return
		}
		writeError(w, http.StatusInternalServerError, err, "")
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet generated successfully",
		Address: address,
	})
}

// Info handles GET /wallet
// @Summary      Wallet info
// @Description  Address and QR code of the configured key file (no decryption)
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletResponse
// @Failure      404  {object}  model.ErrorResponse
// @Router       /wallet [get]
func (h *WalletHandler) Info(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	info, err := vesting.WalletInfo(h.filePath)
	if err != nil {
		if errors.Is(err, vesting.ErrNotDetected) {
			writeError(w, http.StatusNotFound, err, model.KindProviderAbsent)
			return
		}
		writeError(w, http.StatusInternalServerError, err, "")
		return
	}

	writeJSON(w, http.StatusOK, info)
}
