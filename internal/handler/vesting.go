package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/AlexZinkM/vesting-panel/internal/model"
	"github.com/AlexZinkM/vesting-panel/vesting"
)

// VestingHandler exposes the panel actions as JSON endpoints
type VestingHandler struct {
	panel *vesting.Panel
}

// NewVestingHandler creates a new VestingHandler
func NewVestingHandler(panel *vesting.Panel) *VestingHandler {
	return &VestingHandler{panel: panel}
}

// writeContext keeps a submitted transaction's confirmation wait alive
// when the HTTP client goes away; the panel's confirm timeout still applies.
func writeContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

// Connect handles POST /vesting/connect
// @Summary      Connect wallet
// @Description  Unlocks the configured key file and checks the node network
// @Tags         vesting
// @Produce      json
// @Success      200  {object}  model.ActionResult
// @Failure      401  {object}  model.ActionResult
// @Failure      404  {object}  model.ActionResult
// @Router       /vesting/connect [post]
func (h *VestingHandler) Connect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	writeResult(w, h.panel.Connect(r.Context()))
}

// Beneficiary handles POST and GET /vesting/beneficiary
// @Summary      Add beneficiary / get beneficiary details
// @Description  POST submits addBeneficiary and waits for confirmation. GET reads getBeneficiaryDetails.
// @Tags         vesting
// @Accept       json
// @Produce      json
// @Param        request  body      model.AddBeneficiaryRequest  false  "Beneficiary (POST)"
// @Param        address  query     string                       false  "Beneficiary address (GET)"
// @Success      200      {object}  model.ActionResult
// @Failure      400      {object}  model.ActionResult
// @Failure      409      {object}  model.ActionResult
// @Failure      502      {object}  model.ActionResult
// @Router       /vesting/beneficiary [post]
// @Router       /vesting/beneficiary [get]
func (h *VestingHandler) Beneficiary(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeResult(w, h.panel.GetBeneficiaryDetails(r.Context(), r.URL.Query().Get("address")))
	case http.MethodPost:
		var req model.AddBeneficiaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err, model.KindConversion)
			return
		}

		if strings.TrimSpace(req.Address) == "" || strings.TrimSpace(req.Amount) == "" {
			writeError(w, http.StatusBadRequest, errors.New("address and amount are required"), model.KindConversion)
			return
		}

		role, err := model.ParseRole(req.Role)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid role: %w", err), model.KindConversion)
			return
		}

		writeResult(w, h.panel.AddBeneficiary(writeContext(r), model.BeneficiaryInput{
			Address: req.Address,
			Amount:  req.Amount,
			Role:    role,
		}))
	default:
		http.Error(w, "Method not allowed. Should be GET or POST", http.StatusMethodNotAllowed)
	}
}

// Claim handles POST /vesting/claim
// @Summary      Claim tokens
// @Description  Submits claimTokens for the connected account and waits for confirmation
// @Tags         vesting
// @Produce      json
// @Success      200  {object}  model.ActionResult
// @Failure      409  {object}  model.ActionResult
// @Failure      502  {object}  model.ActionResult
// @Router       /vesting/claim [post]
func (h *VestingHandler) Claim(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	writeResult(w, h.panel.ClaimTokens(writeContext(r)))
}

// Start handles POST /vesting/start
// @Summary      Start vesting
// @Description  Submits startVesting, waits for confirmation and reads the vesting status
// @Tags         vesting
// @Produce      json
// @Success      200  {object}  model.ActionResult
// @Failure      409  {object}  model.ActionResult
// @Failure      502  {object}  model.ActionResult
// @Router       /vesting/start [post]
func (h *VestingHandler) Start(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	writeResult(w, h.panel.StartVesting(writeContext(r)))
}

// Status handles GET /vesting/status
// @Summary      Vesting status
// @Description  Reads startTimestamp and vestingStarted
// @Tags         vesting
// @Produce      json
// @Success      200  {object}  model.ActionResult
// @Failure      502  {object}  model.ActionResult
// @Router       /vesting/status [get]
func (h *VestingHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	writeResult(w, h.panel.RefreshStatus(r.Context()))
}

// State handles GET /vesting/state
// @Summary      Panel state
// @Description  Returns the current panel state
// @Tags         vesting
// @Produce      json
// @Success      200  {object}  model.PanelState
// @Router       /vesting/state [get]
func (h *VestingHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.panel.State())
}
