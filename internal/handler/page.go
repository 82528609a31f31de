package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/AlexZinkM/vesting-panel/internal/model"
	"github.com/AlexZinkM/vesting-panel/vesting"

	"go.uber.org/zap"
)

//go:embed templates/panel.html
var templatesFS embed.FS

var panelTemplate = template.Must(template.ParseFS(templatesFS, "templates/panel.html"))

type pageData struct {
	State model.PanelState
	Roles []model.Role
}

// PageHandler renders the HTML form and runs form-submitted actions
type PageHandler struct {
	panel *vesting.Panel
	log   *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(panel *vesting.Panel, log *zap.Logger) *PageHandler {
	return &PageHandler{panel: panel, log: log}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := panelTemplate.Execute(w, pageData{State: h.panel.State(), Roles: model.Roles()}); err != nil {
		h.log.Error("failed to render panel", zap.Error(err))
	}
}

// Action handles POST /ui/{action}: runs the action and redirects back to the form
func (h *PageHandler) Action(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in := h.panel.State().Input
	if r.PostForm.Has("address") {
		in.Address = r.PostFormValue("address")
	}
	if r.PostForm.Has("amount") {
		in.Amount = r.PostFormValue("amount")
	}
	if r.PostForm.Has("role") {
		// the select only offers valid roles; anything else is a tampered form
		role, err := model.ParseRole(r.PostFormValue("role"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		in.Role = role
	}

	ctx := writeContext(r)
	switch model.Action(r.PathValue("action")) {
	case model.ActionConnect:
		h.panel.Connect(ctx)
	case model.ActionAddBeneficiary:
		h.panel.AddBeneficiary(ctx, in)
	case model.ActionClaimTokens:
		h.panel.SetInput(in)
		h.panel.ClaimTokens(ctx)
	case model.ActionStartVesting:
		h.panel.SetInput(in)
		h.panel.StartVesting(ctx)
	case model.ActionRefreshStatus:
		h.panel.SetInput(in)
		h.panel.RefreshStatus(ctx)
	case model.ActionGetDetails:
		h.panel.SetInput(in)
		h.panel.GetBeneficiaryDetails(ctx, in.Address)
	default:
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
