package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/secrets"
)

// SecretsHandler manages the IMAP password in the OS keychain. The keyring
// account is always derived from the live config so a username/host change
// in /config immediately points writes at the right slot.
type SecretsHandler struct {
	CfgVal *atomic.Value // stores config.Config
}

type imapPasswordReq struct {
	Password string `json:"password"`
}

func (h SecretsHandler) SetIMAPPassword(w http.ResponseWriter, r *http.Request) {
	var req imapPasswordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if req.Password == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_password", "password is required")
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	account := secrets.IMAPKeyringAccount(cfg)
	if err := secrets.SetIMAPPassword(account, req.Password); err != nil {
		WriteError(w, r, http.StatusBadRequest, "keyring_failed", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true, "account": account})
}

func (h SecretsHandler) DeleteIMAPPassword(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	if err := secrets.DeleteIMAPPassword(secrets.IMAPKeyringAccount(cfg)); err != nil {
		WriteError(w, r, http.StatusBadRequest, "keyring_failed", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
