package auth

// Policy decides whether a caller holds the administrative capability.
// Admin-gated operations (verifier authorization, certificate issuance) take
// a Policy rather than trusting the caller, so the check can be swapped for
// a stronger scheme (multi-sig, external IdP) without touching the services.
type Policy interface {
	IsAdmin(account string) bool
}

// ConfigAdmins is a Policy backed by the configured admin account list.
type ConfigAdmins struct {
	accounts map[string]bool
}

// NewConfigAdmins builds a ConfigAdmins from account IDs (ADMIN_ACCOUNTS).
func NewConfigAdmins(accounts []string) *ConfigAdmins {
	m := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		m[a] = true
	}
	return &ConfigAdmins{accounts: m}
}

func (p *ConfigAdmins) IsAdmin(account string) bool {
	return account != "" && p.accounts[account]
}
