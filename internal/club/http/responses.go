package http

// ErrorResponse is the error body shared by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// InviteResponse describes an issued invite.
type InviteResponse struct {
	InviteID  string `json:"invite_id"`
	Code      string `json:"code"`
	ClubID    string `json:"club_id"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt int64  `json:"expires_at"`
	// Existing is true when an active invite for the same club and email
	// was returned instead of a new one being minted.
	Existing bool `json:"existing"`
}

// RedeemResponse reports a successful redemption.
type RedeemResponse struct {
	ClubID   string `json:"club_id"`
	ClubName string `json:"club_name"`
	Message  string `json:"message"`
}

// RemoveMemberResponse reports a completed removal.
type RemoveMemberResponse struct {
	AccountDowngraded bool   `json:"account_downgraded"`
	Message           string `json:"message"`
}

// ClubCreateResponse identifies a freshly provisioned club.
type ClubCreateResponse struct {
	ClubID   string `json:"club_id"`
	ClubName string `json:"club_name"`
	Message  string `json:"message"`
}

// MessageResponse is a bare confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
