package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/footballeyeq/clubsvc/internal/club/service"
	"github.com/footballeyeq/clubsvc/pkg/httpx"
	"github.com/footballeyeq/clubsvc/pkg/slogx"
)

type InviteCreateHandler struct {
	InviteService *service.InviteService
}

type inviteCreateRequest struct {
	ClubID   string `json:"club_id"`
	ClubName string `json:"club_name"`
	Email    string `json:"email"`
}

// ServeHTTP godoc
//
//	@Summary		Issue Coach Invite
//	@Description	Issue a coach invitation for an email address. Re-issuing for the same club and email returns the existing active invite unchanged. Admin-only.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		inviteCreateRequest	true	"Invite request"
//	@Success		200		{object}	InviteResponse		"invite_id, code, expires_at"
//	@Failure		400		{object}	ErrorResponse		"error"
//	@Failure		401		{object}	ErrorResponse		"error"
//	@Failure		403		{object}	ErrorResponse		"error"
//	@Failure		500		{object}	ErrorResponse		"error"
//	@Security		BearerAuth
//	@Router			/v1/invites [post].
func (h *InviteCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req inviteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	caller, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	res, err := h.InviteService.Issue(ctx, caller, req.ClubID, req.ClubName, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "club_id and email are required"})
		case errors.Is(err, service.ErrInvalidEmail):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid email address"})
		case errors.Is(err, service.ErrNotClubAdmin):
			httpx.WriteJSON(w, http.StatusForbidden, ErrorResponse{Error: "Only club admins can send invitations"})
		case errors.Is(err, service.ErrAlreadyMember):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "This person is already a member of your club"})
		default:
			log.Error("failed to issue invite", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to create invitation"})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, InviteResponse{
		InviteID:  res.Invite.ID,
		Code:      res.Invite.Code,
		ClubID:    res.Invite.ClubID,
		Email:     res.Invite.Email,
		CreatedAt: res.Invite.CreatedAt.Unix(),
		ExpiresAt: res.Invite.ExpiresAt.Unix(),
		Existing:  res.Existing,
	})
}
