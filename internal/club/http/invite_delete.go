package http

import (
	"errors"
	"net/http"

	"github.com/footballeyeq/clubsvc/internal/club/service"
	"github.com/footballeyeq/clubsvc/pkg/httpx"
	"github.com/footballeyeq/clubsvc/pkg/slogx"
)

type InviteDeleteHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Cancel Coach Invite
//	@Description	Delete a pending invitation. Admin-only; the caller must administer the invite's club.
//	@Tags			Invites
//	@Produce		json
//	@Param			id	path		string			true	"Invite ID"
//	@Success		200	{object}	MessageResponse	"message"
//	@Failure		401	{object}	ErrorResponse	"error"
//	@Failure		403	{object}	ErrorResponse	"error"
//	@Failure		404	{object}	ErrorResponse	"error"
//	@Failure		500	{object}	ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/invites/{id} [delete].
func (h *InviteDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	inviteID := r.PathValue("id")

	if err := h.InviteService.Cancel(ctx, caller, inviteID); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invite id is required"})
		case errors.Is(err, service.ErrInviteNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, ErrorResponse{Error: "Invitation not found"})
		case errors.Is(err, service.ErrNotClubAdmin):
			httpx.WriteJSON(w, http.StatusForbidden, ErrorResponse{Error: "Only club admins can cancel invitations"})
		default:
			log.Error("failed to cancel invite", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to cancel invitation"})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Invitation cancelled"})
}
