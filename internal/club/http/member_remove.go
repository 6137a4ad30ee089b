package http

import (
	"errors"
	"net/http"

	"github.com/footballeyeq/clubsvc/internal/club/service"
	"github.com/footballeyeq/clubsvc/pkg/httpx"
	"github.com/footballeyeq/clubsvc/pkg/slogx"
)

type MemberRemoveHandler struct {
	MembershipService *service.MembershipService
}

// ServeHTTP godoc
//
//	@Summary		Remove Club Member
//	@Description	Remove a member from the club roster and downgrade their account back to a free individual one. Admin memberships cannot be removed. The optional email query parameter helps locate the departing account when the roster entry stores no email.
//	@Tags			Members
//	@Produce		json
//	@Param			id			path		string					true	"Club ID"
//	@Param			memberID	path		string					true	"Membership ID"
//	@Param			email		query		string					false	"Fallback email for account resolution"
//	@Success		200			{object}	RemoveMemberResponse	"account_downgraded, message"
//	@Failure		400			{object}	ErrorResponse			"error"
//	@Failure		401			{object}	ErrorResponse			"error"
//	@Failure		403			{object}	ErrorResponse			"error"
//	@Failure		404			{object}	ErrorResponse			"error"
//	@Failure		500			{object}	ErrorResponse			"error"
//	@Security		BearerAuth
//	@Router			/v1/clubs/{id}/members/{memberID} [delete].
func (h *MemberRemoveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	clubID := r.PathValue("id")
	memberID := r.PathValue("memberID")
	fallbackEmail := r.URL.Query().Get("email")

	res, err := h.MembershipService.Remove(ctx, caller, clubID, memberID, fallbackEmail)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "club id and member id are required"})
		case errors.Is(err, service.ErrNotClubAdmin):
			httpx.WriteJSON(w, http.StatusForbidden, ErrorResponse{Error: "Only club admins can remove members"})
		case errors.Is(err, service.ErrMemberNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, ErrorResponse{Error: "Member not found"})
		case errors.Is(err, service.ErrCannotRemoveAdmin):
			httpx.WriteJSON(w, http.StatusForbidden, ErrorResponse{Error: "Club admins cannot be removed from the roster"})
		default:
			log.Error("failed to remove member", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove member"})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, RemoveMemberResponse{
		AccountDowngraded: res.AccountDowngraded,
		Message:           res.Message,
	})
}
