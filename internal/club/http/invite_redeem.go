package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/footballeyeq/clubsvc/internal/club/service"
	"github.com/footballeyeq/clubsvc/pkg/httpx"
	"github.com/footballeyeq/clubsvc/pkg/slogx"
)

type InviteRedeemHandler struct {
	InviteService *service.InviteService
}

type inviteRedeemRequest struct {
	Code string `json:"code"`
}

// ServeHTTP godoc
//
//	@Summary		Redeem Coach Invite
//	@Description	Redeem an invitation code, joining the caller to the inviting club as a coach. The invite must be pending and bound to the caller's email address.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		inviteRedeemRequest	true	"Redemption request"
//	@Success		200		{object}	RedeemResponse		"club_id, club_name, message"
//	@Failure		400		{object}	ErrorResponse		"error"
//	@Failure		401		{object}	ErrorResponse		"error"
//	@Failure		403		{object}	ErrorResponse		"error"
//	@Failure		404		{object}	ErrorResponse		"error"
//	@Failure		500		{object}	ErrorResponse		"error"
//	@Security		BearerAuth
//	@Router			/v1/invites/redeem [post].
func (h *InviteRedeemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req inviteRedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	caller, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	res, err := h.InviteService.Redeem(ctx, caller, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "code is required"})
		case errors.Is(err, service.ErrInviteNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, ErrorResponse{Error: "Invalid invitation code"})
		case errors.Is(err, service.ErrInviteAlreadyUsed):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "This invitation has already been used"})
		case errors.Is(err, service.ErrInviteExpired):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "This invitation has expired"})
		case errors.Is(err, service.ErrInviteEmailMismatch):
			httpx.WriteJSON(w, http.StatusForbidden, ErrorResponse{Error: "This invitation was sent to a different email address"})
		case errors.Is(err, service.ErrClubNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, ErrorResponse{Error: "Club no longer exists"})
		default:
			log.Error("failed to redeem invite", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to redeem invitation"})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, RedeemResponse{
		ClubID:   res.ClubID,
		ClubName: res.ClubName,
		Message:  res.Message,
	})
}
