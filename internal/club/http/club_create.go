package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/footballeyeq/clubsvc/internal/club/service"
	"github.com/footballeyeq/clubsvc/pkg/httpx"
	"github.com/footballeyeq/clubsvc/pkg/slogx"
)

type ClubCreateHandler struct {
	ClubService *service.ClubService
}

type clubCreateRequest struct {
	Name string `json:"name"`
}

// ServeHTTP godoc
//
//	@Summary		Provision Club
//	@Description	Create a new club with the caller as its admin. The admin membership seeded here is the only one not produced through invite redemption. Callers already affiliated with a club are rejected.
//	@Tags			Clubs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubCreateRequest	true	"Club details"
//	@Success		200		{object}	ClubCreateResponse	"club_id, club_name, message"
//	@Failure		400		{object}	ErrorResponse		"error"
//	@Failure		401		{object}	ErrorResponse		"error"
//	@Failure		500		{object}	ErrorResponse		"error"
//	@Security		BearerAuth
//	@Router			/v1/clubs [post].
func (h *ClubCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req clubCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	caller, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	res, err := h.ClubService.Provision(ctx, caller, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Club name is required"})
		case errors.Is(err, service.ErrAlreadyInClub):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "You already belong to a club"})
		default:
			log.Error("failed to provision club", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to create club"})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ClubCreateResponse{
		ClubID:   res.ClubID,
		ClubName: res.ClubName,
		Message:  res.Message,
	})
}
