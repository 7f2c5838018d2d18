package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/light-bringer/grocery-service/internal/app/account/contracts"
	"github.com/light-bringer/grocery-service/internal/app/account/queries/get_profile"
	"github.com/light-bringer/grocery-service/internal/app/account/queries/list_users"
	"github.com/light-bringer/grocery-service/internal/app/account/usecases/update_profile"
)

// AccountHandler handles profile and admin user endpoints.
type AccountHandler struct {
	getProfile    *get_profile.Query
	updateProfile *update_profile.Interactor
	listUsers     *list_users.Query
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(
	getProfile *get_profile.Query,
	updateProfile *update_profile.Interactor,
	listUsers *list_users.Query,
) *AccountHandler {
	return &AccountHandler{
		getProfile:    getProfile,
		updateProfile: updateProfile,
		listUsers:     listUsers,
	}
}

type userResponse struct {
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Address       string    `json:"address,omitempty"`
	ContactNumber string    `json:"contact_number,omitempty"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
}

func toUserResponse(dto *contracts.UserDTO) userResponse {
	return userResponse{
		UserID:        dto.UserID,
		Name:          dto.Name,
		Email:         dto.Email,
		Address:       dto.Address,
		ContactNumber: dto.ContactNumber,
		Role:          dto.Role,
		CreatedAt:     dto.CreatedAt,
	}
}

// Me handles GET /api/users/me.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	dto, err := h.getProfile.Execute(r.Context(), &get_profile.Request{
		Principal: principalFrom(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(dto))
}

// updateProfileRequest is the JSON shape for profile updates. Absent
// fields stay unchanged; changing the password requires the current one.
type updateProfileRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Address         *string `json:"address"`
	ContactNumber   *string `json:"contact_number"`
	CurrentPassword string  `json:"current_password"`
	NewPassword     string  `json:"new_password"`
}

// UpdateMe handles PUT /api/users/me.
func (h *AccountHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var body updateProfileRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	err := h.updateProfile.Execute(r.Context(), &update_profile.Request{
		Principal:       principalFrom(r.Context()),
		Name:            body.Name,
		Email:           body.Email,
		Address:         body.Address,
		ContactNumber:   body.ContactNumber,
		CurrentPassword: body.CurrentPassword,
		NewPassword:     body.NewPassword,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// ListUsers handles GET /api/admin/users.
func (h *AccountHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	req := &list_users.Request{
		Principal: principalFrom(r.Context()),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			req.Limit = limit
		}
	}

	users, err := h.listUsers.Execute(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, dto := range users {
		out = append(out, toUserResponse(dto))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"users": out})
}
