package dto

import "github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/model"

// ProfileResponse is the wire representation of an account.
type ProfileResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateProfileRequest overwrites the stored profile. Password is optional;
// when present it replaces the stored credential.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password,omitempty"`
}

// FromAccount converts a domain account.
func FromAccount(account model.Account) ProfileResponse {
	return ProfileResponse{
		ID:      account.ID,
		Name:    account.Name,
		Email:   account.Email,
		Phone:   account.Phone,
		Address: account.Address,
	}
}
