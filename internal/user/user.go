package user

import (
	"github.com/frahmantamala/document-management/internal"
	userDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/user"
)

// ToPrincipal converts a stored account into the caller attached to request contexts.
func ToPrincipal(u *userDatamodel.User) *internal.User {
	return &internal.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      internal.ParseRole(u.Role),
	}
}

func ToResponse(u *userDatamodel.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   internal.ParseRole(u.Role) == internal.RoleStaff,
	}
}

// ToResponsePtr returns nil for a nil account, for optional relations.
func ToResponsePtr(u *userDatamodel.User) *UserResponse {
	if u == nil {
		return nil
	}
	resp := ToResponse(u)
	return &resp
}

func ToResponses(users []userDatamodel.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToResponse(&users[i]))
	}
	return responses
}
