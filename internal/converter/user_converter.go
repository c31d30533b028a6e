package converter

import (
	"vet-clinic-booking/internal/delivery/dto"
	"vet-clinic-booking/internal/domain/entity"
)

// UserToResponse converts a User entity to a DTO; the role name is
// passed in because the relation is not always preloaded
func UserToResponse(user *entity.User, roleName string) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      roleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
