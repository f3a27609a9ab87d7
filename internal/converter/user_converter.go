package converter

import (
	"medcare-booking/internal/delivery/dto"
	"medcare-booking/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The password never leaves.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        string(user.Role),
		Phone:       user.Phone,
		DateOfBirth: user.DateOfBirth,
		Gender:      user.Gender,
		Address:     user.Address,
		Specialty:   user.Specialty,
		Experience:  user.Experience,
		Bio:         user.Bio,
		Credentials: user.Credentials,
		CreatedAt:   user.CreatedAt,
	}
}

// RegisterRequestToUser builds a patient account from a registration request
func RegisterRequestToUser(req *dto.RegisterRequest) *entity.User {
	return &entity.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Role:        entity.RolePatient,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Address:     req.Address,
	}
}

// UpdateProfileRequestToUpdate maps the optional request fields onto a ProfileUpdate
func UpdateProfileRequestToUpdate(req *dto.UpdateProfileRequest) entity.ProfileUpdate {
	return entity.ProfileUpdate{
		Name:        req.Name,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Address:     req.Address,
		Bio:         req.Bio,
	}
}
