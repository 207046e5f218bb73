package dto

import (
	userModel "travelog/internal/domains/user/model"
)

type RegisterRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	UserName string `json:"user_name" validate:"required,max=255"`
	Password string `json:"password"  validate:"required,min=6"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	return userModel.User{
		Email:        r.Email,
		UserName:     r.UserName,
		PasswordHash: hashedPassword,
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of an account. The password hash never
// leaves the service layer.
type UserResponse struct {
	Email    string `json:"email"`
	UserName string `json:"user_name"`
}

func (r *UserResponse) FromModel(mod userModel.User) {
	r.Email = mod.Email
	r.UserName = mod.UserName
}
