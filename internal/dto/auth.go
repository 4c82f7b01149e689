package dto

import "geo-attendance-backend/internal/model"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	Type  string      `json:"token_type"`
	User  *model.User `json:"user"`
}
