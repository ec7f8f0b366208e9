package dto

import "github.com/johanmora/ganaderia-backend/internal/models"

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
}

type UpdateRoleRequest struct {
	Role models.Role `json:"role"`
}
