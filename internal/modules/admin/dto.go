package admin

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user club admin"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type UserListResponse struct {
	Users []UserRow `json:"users"`
	Total int64     `json:"total"`
}

type UserRow struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	PreferredLocale string `json:"preferred_locale"`
	EmailVerified   bool   `json:"email_verified"`
	IsActive        bool   `json:"is_active"`
	CreatedAt       string `json:"created_at"`
}
