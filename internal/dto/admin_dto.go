package dto

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UserSummaryResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
