package user_dto

type CreateUserRequest struct {
	ShopID      string   `json:"shop_id" validate:"required"`
	Username    string   `json:"username" validate:"required,min=3,max=50"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=6,max=100"`
	FullName    string   `json:"full_name" validate:"omitempty,max=100"`
	Phone       string   `json:"phone" validate:"omitempty,max=30"`
	Role        string   `json:"role" validate:"omitempty,max=50"`
	Permissions []string `json:"permissions" validate:"omitempty,dive,min=1"`
}

// UpdateUserRequest carries a partial update; nil fields are left
// unchanged.
type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	IsActive *bool   `json:"is_active"`
}

type ListUsersQuery struct {
	Page   int
	Limit  int
	Search string
}
