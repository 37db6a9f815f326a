package api

import "user-directory/internal/service"

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name     string `form:"name" example:"Ana"`
	Email    string `form:"email" example:"ana@x.com"`
	Password string `form:"password" example:"Secret1"`
}

// Fields 只複製允許寫入的欄位
func (r CreateUserRequest) Fields() service.UserFields {
	return service.UserFields{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}
