// File: internal/api/update_user_request.go
package api

import "user-directory/internal/service"

// ChangePasswordOn 表單勾選「變更密碼」時 change 欄位的值
const ChangePasswordOn = "on"

// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name     string `form:"name" example:"Ana"`
	Email    string `form:"email" example:"ana@x.com"`
	Password string `form:"password" example:"Secret2"`
	Change   string `form:"change" example:"on"`
}

// ToUpdate 在邊界一次決定是否變更密碼；未勾選時 password 欄位直接捨棄
func (r UpdateUserRequest) ToUpdate() service.UpdateRequest {
	if r.Change == ChangePasswordOn {
		return service.ChangePassword{Name: r.Name, Email: r.Email, NewPassword: r.Password}
	}
	return service.KeepPassword{Name: r.Name, Email: r.Email}
}
