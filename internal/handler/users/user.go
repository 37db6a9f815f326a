package users

import (
	"context"
	"errors"
	"net/http"

	"user-directory/internal/api"
	"user-directory/internal/service"
	"user-directory/internal/view"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Directory 為 handler 需要的使用者目錄操作，*service.Directory 直接滿足
type Directory interface {
	List(ctx context.Context) (*service.Listing, error)
	Create(ctx context.Context, f service.UserFields) (*service.CreateResult, error)
	FetchForEdit(ctx context.Context, id uuid.UUID) (*service.EditView, error)
	Update(ctx context.Context, id uuid.UUID, req service.UpdateRequest) (*service.UpdateResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ListPath 成功寫入後導回的列表路徑
const ListPath = "/"

func redirectToList(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, ListPath)
}

// renderError 將 not-found 與其他錯誤分別轉為 404 / 500 錯誤頁
func renderError(c echo.Context, err error) error {
	if errors.Is(err, service.ErrUserNotFound) {
		return c.Render(http.StatusNotFound, view.ErrorTemplate, view.ErrorPage{
			Status:  http.StatusNotFound,
			Message: "user not found",
		})
	}
	return c.Render(http.StatusInternalServerError, view.ErrorTemplate, view.ErrorPage{
		Status:  http.StatusInternalServerError,
		Message: "internal server error",
	})
}

func renderBadRequest(c echo.Context) error {
	return c.Render(http.StatusBadRequest, view.ErrorTemplate, view.ErrorPage{
		Status:  http.StatusBadRequest,
		Message: "invalid form data",
	})
}

// parseID 無法解析的 ID 不可能對應任何紀錄，視同 not found
func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, service.ErrUserNotFound
	}
	return id, nil
}

// @Summary     List users
// @Description 列出所有使用者並顯示新增表單
// @Tags        users
// @Produce     html
// @Success     200 {string} string "listing page"
// @Failure     500 {string} string "error page"
// @Router      / [get]
func ListUsersHandler(dir Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		listing, err := dir.List(c.Request().Context())
		if err != nil {
			return renderError(c, err)
		}
		return c.Render(http.StatusOK, view.IndexTemplate, listing)
	}
}

// @Summary     Create a new user
// @Description 驗證表單後建立使用者；驗證失敗時以 422 重繪列表頁並附上錯誤
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     html
// @Param       name     formData string true "使用者姓名"
// @Param       email    formData string true "使用者 Email"
// @Param       password formData string true "密碼 (至少 6 字元，含一個大寫字母與一個數字)"
// @Success     303 "redirect to /"
// @Failure     400 {string} string "error page"
// @Failure     422 {string} string "listing page with validation errors"
// @Failure     500 {string} string "error page"
// @Router      / [post]
func CreateUserHandler(dir Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return renderBadRequest(c)
		}

		res, err := dir.Create(c.Request().Context(), req.Fields())
		if err != nil {
			return renderError(c, err)
		}
		if res.Invalid != nil {
			return c.Render(http.StatusUnprocessableEntity, view.IndexTemplate, res.Invalid)
		}
		return redirectToList(c)
	}
}

// @Summary     Edit a user
// @Description 顯示指定使用者的編輯表單
// @Tags        users
// @Produce     html
// @Param       id  path     string true "使用者 ID (UUID)"
// @Success     200 {string} string "edit page"
// @Failure     404 {string} string "error page"
// @Failure     500 {string} string "error page"
// @Router      /edit/{id} [get]
func EditUserHandler(dir Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return renderError(c, err)
		}
		ev, err := dir.FetchForEdit(c.Request().Context(), id)
		if err != nil {
			return renderError(c, err)
		}
		return c.Render(http.StatusOK, view.EditTemplate, ev)
	}
}

// @Summary     Update a user
// @Description 更新姓名與 Email；change=on 時一併以新密碼的雜湊取代舊雜湊
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     html
// @Param       id       path     string true  "使用者 ID (UUID)"
// @Param       name     formData string true  "使用者姓名"
// @Param       email    formData string true  "使用者 Email"
// @Param       change   formData string false "on 表示變更密碼"
// @Param       password formData string false "新密碼，僅在 change=on 時使用"
// @Success     303 "redirect to /"
// @Failure     400 {string} string "error page"
// @Failure     404 {string} string "error page"
// @Failure     422 {string} string "edit page with validation errors"
// @Failure     500 {string} string "error page"
// @Router      /update/{id} [post]
func UpdateUserHandler(dir Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return renderError(c, err)
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return renderBadRequest(c)
		}

		res, err := dir.Update(c.Request().Context(), id, req.ToUpdate())
		if err != nil {
			return renderError(c, err)
		}
		if res.Invalid != nil {
			return c.Render(http.StatusUnprocessableEntity, view.EditTemplate, res.Invalid)
		}
		return redirectToList(c)
	}
}

// @Summary     Delete a user
// @Description 刪除指定使用者；ID 不存在時同樣導回列表
// @Tags        users
// @Param       id  path string true "使用者 ID (UUID)"
// @Success     303 "redirect to /"
// @Failure     500 {string} string "error page"
// @Router      /delete/{id} [get]
func DeleteUserHandler(dir Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return redirectToList(c)
		}
		if err := dir.Delete(c.Request().Context(), id); err != nil {
			return renderError(c, err)
		}
		return redirectToList(c)
	}
}
