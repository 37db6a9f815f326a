// File: internal/router/router.go
package router

import (
	"user-directory/internal/cache"
	"user-directory/internal/database"
	"user-directory/internal/handler"
	"user-directory/internal/handler/users"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有路由，依賴由呼叫端注入
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, dir users.Directory) {
	e.GET("/ping", handler.PingHandler(db, cch))

	// 使用者目錄 CRUD (HTML)
	e.GET("/", users.ListUsersHandler(dir))
	e.POST("/", users.CreateUserHandler(dir))
	e.GET("/edit/:id", users.EditUserHandler(dir))
	e.POST("/update/:id", users.UpdateUserHandler(dir))
	e.GET("/delete/:id", users.DeleteUserHandler(dir))
}
