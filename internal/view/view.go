// Package view 以 html/template 實作 echo.Renderer，樣板嵌入於執行檔
package view

import (
	"embed"
	"html/template"
	"io"

	"user-directory/internal/service"

	"github.com/labstack/echo/v4"
)

// 樣板名稱
const (
	IndexTemplate = "index.html"
	EditTemplate  = "edit.html"
	ErrorTemplate = "error.html"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ErrorPage 錯誤頁資料
type ErrorPage struct {
	Status  int
	Message string
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"fieldError": fieldError,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// fieldError 回傳指定欄位的第一個錯誤訊息
func fieldError(errs []service.FieldError, field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}
