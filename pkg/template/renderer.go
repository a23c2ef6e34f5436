package template

import (
	"net/http"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(w http.ResponseWriter, name string, data interface{}) error {
	return RenderTemplate(w, name, data)
}
