// internal/app/features/contacto/handler.go
package contacto

import (
	"net/http"

	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

func (h *Handler) ServeContacto(w http.ResponseWriter, r *http.Request) {
	vm := viewdata.NewBaseVM(r, "Contacto", "/")
	templates.Render(w, r, "contacto", vm)
}
