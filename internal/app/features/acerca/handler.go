// internal/app/features/acerca/handler.go
package acerca

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

func (h *Handler) ServeAcerca(w http.ResponseWriter, r *http.Request) {
	vm := viewdata.NewBaseVM(r, "Acerca del Consejo", "/")
	templates.Render(w, r, "acerca", vm)
}
