// internal/app/features/aviso/handler.go
package aviso

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

func (h *Handler) ServeAviso(w http.ResponseWriter, r *http.Request) {
	vm := viewdata.NewBaseVM(r, "Aviso de privacidad", "/")
	templates.Render(w, r, "aviso", vm)
}
