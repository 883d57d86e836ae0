// internal/app/features/uploads/handler.go
package uploads

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	"github.com/ceitm/platform/internal/app/system/authz"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxUploadBytes caps image uploads at 8MB.
const maxUploadBytes = 8 << 20

// allowedImageTypes is the closed set of accepted upload content types.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Handler owns the admin image upload endpoint. Uploaded files back the
// image URLs referenced by convenios, noticias and roster portraits.
type Handler struct {
	Storage storage.Store
	URLBase string
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

// NewHandler constructs the uploads handler. urlBase is the public URL
// prefix under which stored files are served (e.g. "/files").
func NewHandler(store storage.Store, urlBase string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Storage: store, URLBase: strings.TrimSuffix(urlBase, "/"), Log: logger, ErrLog: errLog}
}

// HandleUpload accepts a multipart image upload from any user holding at
// least one admin capability and responds with the public URL as JSON.
// Files are stored under uploads/YYYY/MM with a random name; the original
// filename is never trusted for anything but the extension fallback.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if !authz.HasAnyAdminCapability(r) {
		http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.jsonError(w, http.StatusBadRequest, "El archivo excede el tamaño permitido (8MB).")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.jsonError(w, http.StatusBadRequest, "Falta el archivo.")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		h.jsonError(w, http.StatusUnsupportedMediaType, "Solo se aceptan imágenes JPEG, PNG, WebP o GIF.")
		return
	}
	if e := strings.ToLower(filepath.Ext(header.Filename)); e != "" && len(e) < 6 {
		ext = e
	}

	now := time.Now().UTC()
	path := fmt.Sprintf("uploads/%04d/%02d/%s%s", now.Year(), now.Month(), uuid.New().String(), ext)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Storage.Put(ctx, path, file, &storage.PutOptions{ContentType: contentType}); err != nil {
		h.Log.Error("store upload failed", zap.String("path", path), zap.Error(err))
		h.jsonError(w, http.StatusInternalServerError, "No se pudo guardar la imagen.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"url": h.URLBase + "/" + path,
	})
}

func (h *Handler) jsonError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
