package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ChrisCoolDev/qalive-app/config"
	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

// QRCodeHandler renders the question-submission link for a session as a PNG
// QR code. The link format is <origin>/ask/<slug>; no backend lookup is
// needed to draw it.
func (h *Handler) QRCodeHandler(w http.ResponseWriter, r *http.Request) {
	sessionSlug := r.PathValue("slug")
	if sessionSlug == "" {
		writeError(w, "Missing session slug", http.StatusBadRequest)
		return
	}

	askURL := fmt.Sprintf("%s/ask/%s", strings.TrimSuffix(h.Cfg.AppOrigin, "/"), sessionSlug)
	png, err := qrcode.Encode(askURL, qrcode.Medium, qrSize)
	if err != nil {
		config.Logger.Error("Failed to encode QR code:", err)
		writeError(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
