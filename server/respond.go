package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	contentTypeJSON = "application/json"
	contentTypeYAML = "application/yaml"
)

// wantsYAML reports whether the client asked for YAML via ?format=yaml or an
// Accept header.
func wantsYAML(r *http.Request) bool {
	if f := r.URL.Query().Get("format"); f != "" {
		return strings.EqualFold(f, "yaml")
	}
	accept := strings.ToLower(r.Header.Get("Accept"))
	return strings.Contains(accept, "application/yaml") ||
		strings.Contains(accept, "application/x-yaml") ||
		strings.Contains(accept, "text/yaml")
}

// respond serializes data in the negotiated format. The body is encoded
// before any header is written so an encoding failure can still become a 500.
func respond(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	buf := &bytes.Buffer{}
	contentType := contentTypeJSON
	var err error
	if wantsYAML(r) {
		contentType = contentTypeYAML
		enc := yaml.NewEncoder(buf)
		enc.SetIndent(2)
		if err = enc.Encode(data); err == nil {
			err = enc.Close()
		}
	} else {
		err = json.NewEncoder(buf).Encode(data)
	}
	if err != nil {
		slog.Error("response encoding failed", "error", err, "contentType", contentType)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}
