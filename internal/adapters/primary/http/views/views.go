// Package views holds the embedded HTML templates of the dashboard.
package views

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"ml-platform/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"fmtTime":    fmtTime,
	"fmtTimePtr": fmtTimePtr,
	"metric":     metric,
	"metricKeys": metricKeys,
	"shortID":    shortID,
	"join":       strings.Join,
	"toJSON":     toJSON,
}

// Templates parses every page. Each template is named after its file.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func fmtTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

func fmtTimePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return fmtTime(*t)
}

func metric(m domain.Metrics, key string) string {
	v, ok := m[key]
	if !ok {
		return "-"
	}
	if key == domain.MetricTrainingTime {
		return fmt.Sprintf("%.0fs", v)
	}
	return fmt.Sprintf("%.3f", v)
}

func metricKeys(m domain.Metrics) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

func toJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
