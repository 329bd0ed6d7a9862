package views

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ml-platform/internal/core/domain"
)

func TestTemplates_Parse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{
		"dashboard.html",
		"create_project.html",
		"create_experiment.html",
		"visualization.html",
		"project_detail.html",
		"experiment_detail.html",
		"error.html",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestTemplates_VisualizationEmbedsChartData(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "visualization.html", map[string]any{
		"Title":       "Visualization",
		"Experiments": []*domain.Experiment{},
		"ChartData": &domain.ChartData{
			ExperimentNames: []string{"xgb"},
			AccuracyScores:  []float64{0.92},
			F1Scores:        []float64{0.9},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"experiment_names":["xgb"]`)
	assert.Contains(t, buf.String(), `"accuracy_scores":[0.92]`)
}

func TestFuncs(t *testing.T) {
	m := domain.Metrics{domain.MetricAccuracy: 0.9, domain.MetricTrainingTime: 120}
	assert.Equal(t, "0.900", metric(m, domain.MetricAccuracy))
	assert.Equal(t, "120s", metric(m, domain.MetricTrainingTime))
	assert.Equal(t, "-", metric(m, domain.MetricLoss))
	assert.Equal(t, []string{"accuracy", "training_time"}, metricKeys(m))

	assert.Equal(t, "-", fmtTimePtr(nil))
	ts := time.Date(2024, 3, 1, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-01 09:05", fmtTimePtr(&ts))

	id := uuid.MustParse("12345678-1234-1234-1234-123456789abc")
	assert.Equal(t, "12345678", shortID(id))
	assert.Equal(t, "{}", toJSON(map[string]any{}))
}
