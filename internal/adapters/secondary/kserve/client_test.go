package kserve

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	dynamicfake "k8s.io/client-go/dynamic/fake"

	"ml-platform/internal/core/domain"
	output "ml-platform/internal/core/ports/output"
)

func newFakeDynamic() *dynamicfake.FakeDynamicClient {
	return dynamicfake.NewSimpleDynamicClientWithCustomListKinds(
		runtime.NewScheme(),
		map[schema.GroupVersionResource]string{inferenceServiceGVR: "InferenceServiceList"},
	)
}

func testModel() (*domain.TrainedModel, *domain.Experiment) {
	exp := &domain.Experiment{ID: uuid.New(), Algorithm: "XGBoost"}
	model := &domain.TrainedModel{
		ID: uuid.New(), Name: "Customer Churn Predictor",
		ExperimentID: exp.ID, Version: domain.DefaultModelVersion,
	}
	return model, exp
}

func TestKServeClient_Deploy(t *testing.T) {
	dyn := newFakeDynamic()
	c := NewKServeClientWithDynamic(dyn, "serving", "s3://models/")
	model, exp := testModel()

	dep, err := c.Deploy(context.Background(), model, exp)
	require.NoError(t, err)
	assert.Equal(t, "customer-churn-predictor", dep.Name)

	obj, err := dyn.Resource(inferenceServiceGVR).Namespace("serving").
		Get(context.Background(), "customer-churn-predictor", metav1.GetOptions{})
	require.NoError(t, err)

	uri, _, _ := unstructured.NestedString(obj.Object, "spec", "predictor", "model", "storageUri")
	assert.Equal(t, "s3://models/customer-churn-predictor/1.0.0", uri)
	format, _, _ := unstructured.NestedString(obj.Object, "spec", "predictor", "model", "modelFormat", "name")
	assert.Equal(t, "xgboost", format)
	assert.Equal(t, model.ID.String(), obj.GetLabels()[labelModelID])
}

func TestKServeClient_Deploy_UnknownAlgorithm(t *testing.T) {
	dyn := newFakeDynamic()
	c := NewKServeClientWithDynamic(dyn, "", "s3://models")
	model, exp := testModel()
	exp.Algorithm = "Hand-written heuristics"

	_, err := c.Deploy(context.Background(), model, exp)
	require.NoError(t, err)

	obj, err := dyn.Resource(inferenceServiceGVR).Namespace("model-serving").
		Get(context.Background(), model.Slug(), metav1.GetOptions{})
	require.NoError(t, err)
	_, found, _ := unstructured.NestedMap(obj.Object, "spec", "predictor", "model", "modelFormat")
	assert.False(t, found)
}

func TestKServeClient_DeployTwiceFails(t *testing.T) {
	c := NewKServeClientWithDynamic(newFakeDynamic(), "serving", "s3://models")
	model, exp := testModel()

	_, err := c.Deploy(context.Background(), model, exp)
	require.NoError(t, err)
	_, err = c.Deploy(context.Background(), model, exp)
	assert.Error(t, err)
}

func TestKServeClient_UndeployAndStatus(t *testing.T) {
	c := NewKServeClientWithDynamic(newFakeDynamic(), "serving", "s3://models")
	model, exp := testModel()

	_, err := c.GetStatus(context.Background(), model)
	assert.Error(t, err)

	_, err = c.Deploy(context.Background(), model, exp)
	require.NoError(t, err)

	status, err := c.GetStatus(context.Background(), model)
	require.NoError(t, err)
	assert.False(t, status.Ready)

	require.NoError(t, c.Undeploy(context.Background(), model))
	assert.Error(t, c.Undeploy(context.Background(), model))
}

func TestParseStatus(t *testing.T) {
	obj := &unstructured.Unstructured{Object: map[string]interface{}{
		"status": map[string]interface{}{
			"url": "http://churn.serving.example.com",
			"conditions": []interface{}{
				map[string]interface{}{"type": "PredictorReady", "status": "True"},
				map[string]interface{}{"type": "Ready", "status": "False", "message": "image pull backoff"},
			},
		},
	}}

	status := parseStatus(obj)
	assert.Equal(t, "http://churn.serving.example.com", status.URL)
	assert.False(t, status.Ready)
	assert.Equal(t, "image pull backoff", status.Error)

	obj.Object["status"].(map[string]interface{})["conditions"] = []interface{}{
		map[string]interface{}{"type": "Ready", "status": "True"},
	}
	assert.True(t, parseStatus(obj).Ready)
	assert.Equal(t, &output.KServeStatus{}, parseStatus(&unstructured.Unstructured{Object: map[string]interface{}{}}))
}
