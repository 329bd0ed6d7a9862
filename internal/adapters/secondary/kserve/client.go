package kserve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"ml-platform/internal/config"
	"ml-platform/internal/core/domain"
	output "ml-platform/internal/core/ports/output"
)

var inferenceServiceGVR = schema.GroupVersionResource{
	Group:    "serving.kserve.io",
	Version:  "v1beta1",
	Resource: "inferenceservices",
}

const (
	labelModelID      = "mlplatform.io/model-id"
	labelExperimentID = "mlplatform.io/experiment-id"
	labelVersion      = "mlplatform.io/model-version"
)

// KServe model formats keyed by the lower-cased algorithm label.
var algorithmFormats = map[string]string{
	"xgboost":             "xgboost",
	"lightgbm":            "lightgbm",
	"random forest":       "sklearn",
	"logistic regression": "sklearn",
	"svm":                 "sklearn",
	"catboost":            "catboost",
	"pytorch":             "pytorch",
	"tensorflow":          "tensorflow",
	"onnx":                "onnx",
}

type kserveClient struct {
	client     dynamic.Interface
	namespace  string
	storageURI string
}

// NewKServeClient creates a new KServe client adapter
func NewKServeClient(cfg *config.KubernetesConfig) (output.KServeClient, error) {
	var restCfg *rest.Config
	var err error

	if cfg.InCluster {
		restCfg, err = rest.InClusterConfig()
	} else if cfg.KubeConfigPath != "" {
		restCfg, err = clientcmd.BuildConfigFromFlags("", cfg.KubeConfigPath)
	} else {
		// Try default kubeconfig location
		home, _ := os.UserHomeDir()
		kubeconfig := filepath.Join(home, ".kube", "config")
		restCfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	}
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	client, err := dynamic.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	return NewKServeClientWithDynamic(client, cfg.DefaultNS, cfg.StorageURIPrefix), nil
}

// NewKServeClientWithDynamic wraps an existing dynamic client.
func NewKServeClientWithDynamic(client dynamic.Interface, namespace, storageURIPrefix string) output.KServeClient {
	if namespace == "" {
		namespace = "model-serving"
	}
	return &kserveClient{
		client:     client,
		namespace:  namespace,
		storageURI: strings.TrimRight(storageURIPrefix, "/"),
	}
}

func (c *kserveClient) Deploy(
	ctx context.Context,
	model *domain.TrainedModel,
	experiment *domain.Experiment,
) (*output.KServeDeployment, error) {
	obj := c.buildInferenceServiceCR(model, experiment)

	created, err := c.client.Resource(inferenceServiceGVR).
		Namespace(c.namespace).
		Create(ctx, obj, metav1.CreateOptions{})
	if err != nil {
		return nil, fmt.Errorf("create kserve inferenceservice: %w", err)
	}

	return &output.KServeDeployment{
		Name:       created.GetName(),
		ExternalID: string(created.GetUID()),
	}, nil
}

func (c *kserveClient) Undeploy(ctx context.Context, model *domain.TrainedModel) error {
	err := c.client.Resource(inferenceServiceGVR).
		Namespace(c.namespace).
		Delete(ctx, model.Slug(), metav1.DeleteOptions{})
	if err != nil {
		return fmt.Errorf("delete kserve inferenceservice: %w", err)
	}

	return nil
}

func (c *kserveClient) GetStatus(ctx context.Context, model *domain.TrainedModel) (*output.KServeStatus, error) {
	obj, err := c.client.Resource(inferenceServiceGVR).
		Namespace(c.namespace).
		Get(ctx, model.Slug(), metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get kserve inferenceservice: %w", err)
	}

	return parseStatus(obj), nil
}

func (c *kserveClient) buildInferenceServiceCR(
	model *domain.TrainedModel,
	experiment *domain.Experiment,
) *unstructured.Unstructured {
	labels := map[string]interface{}{
		labelModelID:      model.ID.String(),
		labelExperimentID: model.ExperimentID.String(),
		labelVersion:      model.Version,
	}

	modelSpec := map[string]interface{}{
		"storageUri": fmt.Sprintf("%s/%s/%s", c.storageURI, model.Slug(), model.Version),
	}
	if experiment != nil {
		if format, ok := algorithmFormats[strings.ToLower(experiment.Algorithm)]; ok {
			modelSpec["modelFormat"] = map[string]interface{}{
				"name": format,
			}
		}
	}

	return &unstructured.Unstructured{
		Object: map[string]interface{}{
			"apiVersion": "serving.kserve.io/v1beta1",
			"kind":       "InferenceService",
			"metadata": map[string]interface{}{
				"name":      model.Slug(),
				"namespace": c.namespace,
				"labels":    labels,
			},
			"spec": map[string]interface{}{
				"predictor": map[string]interface{}{
					"model": modelSpec,
				},
			},
		},
	}
}

func parseStatus(obj *unstructured.Unstructured) *output.KServeStatus {
	status := &output.KServeStatus{}

	statusMap, found, _ := unstructured.NestedMap(obj.Object, "status")
	if !found {
		return status
	}

	status.URL, _, _ = unstructured.NestedString(statusMap, "url")

	conditions, found, _ := unstructured.NestedSlice(statusMap, "conditions")
	if found {
		for _, cond := range conditions {
			condMap, ok := cond.(map[string]interface{})
			if !ok {
				continue
			}
			condType, _ := condMap["type"].(string)
			condStatus, _ := condMap["status"].(string)

			if condType == "Ready" {
				status.Ready = condStatus == "True"
				if condStatus == "False" {
					if msg, ok := condMap["message"].(string); ok {
						status.Error = msg
					}
				}
				break
			}
		}
	}

	return status
}

// Ensure interface compliance
var _ output.KServeClient = (*kserveClient)(nil)
