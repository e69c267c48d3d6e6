package openshift

import (
	"context"

	"github.com/pkg/errors"
	"github.com/thoth-station/thoth-ocp/internal/metrics"
	"github.com/thoth-station/thoth-ocp/pkg/log"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// TemplateResource is the resource serving OpenShift templates.
var TemplateResource = schema.GroupVersionResource{
	Group:    "template.openshift.io",
	Version:  "v1",
	Resource: "templates",
}

// GetTemplate returns the single template in the infra namespace
// matching the label selector.
func (c *Client) GetTemplate(ctx context.Context, labelSelector string) (template *unstructured.Unstructured, err error) {
	if c.cfg.InfraNamespace == "" {
		return nil, configurationError("infra namespace is required to gather templates (%s)", labelSelector)
	}

	defer func() { observe("get_template", err) }()

	list, err := c.dynamic.Resource(TemplateResource).
		Namespace(c.cfg.InfraNamespace).
		List(ctx, metav1.ListOptions{LabelSelector: labelSelector})
	if err != nil {
		return nil, errors.Wrapf(err, "list templates matching %s", labelSelector)
	}

	log.Debug("openshift response for getting template", "selector", labelSelector, "count", len(list.Items))

	if len(list.Items) != 1 {
		return nil, errors.Wrapf(
			ErrTemplateCount,
			"application misconfiguration - number of templates matching %s available in the infra namespace %q is %d, should be 1",
			labelSelector, c.cfg.InfraNamespace, len(list.Items),
		)
	}

	return &list.Items[0], nil
}

// CreateObject creates the object in the namespace. The resource is
// resolved from the object's apiVersion and kind.
func (c *Client) CreateObject(ctx context.Context, namespace string, obj *unstructured.Unstructured) (created *unstructured.Unstructured, err error) {
	defer func() { observe("create_object", err) }()

	gvk := obj.GroupVersionKind()
	mapping, err := c.mapper.RESTMapping(gvk.GroupKind(), gvk.Version)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve resource for %s", gvk)
	}

	created, err = c.dynamic.Resource(mapping.Resource).
		Namespace(namespace).
		Create(ctx, obj, metav1.CreateOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "create %s in namespace %s", gvk.Kind, namespace)
	}

	log.Debug("openshift response for creating object", "kind", gvk.Kind, "name", created.GetName(), "namespace", namespace)

	return created, nil
}

// CreateConfigMap creates a ConfigMap in the given namespace and
// returns its name.
func (c *Client) CreateConfigMap(ctx context.Context, name, namespace string, labels, data map[string]string) (_ string, err error) {
	defer func() { observe("create_configmap", err) }()

	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
			Labels:    labels,
		},
		Data: data,
	}

	if _, err := c.kube.CoreV1().ConfigMaps(namespace).Create(ctx, cm, metav1.CreateOptions{}); err != nil {
		return "", errors.Wrapf(err, "create configmap %s in namespace %s", name, namespace)
	}

	return name, nil
}

// DeleteConfigMap deletes the named ConfigMap from the namespace.
func (c *Client) DeleteConfigMap(ctx context.Context, name, namespace string) (err error) {
	defer func() { observe("delete_configmap", err) }()

	if err := c.kube.CoreV1().ConfigMaps(namespace).Delete(ctx, name, metav1.DeleteOptions{}); err != nil {
		if err = notFound(err, "configmap %s was not found in namespace %s", name, namespace); errors.Is(err, ErrNotFound) {
			return err
		}
		return errors.Wrapf(err, "delete configmap %s in namespace %s", name, namespace)
	}

	return nil
}

// GetJobs returns all Jobs in the namespace selected by the label.
func (c *Client) GetJobs(ctx context.Context, labelSelector, namespace string) (jobs *batchv1.JobList, err error) {
	defer func() { observe("get_jobs", err) }()

	jobs, err = c.kube.BatchV1().Jobs(namespace).List(ctx, metav1.ListOptions{LabelSelector: labelSelector})
	if err != nil {
		if err = notFound(err, "no jobs with label %s could be found", labelSelector); errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "list jobs with label %s", labelSelector)
	}

	log.Debug("openshift response for listing jobs", "selector", labelSelector, "count", len(jobs.Items))

	return jobs, nil
}

// instantiate fetches the template selected by label, assigns the
// parameters and processes it in the given namespace.
func (c *Client) instantiate(ctx context.Context, labelSelector, namespace string, params Parameters) ([]*unstructured.Unstructured, error) {
	template, err := c.GetTemplate(ctx, labelSelector)
	if err != nil {
		return nil, err
	}

	if err := SetTemplateParameters(template, params); err != nil {
		return nil, err
	}

	processed, err := c.ProcessTemplate(ctx, namespace, template)
	if err != nil {
		return nil, err
	}

	objects, err := templateObjects(processed)
	if err != nil {
		return nil, err
	}

	if len(objects) == 0 {
		return nil, errors.Errorf("processed template %s yields no objects", labelSelector)
	}

	return objects, nil
}

// createWorkload creates an object of a processed template and
// returns the name assigned to it.
func (c *Client) createWorkload(ctx context.Context, workload, namespace string, obj *unstructured.Unstructured) (string, error) {
	created, err := c.CreateObject(ctx, namespace, obj)
	if err != nil {
		return "", err
	}

	metrics.WorkloadsCreatedTotal.WithLabelValues(workload).Inc()
	log.Info("created workload", "workload", workload, "name", created.GetName(), "namespace", namespace)

	return created.GetName(), nil
}
