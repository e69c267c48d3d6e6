package openshift

import (
	"context"

	"github.com/pkg/errors"
	"github.com/thoth-station/thoth-ocp/pkg/log"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

const (
	templateAPIPath = "/apis/template.openshift.io/v1"
	buildAPIPath    = "/apis/build.openshift.io/v1"
)

// ProcessTemplate expands the template server side (oc process) in
// the given namespace and returns the processed template.
func (c *Client) ProcessTemplate(ctx context.Context, namespace string, template *unstructured.Unstructured) (processed *unstructured.Unstructured, err error) {
	defer func() { observe("process_template", err) }()

	body, err := template.MarshalJSON()
	if err != nil {
		return nil, errors.Wrapf(err, "encode template %s", template.GetName())
	}

	resp, err := c.raw.Post().
		AbsPath(templateAPIPath, "namespaces", namespace, "processedtemplates").
		SetHeader("Content-Type", "application/json").
		Body(body).
		DoRaw(ctx)
	if err != nil {
		log.Error("failed to process template", "template", template.GetName(), "namespace", namespace, "response", string(resp), "error", err)
		return nil, errors.Wrapf(err, "process template %s in namespace %s", template.GetName(), namespace)
	}

	log.Debug("openshift master response for template processing", "template", template.GetName(), "namespace", namespace)

	processed = &unstructured.Unstructured{}
	if err := processed.UnmarshalJSON(resp); err != nil {
		return nil, errors.Wrap(err, "decode processed template")
	}

	return processed, nil
}

// GetBuild returns the build object from the given namespace.
func (c *Client) GetBuild(ctx context.Context, buildID, namespace string) (build *unstructured.Unstructured, err error) {
	defer func() { observe("get_build", err) }()

	return c.getBuildObject(ctx, namespace, "builds", buildID, "build")
}

// GetBuildConfig returns the build config object from the given namespace.
func (c *Client) GetBuildConfig(ctx context.Context, buildConfigID, namespace string) (buildConfig *unstructured.Unstructured, err error) {
	defer func() { observe("get_buildconfig", err) }()

	return c.getBuildObject(ctx, namespace, "buildconfigs", buildConfigID, "buildconfig")
}

func (c *Client) getBuildObject(ctx context.Context, namespace, resource, name, kind string) (*unstructured.Unstructured, error) {
	resp, err := c.raw.Get().
		AbsPath(buildAPIPath, "namespaces", namespace, resource, name).
		DoRaw(ctx)
	if err != nil {
		if err = notFound(err, "%s with id %s was not found in namespace %s", kind, name, namespace); errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "get %s %s in namespace %s", kind, name, namespace)
	}

	log.Debug("openshift master response for "+kind, "name", name, "namespace", namespace)

	obj := &unstructured.Unstructured{}
	if err := obj.UnmarshalJSON(resp); err != nil {
		return nil, errors.Wrapf(err, "decode %s %s", kind, name)
	}

	return obj, nil
}

// GetBuildLog returns the log of a build in the given namespace.
func (c *Client) GetBuildLog(ctx context.Context, buildID, namespace string) (buildLog string, err error) {
	defer func() { observe("get_build_log", err) }()

	resp, err := c.raw.Get().
		AbsPath(buildAPIPath, "namespaces", namespace, "builds", buildID, "log").
		DoRaw(ctx)
	if err != nil {
		if err = notFound(err, "build with id %s was not found in namespace %s", buildID, namespace); errors.Is(err, ErrNotFound) {
			return "", err
		}
		return "", errors.Wrapf(err, "get log of build %s in namespace %s", buildID, namespace)
	}

	return string(resp), nil
}
