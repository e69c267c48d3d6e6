package openshift

import (
	"context"
	"fmt"
)

const packageExtractSelector = "template=package-extract"

// PackageExtractRequest describes a package-extract analyzer run
// over a container image.
type PackageExtractRequest struct {
	Image            string `json:"image"`
	Output           string `json:"output"`
	RegistryUser     string `json:"registry_user,omitempty"`
	RegistryPassword string `json:"registry_password,omitempty"`
	VerifyTLS        bool   `json:"verify_tls"`
	Debug            bool   `json:"debug"`
}

// RunPackageExtract runs the package-extract analyzer to extract
// information from the provided image and returns the pod name.
func (c *Client) RunPackageExtract(ctx context.Context, req PackageExtractRequest) (string, error) {
	if c.cfg.MiddletierNamespace == "" {
		return "", configurationError("running package-extract requires middletier namespace to be specified")
	}

	if c.cfg.InfraNamespace == "" {
		return "", configurationError("infra namespace is required to gather package-extract template when running it")
	}

	params := Parameters{
		{Name: "THOTH_LOG_PACKAGE_EXTRACT", Value: logLevel(req.Debug)},
		{Name: "THOTH_ANALYZED_IMAGE", Value: req.Image},
		{Name: "THOTH_ANALYZER_NO_TLS_VERIFY", Value: flag(!req.VerifyTLS)},
		{Name: "THOTH_ANALYZER_OUTPUT", Value: req.Output},
	}

	if req.RegistryUser != "" && req.RegistryPassword != "" {
		params = append(params, Parameter{
			Name:  "THOTH_REGISTRY_CREDENTIALS",
			Value: fmt.Sprintf("%s:%s", req.RegistryUser, req.RegistryPassword),
		})
	}

	objects, err := c.instantiate(ctx, packageExtractSelector, c.cfg.MiddletierNamespace, params)
	if err != nil {
		return "", err
	}

	return c.createWorkload(ctx, "package-extract", c.cfg.MiddletierNamespace, objects[0])
}
