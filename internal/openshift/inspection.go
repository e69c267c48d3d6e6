package openshift

import (
	"context"
)

// InspectionRequest carries the template parameters of an Amun
// inspection build and job.
type InspectionRequest struct {
	Parameters map[string]string `json:"parameters"`
	// UseHWTemplate selects the template variants that pin the
	// inspection to dedicated hardware.
	UseHWTemplate bool `json:"use_hw_template"`
}

func (r InspectionRequest) selector(base string) string {
	if r.UseHWTemplate {
		return "template=" + base + "-with-cpu"
	}
	return "template=" + base
}

func (c *Client) requireInspectionNamespaces(what string) error {
	if c.cfg.InfraNamespace == "" {
		return configurationError("infra namespace is required in order to create inspection %s", what)
	}

	if c.cfg.AmunInspectionNamespace == "" {
		return configurationError("unable to create inspection %s without Amun inspection namespace being set", what)
	}

	return nil
}

// CreateInspectionImageStream creates the image stream an Amun
// inspection pushes its image to and returns its name.
func (c *Client) CreateInspectionImageStream(ctx context.Context, inspectionID string) (string, error) {
	if err := c.requireInspectionNamespaces("imagestream"); err != nil {
		return "", err
	}

	objects, err := c.instantiate(ctx, "template=amun-inspect-imagestream", c.cfg.InfraNamespace, Parameters{
		{Name: "AMUN_INSPECTION_ID", Value: inspectionID},
	})
	if err != nil {
		return "", err
	}

	return c.createWorkload(ctx, "amun-inspect-imagestream", c.cfg.AmunInspectionNamespace, objects[0])
}

// CreateInspectionBuildConfig creates the build config of an Amun
// inspection.
func (c *Client) CreateInspectionBuildConfig(ctx context.Context, req InspectionRequest) error {
	if err := c.requireInspectionNamespaces("buildconfig"); err != nil {
		return err
	}

	objects, err := c.instantiate(ctx, req.selector("amun-inspect-buildconfig"), c.cfg.AmunInspectionNamespace, ParametersFromMap(req.Parameters))
	if err != nil {
		return err
	}

	_, err = c.createWorkload(ctx, "amun-inspect-buildconfig", c.cfg.AmunInspectionNamespace, objects[0])
	return err
}

// RunInspectionJob creates the job that runs an Amun inspection.
func (c *Client) RunInspectionJob(ctx context.Context, req InspectionRequest) error {
	if err := c.requireInspectionNamespaces("job"); err != nil {
		return err
	}

	objects, err := c.instantiate(ctx, req.selector("amun-inspect-job"), c.cfg.AmunInspectionNamespace, ParametersFromMap(req.Parameters))
	if err != nil {
		return err
	}

	_, err = c.createWorkload(ctx, "amun-inspect-job", c.cfg.AmunInspectionNamespace, objects[0])
	return err
}

// ScheduleInspectionJob schedules an inspection job; the job is created
// by the workload operator once resources are available.
func (c *Client) ScheduleInspectionJob(ctx context.Context, inspectionID string, req InspectionRequest) (string, error) {
	if c.cfg.AmunInspectionNamespace == "" {
		return "", configurationError("unable to schedule inspection job without Amun inspection namespace being set")
	}

	return c.scheduleJob(ctx, MethodRunInspectionJob, req, inspectionID, c.cfg.AmunInspectionNamespace)
}
