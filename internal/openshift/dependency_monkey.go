package openshift

import (
	"context"

	"github.com/thoth-station/thoth-ocp/pkg/jsonutil"
)

// DependencyMonkeyRequest describes a Dependency Monkey run.
type DependencyMonkeyRequest struct {
	Requirements string                 `json:"requirements"`
	Context      map[string]interface{} `json:"context"`
	StackOutput  string                 `json:"stack_output,omitempty"`
	ReportOutput string                 `json:"report_output,omitempty"`
	Seed         *int                   `json:"seed,omitempty"`
	DryRun       bool                   `json:"dry_run"`
	Decision     string                 `json:"decision,omitempty"`
	Count        *int                   `json:"count,omitempty"`
	Debug        bool                   `json:"debug"`
	JobID        string                 `json:"job_id,omitempty"`
}

// ScheduleDependencyMonkey schedules a Dependency Monkey run and
// returns its job id.
func (c *Client) ScheduleDependencyMonkey(ctx context.Context, req DependencyMonkeyRequest) (string, error) {
	if c.cfg.MiddletierNamespace == "" {
		return "", configurationError("unable to schedule dependency monkey without middletier namespace being set")
	}

	req.JobID = firstNonEmpty(req.JobID, GenerateID("dependency-monkey"))
	return c.scheduleJob(ctx, MethodRunDependencyMonkey, req, req.JobID, c.cfg.MiddletierNamespace)
}

// RunDependencyMonkey runs Dependency Monkey on the provided user input
// and returns the name of the created pod.
func (c *Client) RunDependencyMonkey(ctx context.Context, req DependencyMonkeyRequest) (string, error) {
	if c.cfg.MiddletierNamespace == "" {
		return "", configurationError("running dependency monkey requires middletier namespace configuration")
	}

	if c.cfg.InfraNamespace == "" {
		return "", configurationError("infra namespace is required to gather dependency monkey template when running it")
	}

	amunContext, err := jsonutil.MarshalMapString(req.Context)
	if err != nil {
		return "", err
	}

	params := Parameters{
		{Name: "THOTH_ADVISER_REQUIREMENTS", Value: escapeNewlines(req.Requirements)},
		{Name: "THOTH_AMUN_CONTEXT", Value: escapeNewlines(amunContext)},
		{Name: "THOTH_DEPENDENCY_MONKEY_STACK_OUTPUT", Value: firstNonEmpty(req.StackOutput, "-")},
		{Name: "THOTH_DEPENDENCY_MONKEY_REPORT_OUTPUT", Value: firstNonEmpty(req.ReportOutput, "-")},
		{Name: "THOTH_DEPENDENCY_MONKEY_DRY_RUN", Value: flag(req.DryRun)},
		{Name: "THOTH_LOG_ADVISER", Value: logLevel(req.Debug)},
		{Name: "THOTH_DEPENDENCY_MONKEY_JOB_ID", Value: firstNonEmpty(req.JobID, GenerateID("dependency-monkey"))},
	}

	if req.Decision != "" {
		params = append(params, Parameter{Name: "THOTH_DEPENDENCY_MONKEY_DECISION", Value: req.Decision})
	}

	if req.Seed != nil {
		params = append(params, Parameter{Name: "THOTH_DEPENDENCY_MONKEY_SEED", Value: req.Seed})
	}

	if req.Count != nil {
		params = append(params, Parameter{Name: "THOTH_DEPENDENCY_MONKEY_COUNT", Value: req.Count})
	}

	objects, err := c.instantiate(ctx, "template=dependency-monkey", c.cfg.MiddletierNamespace, params)
	if err != nil {
		return "", err
	}

	return c.createWorkload(ctx, "dependency-monkey", c.cfg.MiddletierNamespace, objects[0])
}
