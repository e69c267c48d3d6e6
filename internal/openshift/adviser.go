package openshift

import (
	"context"

	"github.com/thoth-station/thoth-ocp/pkg/jsonutil"
)

const defaultRequirementsFormat = "pipenv"

// ApplicationStack is the user's application stack as submitted to
// the adviser or the provenance checker.
type ApplicationStack struct {
	Requirements       string `json:"requirements"`
	RequirementsLock   string `json:"requirements_lock,omitempty"`
	RequirementsFormat string `json:"requirements_format,omitempty"`
}

// AdviserRequest describes an adviser run.
type AdviserRequest struct {
	ApplicationStack   ApplicationStack       `json:"application_stack"`
	Output             string                 `json:"output"`
	RecommendationType string                 `json:"recommendation_type"`
	Count              int                    `json:"count,omitempty"`
	Limit              int                    `json:"limit,omitempty"`
	RuntimeEnvironment map[string]interface{} `json:"runtime_environment,omitempty"`
	Debug              bool                   `json:"debug"`
	JobID              string                 `json:"job_id,omitempty"`
}

// ScheduleAdviser schedules an adviser run and returns its job id.
func (c *Client) ScheduleAdviser(ctx context.Context, req AdviserRequest) (string, error) {
	if c.cfg.BackendNamespace == "" {
		return "", configurationError("unable to schedule adviser without backend namespace being set")
	}

	req.JobID = firstNonEmpty(req.JobID, GenerateID("adviser"))
	return c.scheduleJob(ctx, MethodRunAdviser, req, req.JobID, c.cfg.BackendNamespace)
}

// RunAdviser runs the adviser on the provided user input and returns
// the name of the created pod.
func (c *Client) RunAdviser(ctx context.Context, req AdviserRequest) (string, error) {
	if c.cfg.BackendNamespace == "" {
		return "", configurationError("running adviser requires backend namespace configuration")
	}

	if c.cfg.InfraNamespace == "" {
		return "", configurationError("infra namespace is required to gather adviser template when running it")
	}

	var runtimeEnvironment string
	if len(req.RuntimeEnvironment) > 0 {
		var err error
		if runtimeEnvironment, err = jsonutil.MarshalString(req.RuntimeEnvironment); err != nil {
			return "", err
		}
	}

	params := Parameters{
		{Name: "THOTH_ADVISER_REQUIREMENTS", Value: escapeNewlines(req.ApplicationStack.Requirements)},
		{Name: "THOTH_ADVISER_REQUIREMENTS_LOCKED", Value: escapeNewlines(req.ApplicationStack.RequirementsLock)},
		{Name: "THOTH_ADVISER_REQUIREMENTS_FORMAT", Value: firstNonEmpty(req.ApplicationStack.RequirementsFormat, defaultRequirementsFormat)},
		{Name: "THOTH_ADVISER_RECOMMENDATION_TYPE", Value: req.RecommendationType},
		{Name: "THOTH_ADVISER_RUNTIME_ENVIRONMENT", Value: runtimeEnvironment},
		{Name: "THOTH_ADVISER_OUTPUT", Value: req.Output},
		{Name: "THOTH_LOG_ADVISER", Value: logLevel(req.Debug)},
		{Name: "THOTH_ADVISER_JOB_ID", Value: firstNonEmpty(req.JobID, GenerateID("adviser"))},
	}

	if req.Count > 0 {
		params = append(params, Parameter{Name: "THOTH_ADVISER_COUNT", Value: req.Count})
	}

	if req.Limit > 0 {
		params = append(params, Parameter{Name: "THOTH_ADVISER_LIMIT", Value: req.Limit})
	}

	objects, err := c.instantiate(ctx, "template=adviser", c.cfg.BackendNamespace, params)
	if err != nil {
		return "", err
	}

	return c.createWorkload(ctx, "adviser", c.cfg.BackendNamespace, objects[0])
}
