package openshift

import (
	"context"
	"strings"
)

// ProvenanceCheckerRequest describes a provenance checker run.
type ProvenanceCheckerRequest struct {
	ApplicationStack   ApplicationStack `json:"application_stack"`
	Output             string           `json:"output"`
	WhitelistedSources []string         `json:"whitelisted_sources,omitempty"`
	Debug              bool             `json:"debug"`
	JobID              string           `json:"job_id,omitempty"`
}

// ScheduleProvenanceChecker schedules a provenance checker run and
// returns its job id.
func (c *Client) ScheduleProvenanceChecker(ctx context.Context, req ProvenanceCheckerRequest) (string, error) {
	if c.cfg.BackendNamespace == "" {
		return "", configurationError("unable to schedule provenance checker without backend namespace being set")
	}

	req.JobID = firstNonEmpty(req.JobID, GenerateID("provenance-checker"))
	return c.scheduleJob(ctx, MethodRunProvenanceChecker, req, req.JobID, c.cfg.BackendNamespace)
}

// RunProvenanceChecker runs provenance checks on the provided user
// input and returns the name of the created pod.
func (c *Client) RunProvenanceChecker(ctx context.Context, req ProvenanceCheckerRequest) (string, error) {
	if c.cfg.BackendNamespace == "" {
		return "", configurationError("running provenance checks requires backend namespace configuration")
	}

	if c.cfg.InfraNamespace == "" {
		return "", configurationError("infra namespace is required to gather provenance template when running it")
	}

	objects, err := c.instantiate(ctx, "template=provenance-checker", c.cfg.BackendNamespace, Parameters{
		{Name: "THOTH_ADVISER_REQUIREMENTS", Value: escapeNewlines(req.ApplicationStack.Requirements)},
		{Name: "THOTH_ADVISER_REQUIREMENTS_LOCKED", Value: escapeNewlines(req.ApplicationStack.RequirementsLock)},
		{Name: "THOTH_ADVISER_OUTPUT", Value: req.Output},
		{Name: "THOTH_WHITELISTED_SOURCES", Value: strings.Join(req.WhitelistedSources, ",")},
		{Name: "THOTH_LOG_ADVISER", Value: logLevel(req.Debug)},
		{Name: "THOTH_PROVENANCE_CHECKER_JOB_ID", Value: firstNonEmpty(req.JobID, GenerateID("provenance-checker"))},
	})
	if err != nil {
		return "", err
	}

	return c.createWorkload(ctx, "provenance-checker", c.cfg.BackendNamespace, objects[0])
}
