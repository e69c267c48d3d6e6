package openshift

import (
	"context"
	"strings"

	"github.com/thoth-station/thoth-ocp/pkg/log"
)

const solverSelector = "template=solver"

// SolverRequest describes a solver run.
type SolverRequest struct {
	Packages         string   `json:"packages"`
	Output           string   `json:"output"`
	Indexes          []string `json:"indexes,omitempty"`
	Debug            bool     `json:"debug"`
	SubgraphCheckAPI string   `json:"subgraph_check_api,omitempty"`
	Transitive       bool     `json:"transitive"`
	// Solver restricts the run to a single solver; all solvers
	// provided by the template run when empty.
	Solver string `json:"solver,omitempty"`
}

// GetSolverNames returns the names of solvers available in the
// installation.
func (c *Client) GetSolverNames(ctx context.Context) ([]string, error) {
	if c.cfg.InfraNamespace == "" {
		return nil, configurationError("infra namespace is required in order to list solvers")
	}

	template, err := c.GetTemplate(ctx, solverSelector)
	if err != nil {
		return nil, err
	}

	objects, err := templateObjects(template)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(objects))
	for _, obj := range objects {
		names = append(names, obj.GetLabels()["component"])
	}

	return names, nil
}

// RunSolver runs all solvers (or the requested one) to solve the given
// requirements. The result maps solver names to created pod names.
func (c *Client) RunSolver(ctx context.Context, req SolverRequest) (map[string]string, error) {
	if c.cfg.MiddletierNamespace == "" {
		return nil, configurationError("solver requires middletier namespace to be specified")
	}

	if c.cfg.InfraNamespace == "" {
		return nil, configurationError("infra namespace is required to gather solver template when running solver")
	}

	objects, err := c.instantiate(ctx, solverSelector, c.cfg.MiddletierNamespace, Parameters{
		{Name: "THOTH_SOLVER_NO_TRANSITIVE", Value: flag(!req.Transitive)},
		{Name: "THOTH_SOLVER_PACKAGES", Value: escapeNewlines(req.Packages)},
		{Name: "THOTH_SOLVER_INDEXES", Value: strings.Join(req.Indexes, ",")},
		{Name: "THOTH_LOG_SOLVER", Value: logLevel(req.Debug)},
		{Name: "THOTH_SOLVER_OUTPUT", Value: req.Output},
		{Name: "THOTH_SOLVER_SUBGRAPH_CHECK_API", Value: req.SubgraphCheckAPI},
	})
	if err != nil {
		return nil, err
	}

	solvers := make(map[string]string)
	for _, obj := range objects {
		name := obj.GetLabels()["component"]
		if req.Solver != "" && req.Solver != name {
			log.Debug("skipping solver", "solver", name, "requested", req.Solver)
			continue
		}

		log.Debug("starting solver", "solver", name)
		pod, err := c.createWorkload(ctx, "solver", c.cfg.MiddletierNamespace, obj)
		if err != nil {
			return nil, err
		}
		solvers[name] = pod
	}

	return solvers, nil
}

func escapeNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "\\n")
}

func logLevel(debug bool) string {
	if debug {
		return "DEBUG"
	}
	return "INFO"
}
