package bind

import (
	"github.com/labstack/echo/v4"
	"github.com/thoth-station/thoth-ocp/api/rest/controller/build"
	"github.com/thoth-station/thoth-ocp/api/rest/controller/job"
	"github.com/thoth-station/thoth-ocp/api/rest/controller/pod"
	"github.com/thoth-station/thoth-ocp/api/rest/controller/solver"
	"github.com/thoth-station/thoth-ocp/api/rest/controller/workload"
)

func All(g *echo.Group) {
	Namespaced(g.Group("/namespaces/:namespace"))
	Workloads(g)
}

func Namespaced(g *echo.Group) {
	// pods
	{
		g.GET("/pods/:id/status", pod.Status)
		g.GET("/pods/:id/log", pod.Log)
	}

	// jobs
	{
		g.GET("/jobs/:id/status", job.Status)
		g.GET("/jobs/:id/log", job.Log)
	}

	// builds
	{
		g.GET("/builds/:id", build.Get)
		g.GET("/builds/:id/log", build.Log)
	}
}

func Workloads(g *echo.Group) {
	g.GET("/solvers", solver.List)
	g.POST("/adviser", workload.Adviser)
	g.POST("/provenance-checker", workload.ProvenanceChecker)
	g.POST("/dependency-monkey", workload.DependencyMonkey)
	g.POST("/inspection", workload.Inspection)
}
