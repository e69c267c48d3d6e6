package cluster

// LogResponse carries the log of a pod, job or build.
type LogResponse struct {
	ID        string `json:"id"`
	Namespace string `json:"namespace"`
	Log       string `json:"log"`
}

// ScheduleResponse is returned for workloads handed over to the
// workload operator.
type ScheduleResponse struct {
	ID string `json:"analysis_id"`
}

// SolversResponse lists the solvers available in the installation.
type SolversResponse struct {
	Solvers []string `json:"solvers"`
}

// InspectionResponse is returned once an inspection build is set up
// and its job scheduled.
type InspectionResponse struct {
	ID          string `json:"inspection_id"`
	ImageStream string `json:"imagestream"`
}
