package openshift

import (
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// State is the lifecycle state reported for a pod's container.
type State string

const (
	// Scheduling is reported while the pod has no container status yet.
	Scheduling State = "scheduling"
	Waiting    State = "waiting"
	Running    State = "running"
	Terminated State = "terminated"
)

const (
	// TimeoutKilled replaces the generic "Error" reason of containers
	// killed with SIGKILL (exit code 137). OpenShift sets a distinct
	// reason such as OOMKilled for other kills with the same code.
	TimeoutKilled = "TimeoutKilled"

	killedExitCode = 137
	errorReason    = "Error"
	dockerIDPrefix = "docker://"
)

// StatusReport is the user facing view of a container state. Only
// State is always set; absent fields are encoded as null.
type StatusReport struct {
	State      State        `json:"state"`
	ExitCode   *int32       `json:"exit_code"`
	Reason     *string      `json:"reason"`
	StartedAt  *metav1.Time `json:"started_at"`
	FinishedAt *metav1.Time `json:"finished_at"`
	Container  *string      `json:"container"`
}

// NewStatusReport flattens a container state into a StatusReport.
// A state with no (or more than one) of waiting, running and
// terminated set is reported as Scheduling.
func NewStatusReport(state corev1.ContainerState) StatusReport {
	report := StatusReport{State: Scheduling}

	set := 0
	for _, present := range []bool{state.Waiting != nil, state.Running != nil, state.Terminated != nil} {
		if present {
			set++
		}
	}

	if set != 1 {
		return report
	}

	switch {
	case state.Waiting != nil:
		report.State = Waiting
		report.Reason = optional(firstNonEmpty(state.Waiting.Reason, state.Waiting.Message))
	case state.Running != nil:
		report.State = Running
		report.StartedAt = optionalTime(state.Running.StartedAt)
	case state.Terminated != nil:
		t := state.Terminated.DeepCopy()
		translateTimeoutKill(t)

		exitCode := t.ExitCode
		report.State = Terminated
		report.ExitCode = &exitCode
		report.Reason = optional(firstNonEmpty(t.Reason, t.Message))
		report.StartedAt = optionalTime(t.StartedAt)
		report.FinishedAt = optionalTime(t.FinishedAt)
		report.Container = optional(strings.TrimPrefix(t.ContainerID, dockerIDPrefix))
	}

	return report
}

// translateTimeoutKill recodes kills of liveness probes and active
// deadlines so they are reported to the user as timeouts.
func translateTimeoutKill(t *corev1.ContainerStateTerminated) {
	if t != nil && t.ExitCode == killedExitCode && t.Reason == errorReason {
		t.Reason = TimeoutKilled
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalTime(t metav1.Time) *metav1.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
