package client

import (
	"fmt"
	"strings"
)

// ConnectivityError wraps a transport failure during a startup-phase call.
// Fatal: startup errors are never retried.
type ConnectivityError struct {
	Op  string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// DeploymentNotFoundError means the requested deployment is absent from
// the service's live deployments. It carries the discovered list so the
// user can pick a working one.
type DeploymentNotFoundError struct {
	Deployment string
	Available  []string
}

func (e *DeploymentNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("deployment %q not found, and the service reported no deployments", e.Deployment)
	}
	return fmt.Sprintf("deployment %q not found, available deployments:\n- %s",
		e.Deployment, strings.Join(e.Available, "\n- "))
}
