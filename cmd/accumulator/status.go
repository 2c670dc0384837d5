// status.go - store health check for the accumulator CLI
package main

import (
	"os"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/vaultmesh/paccum/internal/core"
)

// HealthStatus is the health of a single checked component.
type HealthStatus string

const (
	Healthy   HealthStatus = "healthy"
	Degraded  HealthStatus = "degraded"
	Unhealthy HealthStatus = "unhealthy"
)

// ComponentHealth is the result of checking a single on-disk artifact.
type ComponentHealth struct {
	Name    string
	Status  HealthStatus
	Message string
	Latency time.Duration
}

// SystemHealth aggregates every ComponentHealth into an overall verdict.
type SystemHealth struct {
	OverallStatus HealthStatus
	Components    []ComponentHealth
}

// CheckStoreHealth verifies that cfg's key, public key and accumulator files
// exist and parse, adapted from the teacher's HealthChecker into a one-shot
// check rather than a long-lived registry (the CLI is not a server with
// components to register over time).
func CheckStoreHealth(cfg *Config) *SystemHealth {
	checks := []struct {
		name  string
		check func() error
	}{
		{"secret_key", func() error { return checkFileParses(cfg.KeyPath, core.DeserializeSecretKey) }},
		{"public_key", func() error { return checkFileParses(cfg.PublicKeyPath, core.DeserializePublicKey) }},
		{"accumulator", func() error { return checkFileParses(cfg.AccumulatorPath, core.Deserialize) }},
	}

	components := make([]ComponentHealth, 0, len(checks))
	overall := Healthy
	for _, c := range checks {
		start := time.Now()
		err := c.check()
		latency := time.Since(start)

		status := Healthy
		message := "OK"
		if err != nil {
			if os.IsNotExist(err) {
				status = Degraded
				message = "not yet created"
			} else {
				status = Unhealthy
				message = err.Error()
			}
		}

		if status == Unhealthy {
			overall = Unhealthy
		} else if status == Degraded && overall == Healthy {
			overall = Degraded
		}

		components = append(components, ComponentHealth{
			Name:    c.name,
			Status:  status,
			Message: message,
			Latency: latency,
		})
	}

	return &SystemHealth{OverallStatus: overall, Components: components}
}

func checkFileParses[T any](path string, parse func([]byte) (T, error)) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = parse(b)
	return err
}

// RenderStoreHealth prints health as a table, grounded in the teacher's
// tablewriter-rendered CLI output.
func RenderStoreHealth(h *SystemHealth) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Component", "Status", "Message", "Latency")
	for _, c := range h.Components {
		table.Append([]string{c.Name, string(c.Status), c.Message, c.Latency.String()})
	}
	table.Render()
	os.Stdout.WriteString("overall: " + string(h.OverallStatus) + "\n")
}
