package domain

import "time"

// ExperimentStatus enumerates experiment lifecycle states.
type ExperimentStatus string

const (
	ExperimentPlanning  ExperimentStatus = "planning"
	ExperimentRunning   ExperimentStatus = "running"
	ExperimentCompleted ExperimentStatus = "completed"
	ExperimentPaused    ExperimentStatus = "paused"
)

// Metric is one tracked measurement within an experiment.
type Metric struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Target float64 `json:"target"`
	Unit   string  `json:"unit"`
}

// Experiment is a validation experiment shown on the experiments surface.
// The product currently ships demo data only; there is no create/update
// persistence path.
type Experiment struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Hypothesis  string           `json:"hypothesis"`
	Status      ExperimentStatus `json:"status"`
	StartDate   string           `json:"start_date"`
	EndDate     string           `json:"end_date,omitempty"`
	Metrics     []Metric         `json:"metrics"`
	CreatedAt   time.Time        `json:"created_at"`
}
