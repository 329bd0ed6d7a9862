package domain

import "errors"

// ============================================================================
// Not Found Errors
// ============================================================================

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrExperimentNotFound = errors.New("experiment not found")
	ErrModelNotFound      = errors.New("trained model not found")
)

// ============================================================================
// Validation Errors
// ============================================================================

var (
	ErrInvalidProjectName      = errors.New("project name is required")
	ErrInvalidExperimentName   = errors.New("experiment name is required")
	ErrInvalidExperimentStatus = errors.New("invalid experiment status")
	ErrInvalidModelName        = errors.New("model name is required")
)

// Business rule errors
var (
	ErrExperimentNotCompleted = errors.New("experiment is not completed")
)

// ============================================================================
// Deployment Errors
// ============================================================================

var (
	ErrDeploymentFailed = errors.New("model deployment failed")
)
