package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// DatasetMissing indicates the cocktail dataset file was not found
	DatasetMissing ErrorCode = "DATASET_MISSING"
	// DatasetInvalid indicates the dataset failed to parse or validate
	DatasetInvalid ErrorCode = "DATASET_INVALID"
	// RecipeNotFound indicates no recipe matched the requested name
	RecipeNotFound ErrorCode = "RECIPE_NOT_FOUND"
	// StyleUnknown indicates an unrecognized generation style
	StyleUnknown ErrorCode = "STYLE_UNKNOWN"
	// CardRenderFailed indicates the recipe card could not be drawn
	CardRenderFailed ErrorCode = "CARD_RENDER_FAILED"
	// CardWriteFailed indicates the rendered card could not be saved
	CardWriteFailed ErrorCode = "CARD_WRITE_FAILED"
	// BundleFailed indicates a card bundle could not be assembled
	BundleFailed ErrorCode = "BUNDLE_FAILED"
	// StoreUnavailable indicates the local state database is unusable
	StoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	// InventoryInvalid indicates the bar inventory file failed to parse
	InventoryInvalid ErrorCode = "INVENTORY_INVALID"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixActionType represents the type of fix action
type FixActionType string

const (
	// RunCommand suggests running a command
	RunCommand FixActionType = "run-command"
	// OpenDocs suggests opening documentation
	OpenDocs FixActionType = "open-docs"
	// EditFile suggests editing a local file
	EditFile FixActionType = "edit-file"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Type        FixActionType `json:"type"`
	Command     string        `json:"command,omitempty"`
	Safe        bool          `json:"safe,omitempty"`
	Description string        `json:"description,omitempty"`
	URL         string        `json:"url,omitempty"`
	Path        string        `json:"path,omitempty"`
}

// MixError represents a MixMaster error with code, message, and suggestions
type MixError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// NewMixError creates a new MixError
func NewMixError(code ErrorCode, message string, cause error, suggestedFixes []FixAction) *MixError {
	return &MixError{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: suggestedFixes,
	}
}

// Error implements the error interface
func (e *MixError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *MixError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *MixError) WithDetails(details interface{}) *MixError {
	e.Details = details
	return e
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	DatasetMissing: {
		{
			Type:        RunCommand,
			Command:     "mixmaster status",
			Safe:        true,
			Description: "Show where the dataset is expected and what was found",
		},
	},
	DatasetInvalid: {
		{
			Type:        RunCommand,
			Command:     "mixmaster status",
			Safe:        true,
			Description: "Validate the dataset and report the first bad record",
		},
	},
	RecipeNotFound: {
		{
			Type:        RunCommand,
			Command:     "mixmaster browse",
			Safe:        true,
			Description: "List every recipe name in the dataset",
		},
	},
	StyleUnknown: {
		{
			Type:        RunCommand,
			Command:     "mixmaster generate --help",
			Safe:        true,
			Description: "List the supported generation styles",
		},
	},
	StoreUnavailable: {
		{
			Type:        RunCommand,
			Command:     "mixmaster status",
			Safe:        true,
			Description: "Check the state directory and database health",
		},
	},
	InventoryInvalid: {
		{
			Type:        EditFile,
			Path:        "bar.toml",
			Description: "Fix the inventory file syntax",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}
