// Package errors provides structured error handling for the rules engine.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Stat errors
	CodeStatUnknownName      Code = "STAT_UNKNOWN_NAME"
	CodeStatUnknownArchetype Code = "STAT_UNKNOWN_ARCHETYPE"

	// Outcome errors
	CodeOutcomeInvalidRoll Code = "OUTCOME_INVALID_ROLL"

	// Effect errors
	CodeEffectInvalidProfile Code = "EFFECT_INVALID_PROFILE"

	// Catalog errors
	CodeCatalogActivityNotFound Code = "CATALOG_ACTIVITY_NOT_FOUND"
	CodeCatalogInvalidActivity  Code = "CATALOG_INVALID_ACTIVITY"
	CodeCatalogInvalidFilter    Code = "CATALOG_INVALID_FILTER"

	// Sleep orchestration errors
	CodeSleepPlayerNotFound   Code = "SLEEP_PLAYER_NOT_FOUND"
	CodeSleepInvalidBedtime   Code = "SLEEP_INVALID_BEDTIME"
	CodeSleepEvaluatorMissing Code = "SLEEP_EVALUATOR_MISSING"

	// Dice/mechanics errors
	CodeDiceMissing     Code = "DICE_MISSING"
	CodeDiceInvalidSpec Code = "DICE_INVALID_SPEC"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeStatUnknownName,
		CodeStatUnknownArchetype,
		CodeOutcomeInvalidRoll,
		CodeEffectInvalidProfile,
		CodeCatalogInvalidActivity,
		CodeCatalogInvalidFilter,
		CodeSleepInvalidBedtime,
		CodeDiceMissing,
		CodeDiceInvalidSpec:
		return codes.InvalidArgument

	// NotFound - missing records
	case CodeCatalogActivityNotFound,
		CodeSleepPlayerNotFound:
		return codes.NotFound

	// FailedPrecondition - collaborator wiring problems
	case CodeSleepEvaluatorMissing:
		return codes.FailedPrecondition

	default:
		return codes.Internal
	}
}
