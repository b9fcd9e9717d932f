// Package dice provides seed-deterministic dice rolling for the rules engine.
//
// All rolling is deterministic with respect to the provided seed: given the
// same seed and the same specs (including order), the same results are
// produced. Callers that want nondeterministic play should draw a seed from
// the random package and record it alongside the result for replay.
package dice

import (
	"math/rand"

	apperrors "github.com/louisbranch/everyday.space/internal/platform/errors"
)

// PercentileSides is the die size used by the activity resolution system.
const PercentileSides = 100

var (
	// ErrMissingDice indicates a roll request had no dice specified.
	ErrMissingDice = apperrors.New(apperrors.CodeDiceMissing, "at least one die must be provided")
	// ErrInvalidSpec indicates a die specification has invalid fields.
	ErrInvalidSpec = apperrors.New(apperrors.CodeDiceInvalidSpec, "dice must have positive sides and count")
)

// Spec describes a die to roll and how many times to roll it.
type Spec struct {
	Sides int
	Count int
}

// Roll captures the results for a single dice spec.
type Roll struct {
	Sides   int
	Results []int
	Total   int
}

// Request describes a request to roll one or more dice.
type Request struct {
	Dice []Spec
	Seed int64
}

// Result captures the results from rolling multiple dice.
type Result struct {
	Rolls []Roll
	Total int
}

// RollDice rolls dice based on the provided request.
//
// Specs are processed in slice order and the resulting Roll entries appear
// in the same order. Result.Total is the sum of every die rolled across the
// entire request.
func RollDice(request Request) (Result, error) {
	rng := rand.New(rand.NewSource(request.Seed))
	return RollWithRng(rng, request.Dice)
}

// RollWithRng rolls dice using a provided random source.
//
// This is the seam used by samplers that need to share one random stream
// across several draws within a single resolution.
func RollWithRng(rng *rand.Rand, specs []Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0

	for _, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 {
			return Result{}, ErrInvalidSpec
		}

		results := make([]int, spec.Count)
		rollTotal := 0
		for i := 0; i < spec.Count; i++ {
			value := rollDie(rng, spec.Sides)
			results[i] = value
			rollTotal += value
		}

		rolls = append(rolls, Roll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}

// RollPercentilePair rolls the two d100 used by activity resolution and
// returns the individual dice alongside their sum.
func RollPercentilePair(seed int64) (first, second, total int) {
	result, err := RollDice(Request{
		Dice: []Spec{{Sides: PercentileSides, Count: 2}},
		Seed: seed,
	})
	if err != nil {
		// Unreachable: the spec is hardcoded and always valid.
		panic(err)
	}

	first = result.Rolls[0].Results[0]
	second = result.Rolls[0].Results[1]
	return first, second, first + second
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(rng *rand.Rand, sides int) int {
	return rng.Intn(sides) + 1
}
