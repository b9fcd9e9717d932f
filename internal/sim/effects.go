package sim

import (
	"math/rand"

	apperrors "github.com/louisbranch/everyday.space/internal/platform/errors"
)

// Tier scaling for main stat and money gains.
const (
	BestMainMultiplier  = 1.75
	OkayMainMultiplier  = 1.0
	MixedMainMultiplier = 0.5

	// CatastrophicSeverity scales penalties and costs on the worst tier.
	CatastrophicSeverity = 1.5

	// BestSecondaryPicks is how many secondary stats a best outcome grants.
	BestSecondaryPicks = 2
	// CatastrophicPenaltyPicks caps stat penalties on the worst tier.
	CatastrophicPenaltyPicks = 2
)

// Relationship effect scaling per tier. Catastrophic reverses the effect.
const (
	BestRelationshipMultiplier         = 1.5
	OkayRelationshipMultiplier         = 1.0
	MixedRelationshipMultiplier        = 0.3
	CatastrophicRelationshipMultiplier = -0.5
)

// ErrInvalidProfile indicates an effect profile with out-of-range fields.
var ErrInvalidProfile = apperrors.New(apperrors.CodeEffectInvalidProfile, "effect profile has invalid fields")

// NegativeEffects bundles the penalties an activity can inflict on mixed
// and catastrophic outcomes. Empty pools and zero costs are legitimate:
// sampling simply produces fewer picks.
type NegativeEffects struct {
	PenaltyStats  []StatName // candidate stat-penalty pool
	PenaltyAmount int
	EnergyCost    int
	MoneyCost     int
	TimeCost      int
}

// EffectProfile declares, per activity, how each outcome tier translates
// into stat and resource deltas.
type EffectProfile struct {
	MainStats      []StatName
	MainGain       int
	MoneyGain      int        // optional, work activities
	SecondaryStats []StatName // pool sampled on best outcomes
	SecondaryGain  int
	Negative       *NegativeEffects
}

// Validate checks the profile for fields no activity designer should ship.
func (p EffectProfile) Validate() error {
	if p.MainGain < 0 || p.MoneyGain < 0 || p.SecondaryGain < 0 {
		return ErrInvalidProfile
	}
	if p.Negative != nil {
		n := p.Negative
		if n.PenaltyAmount < 0 || n.EnergyCost < 0 || n.MoneyCost < 0 || n.TimeCost < 0 {
			return ErrInvalidProfile
		}
	}
	return nil
}

// EffectResult holds the concrete deltas generated for one outcome.
// Penalty and cost values are positive magnitudes to subtract.
type EffectResult struct {
	Tier                   OutcomeTier
	StatGains              map[StatName]int
	StatPenalties          map[StatName]int
	MoneyGain              int
	EnergyCost             int
	MoneyCost              int
	TimeCost               int
	RelationshipMultiplier float64
}

// MainMultiplier returns the main stat/money scaling for a tier.
func MainMultiplier(tier OutcomeTier) float64 {
	switch tier {
	case TierBest:
		return BestMainMultiplier
	case TierOkay:
		return OkayMainMultiplier
	case TierMixed:
		return MixedMainMultiplier
	default:
		return 0
	}
}

// RelationshipMultiplier returns the relationship-effect scaling for a tier.
func RelationshipMultiplier(tier OutcomeTier) float64 {
	switch tier {
	case TierBest:
		return BestRelationshipMultiplier
	case TierOkay:
		return OkayRelationshipMultiplier
	case TierMixed:
		return MixedRelationshipMultiplier
	default:
		return CatastrophicRelationshipMultiplier
	}
}

// GenerateEffects maps an outcome tier and an effect profile into concrete
// deltas, sampling secondary and negative effects from the provided seed.
func GenerateEffects(tier OutcomeTier, profile EffectProfile, seed int64) (EffectResult, error) {
	return GenerateEffectsWithRng(tier, profile, rand.New(rand.NewSource(seed)))
}

// GenerateEffectsWithRng is GenerateEffects over a caller-owned random
// stream. Sampling is without replacement within this single resolution;
// nothing is memoized across calls.
func GenerateEffectsWithRng(tier OutcomeTier, profile EffectProfile, rng *rand.Rand) (EffectResult, error) {
	if err := profile.Validate(); err != nil {
		return EffectResult{}, err
	}

	result := EffectResult{
		Tier:                   tier,
		StatGains:              map[StatName]int{},
		StatPenalties:          map[StatName]int{},
		RelationshipMultiplier: RelationshipMultiplier(tier),
	}

	mainMult := MainMultiplier(tier)
	if mainMult > 0 {
		gain := roundInt(float64(profile.MainGain) * mainMult)
		for _, name := range profile.MainStats {
			result.StatGains[name] += gain
		}
		result.MoneyGain = roundInt(float64(profile.MoneyGain) * mainMult)
	}

	if tier == TierBest {
		for _, name := range sampleStats(rng, profile.SecondaryStats, BestSecondaryPicks) {
			result.StatGains[name] += profile.SecondaryGain
		}
	}

	switch tier {
	case TierMixed:
		applyMixedNegatives(&result, profile.Negative, rng)
	case TierCatastrophic:
		applyCatastrophicNegatives(&result, profile.Negative, rng)
	}

	return result, nil
}

// applyMixedNegatives inflicts exactly one stat penalty and one resource
// cost, each sampled uniformly from the nonempty pools.
func applyMixedNegatives(result *EffectResult, negative *NegativeEffects, rng *rand.Rand) {
	if negative == nil {
		return
	}
	for _, name := range sampleStats(rng, negative.PenaltyStats, 1) {
		result.StatPenalties[name] += negative.PenaltyAmount
	}

	kinds := nonzeroCostKinds(negative)
	if len(kinds) == 0 {
		return
	}
	switch kinds[rng.Intn(len(kinds))] {
	case costEnergy:
		result.EnergyCost = negative.EnergyCost
	case costMoney:
		result.MoneyCost = negative.MoneyCost
	case costTime:
		result.TimeCost = negative.TimeCost
	}
}

// applyCatastrophicNegatives inflicts up to two stat penalties and every
// nonzero resource cost, all at 1.5× severity.
func applyCatastrophicNegatives(result *EffectResult, negative *NegativeEffects, rng *rand.Rand) {
	if negative == nil {
		return
	}
	amount := roundInt(float64(negative.PenaltyAmount) * CatastrophicSeverity)
	for _, name := range sampleStats(rng, negative.PenaltyStats, CatastrophicPenaltyPicks) {
		result.StatPenalties[name] += amount
	}

	result.EnergyCost = roundInt(float64(negative.EnergyCost) * CatastrophicSeverity)
	result.MoneyCost = roundInt(float64(negative.MoneyCost) * CatastrophicSeverity)
	result.TimeCost = roundInt(float64(negative.TimeCost) * CatastrophicSeverity)
}

type costKind int

const (
	costEnergy costKind = iota
	costMoney
	costTime
)

func nonzeroCostKinds(negative *NegativeEffects) []costKind {
	var kinds []costKind
	if negative.EnergyCost > 0 {
		kinds = append(kinds, costEnergy)
	}
	if negative.MoneyCost > 0 {
		kinds = append(kinds, costMoney)
	}
	if negative.TimeCost > 0 {
		kinds = append(kinds, costTime)
	}
	return kinds
}

// sampleStats draws up to n stats uniformly without replacement. Pools
// smaller than n return the whole pool in shuffled order.
func sampleStats(rng *rand.Rand, pool []StatName, n int) []StatName {
	if len(pool) == 0 || n <= 0 {
		return nil
	}
	picked := make([]StatName, len(pool))
	copy(picked, pool)
	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if n < len(picked) {
		picked = picked[:n]
	}
	return picked
}
