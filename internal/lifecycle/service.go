package lifecycle

import (
	"context"
	"errors"

	apperrors "github.com/louisbranch/everyday.space/internal/platform/errors"
	"github.com/louisbranch/everyday.space/internal/sim"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const minutesPerDay = 24 * 60

var (
	// ErrPlayerNotFound is returned by PlayerStore implementations when no
	// record exists. Sleep treats it as the first sleep ever and
	// synthesizes a fresh character instead of failing.
	ErrPlayerNotFound = apperrors.New(apperrors.CodeSleepPlayerNotFound, "player record not found")

	// ErrEvaluatorMissing indicates the service was built without a
	// lifestyle pattern evaluator.
	ErrEvaluatorMissing = apperrors.New(apperrors.CodeSleepEvaluatorMissing, "lifestyle pattern evaluator is not configured")
)

// PatternComponent is one lifestyle adjustment produced by the evaluator:
// a per-stat delta with a human-readable explanation.
type PatternComponent struct {
	ID    string // pattern id, e.g. "early_riser"
	Label string // human-readable explanation
	Stat  sim.StatName
	Delta int
}

// PatternEvaluator judges the day's tracking counters and returns
// lifestyle adjustments. It is an external collaborator; its deltas apply
// to current stats directly, outside the nightly surplus rules.
type PatternEvaluator interface {
	EvaluatePatterns(ctx context.Context, tracking sim.StatTracking) ([]PatternComponent, error)
}

// TravelEstimator computes travel duration between two locations.
type TravelEstimator interface {
	TravelMinutes(ctx context.Context, from, to string) (int, error)
}

// PlayerStore loads and saves player records. Implementations return
// ErrPlayerNotFound for unknown ids.
type PlayerStore interface {
	Player(ctx context.Context, id string) (sim.PlayerCharacter, error)
	SavePlayer(ctx context.Context, player sim.PlayerCharacter) error
}

// Service orchestrates sleep cycles over injected collaborators.
type Service struct {
	players  PlayerStore
	patterns PatternEvaluator
	travel   TravelEstimator
	audit    *AuditEmitter
	tracer   trace.Tracer
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithTravelEstimator enables travel-time computation for players who are
// not at their rest location at bedtime.
func WithTravelEstimator(travel TravelEstimator) Option {
	return func(s *Service) { s.travel = travel }
}

// WithAuditStore enables audit events for completed sleep cycles.
func WithAuditStore(store AuditStore) Option {
	return func(s *Service) { s.audit = NewAuditEmitter(store) }
}

// NewService creates a sleep orchestrator.
func NewService(players PlayerStore, patterns PatternEvaluator, opts ...Option) *Service {
	s := &Service{
		players:  players,
		patterns: patterns,
		tracer:   otel.Tracer("everyday.space/lifecycle"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SleepRequest asks for a sleep cycle for one player.
type SleepRequest struct {
	PlayerID string
	// RestLocation is the designated sleeping place. When the player is
	// elsewhere, travel time is prepended before bedtime is computed.
	RestLocation string
}

// SleepResult is the full account of one sleep cycle.
type SleepResult struct {
	Player sim.PlayerCharacter

	Day           int // the new day number
	WakeMinutes   int
	HoursSlept    int
	TravelMinutes int

	EnergyBefore   int
	EnergyRestored int
	EnergyAfter    int

	Breakdowns []sim.StatChangeBreakdown
	FirstSleep bool
}

// Sleep advances the player across the day boundary.
//
// Steps run in a fixed order because later steps consume earlier output:
// travel, sleep crediting, energy restoration, lifestyle adjustments, then
// surplus conversion over the lifestyle-adjusted stats. Collaborator
// failures propagate unchanged; nothing is saved on failure.
func (s *Service) Sleep(ctx context.Context, req SleepRequest) (SleepResult, error) {
	ctx, span := s.tracer.Start(ctx, "lifecycle.Sleep")
	defer span.End()

	if s.patterns == nil {
		return SleepResult{}, ErrEvaluatorMissing
	}

	player, firstSleep, err := s.loadOrCreate(ctx, req.PlayerID)
	if err != nil {
		return SleepResult{}, err
	}

	travelMinutes, err := s.travelToRest(ctx, &player, req.RestLocation)
	if err != nil {
		return SleepResult{}, err
	}

	wake, hours, err := sim.SleepCredit(player.ClockMinutes)
	if err != nil {
		return SleepResult{}, err
	}

	energyBefore := player.Resources.Energy
	restored := sim.RestoredEnergy(hours)
	energy := energyBefore + restored
	if energy > player.Resources.EnergyMax {
		energy = player.Resources.EnergyMax
	}
	player.Resources.Energy = energy

	components, err := s.patterns.EvaluatePatterns(ctx, player.Tracking)
	if err != nil {
		return SleepResult{}, err
	}

	statsBefore := player.Stats
	if err := applyLifestyle(&player.Stats, components); err != nil {
		return SleepResult{}, err
	}

	conversions := player.Stats.ConvertSurplus()

	player.Tracking.ResetDaily(player.Resources.Energy)
	player.Day++
	player.ClockMinutes = wake

	if err := s.players.SavePlayer(ctx, player); err != nil {
		return SleepResult{}, err
	}

	result := SleepResult{
		Player:         player,
		Day:            player.Day,
		WakeMinutes:    wake,
		HoursSlept:     hours,
		TravelMinutes:  travelMinutes,
		EnergyBefore:   energyBefore,
		EnergyRestored: restored,
		EnergyAfter:    energy,
		Breakdowns:     buildBreakdowns(statsBefore, player.Stats, components, conversions),
		FirstSleep:     firstSleep,
	}

	// Audit failures do not fail the cycle; the state is already saved.
	_ = s.audit.Emit(ctx, AuditEvent{
		EventName: "lifecycle.sleep.completed",
		Severity:  SeverityInfo,
		PlayerID:  player.ID,
		Day:       player.Day,
		Attributes: map[string]any{
			"hours_slept":     hours,
			"travel_minutes":  travelMinutes,
			"energy_restored": restored,
			"first_sleep":     firstSleep,
		},
	})

	return result, nil
}

func (s *Service) loadOrCreate(ctx context.Context, playerID string) (sim.PlayerCharacter, bool, error) {
	player, err := s.players.Player(ctx, playerID)
	if err == nil {
		return player, false, nil
	}
	if !errors.Is(err, ErrPlayerNotFound) {
		return sim.PlayerCharacter{}, false, err
	}

	created, err := sim.NewPlayerCharacter(playerID, sim.DefaultArchetype)
	if err != nil {
		return sim.PlayerCharacter{}, false, err
	}
	return created, true, nil
}

func (s *Service) travelToRest(ctx context.Context, player *sim.PlayerCharacter, restLocation string) (int, error) {
	if restLocation == "" || player.Location == restLocation {
		return 0, nil
	}
	minutes := 0
	if s.travel != nil {
		var err error
		minutes, err = s.travel.TravelMinutes(ctx, player.Location, restLocation)
		if err != nil {
			return 0, err
		}
		player.ClockMinutes = (player.ClockMinutes + minutes) % minutesPerDay
	}
	player.Location = restLocation
	return minutes, nil
}

func applyLifestyle(stats *sim.StatVector, components []PatternComponent) error {
	for _, c := range components {
		current, err := stats.Stat(c.Stat)
		if err != nil {
			return err
		}
		if err := stats.SetCurrent(c.Stat, current.Current+c.Delta); err != nil {
			return err
		}
	}
	return nil
}

// buildBreakdowns assembles the per-stat audit records: lifestyle
// components first, then the overnight surplus conversion. Zero-valued
// components are omitted; every stat gets a record.
func buildBreakdowns(before, after sim.StatVector, components []PatternComponent, conversions []sim.SurplusConversion) []sim.StatChangeBreakdown {
	byStat := map[sim.StatName][]sim.ChangeComponent{}
	for _, c := range components {
		if c.Delta == 0 {
			continue
		}
		byStat[c.Stat] = append(byStat[c.Stat], sim.ChangeComponent{
			Source:   "pattern:" + c.ID,
			Category: sim.ChangeCategoryLifestyle,
			Value:    c.Delta,
		})
	}
	for _, conversion := range conversions {
		if conversion.BaseGrowth != 0 {
			byStat[conversion.Stat] = append(byStat[conversion.Stat], sim.ChangeComponent{
				Source:   "surplus:growth",
				Category: sim.ChangeCategoryGrowth,
				Value:    conversion.BaseGrowth,
			})
		}
		if conversion.CurrentDecay != 0 {
			byStat[conversion.Stat] = append(byStat[conversion.Stat], sim.ChangeComponent{
				Source:   "surplus:decay",
				Category: sim.ChangeCategoryOvernight,
				Value:    -conversion.CurrentDecay,
			})
		}
	}

	breakdowns := make([]sim.StatChangeBreakdown, 0, len(sim.StatNames))
	for _, name := range sim.StatNames {
		beforeStat, err := before.Stat(name)
		if err != nil {
			// Unreachable: StatNames only contains known stats.
			panic(err)
		}
		afterStat, err := after.Stat(name)
		if err != nil {
			panic(err)
		}
		breakdowns = append(breakdowns, sim.StatChangeBreakdown{
			Stat:       name,
			Before:     beforeStat,
			After:      afterStat,
			Components: byStat[name],
		})
	}
	return breakdowns
}
