package dialogue

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aishuu11/hackathon-2025/internal/catalog"
	"github.com/aishuu11/hackathon-2025/internal/intent"
	"github.com/aishuu11/hackathon-2025/internal/observability"
	"github.com/aishuu11/hackathon-2025/internal/spelling"
	"github.com/aishuu11/hackathon-2025/internal/textnorm"
)

// EngineConfig holds engine configuration.
type EngineConfig struct {
	Match MatchConfig
	// Corrector rewrites messages the classifier could not place. Nil
	// disables spelling correction.
	Corrector *spelling.Corrector
	// Rand drives randomized copy. Defaults to math/rand/v2.
	Rand RandSource
}

// Engine routes messages to handlers. It holds no per-session state and is
// safe for concurrent use; profiles are passed in and returned per turn.
type Engine struct {
	logger     *observability.Logger
	catalogs   *catalog.Set
	classifier *intent.Classifier
	assembler  *Assembler
	corrector  *spelling.Corrector
	match      MatchConfig
	rng        RandSource
}

// NewEngine creates an engine over loaded catalogs. A nil set behaves as
// empty catalogs.
func NewEngine(logger *observability.Logger, catalogs *catalog.Set, cfg EngineConfig) *Engine {
	if logger == nil {
		logger = observability.Nop()
	}
	if catalogs == nil {
		catalogs = catalog.Empty()
	}
	if cfg.Match.FoodThreshold <= 0 {
		cfg.Match.FoodThreshold = 0.6
	}
	if cfg.Match.MythThreshold <= 0 {
		cfg.Match.MythThreshold = 0.5
	}
	if cfg.Rand == nil {
		cfg.Rand = globalRand{}
	}

	return &Engine{
		logger:     logger.WithComponent("engine"),
		catalogs:   catalogs,
		classifier: intent.NewClassifier(catalogs.Foods, catalogs.Myths),
		assembler:  NewAssembler(catalogs.Messages, cfg.Rand),
		corrector:  cfg.Corrector,
		match:      cfg.Match,
		rng:        cfg.Rand,
	}
}

// Classifier returns the engine's intent classifier.
func (e *Engine) Classifier() *intent.Classifier {
	return e.classifier
}

// Catalogs returns the catalogs the engine reads.
func (e *Engine) Catalogs() *catalog.Set {
	return e.catalogs
}

// Trace describes how a turn was routed.
type Trace struct {
	Intent    intent.Intent `json:"intent"`
	Rule      string        `json:"rule"`
	Pattern   string        `json:"pattern,omitempty"`
	MatchKey  string        `json:"match_key,omitempty"`
	MatchPath string        `json:"match_path,omitempty"`
	Score     float64       `json:"score"`
	Corrected string        `json:"corrected,omitempty"`
	Latency   time.Duration `json:"latency"`
}

// Turn is the outcome of one message: the reply, the profile after the turn
// and the routing trace.
type Turn struct {
	Envelope Envelope
	Profile  UserProfile
	Trace    Trace
}

// Respond processes one message for a profile. The input profile is not
// modified; the updated copy is returned in the Turn.
func (e *Engine) Respond(p UserProfile, message string) Turn {
	start := time.Now()
	var t Trace
	env, next := e.route(p.Clone(), message, &t)
	t.Latency = time.Since(start)

	if evt := e.logger.Debug(); evt.Enabled() {
		evt.Str("intent", string(t.Intent)).
			Str("rule", t.Rule).
			Str("type", string(env.Type)).
			Str("match_key", t.MatchKey).
			Float64("score", t.Score).
			Dur("latency", t.Latency).
			Msg("Turn routed")
	}

	return Turn{Envelope: env, Profile: next, Trace: t}
}

func (e *Engine) route(p UserProfile, message string, t *Trace) (Envelope, UserProfile) {
	req := request{raw: strings.TrimSpace(message)}
	req.normalized = textnorm.NormalizeSpace(req.raw)

	if req.normalized == "" {
		t.Intent, t.Rule = intent.IntentUnknown, "empty"
		return e.confused(), p
	}

	if p.Onboarding() {
		t.Intent, t.Rule = intent.IntentProfileUpdate, "onboarding"
		next, env := e.continueOnboarding(p, req.normalized)
		return env, next
	}

	d := e.classifier.Explain(req.normalized)
	var fixes []spelling.Correction
	if d.Intent == intent.IntentUnknown && e.corrector != nil {
		corrected, cs := e.corrector.Correct(req.normalized)
		if len(cs) > 0 {
			if d2 := e.classifier.Explain(corrected); d2.Intent != intent.IntentUnknown {
				d, fixes = d2, cs
				req.normalized = corrected
				t.Corrected = corrected
			}
		}
	}
	t.Intent, t.Rule, t.Pattern = d.Intent, d.Rule, d.Pattern

	env, p := e.dispatch(d.Intent, req, p, t)

	if len(fixes) > 0 {
		env.Response = fmt.Sprintf("_I understood: \"%s\"_\n\n", req.normalized) + env.Response
		env.Corrections = fixes
	}
	if ctx := ExtractUserContext(req.raw); !ctx.Empty() {
		env.Context = &ctx
	}
	return env, p
}

func (e *Engine) dispatch(in intent.Intent, req request, p UserProfile, t *Trace) (Envelope, UserProfile) {
	switch in {
	case intent.IntentGreeting:
		return e.handleGreeting(p), p
	case intent.IntentFoodQuery:
		return e.handleFood(req, t), p
	case intent.IntentMythQuery:
		return e.handleMyth(req, p, t), p
	case intent.IntentGeneralAdvice:
		env, topic := e.adviceFor(req, p)
		t.MatchKey = topic
		return env, p
	case intent.IntentEmotion:
		return e.handleEmotion(req), p
	case intent.IntentProfileUpdate:
		next, env := e.startOnboarding(p)
		return env, next
	case intent.IntentOffTopic:
		return e.handleOffTopic(), p
	default:
		return e.confused(), p
	}
}

// Conversation is one session's dialogue: an engine plus the session's
// profile. Methods are safe for concurrent use.
type Conversation struct {
	engine  *Engine
	mu      sync.Mutex
	profile UserProfile
}

// NewConversation starts a conversation with a default profile.
func NewConversation(engine *Engine) *Conversation {
	return NewConversationWithProfile(engine, NewUserProfile())
}

// NewConversationWithProfile resumes a conversation from a stored profile.
func NewConversationWithProfile(engine *Engine, p UserProfile) *Conversation {
	return &Conversation{engine: engine, profile: p.Clone()}
}

// ProcessMessage handles one message and returns the reply.
func (c *Conversation) ProcessMessage(message string) Envelope {
	return c.Turn(message).Envelope
}

// Turn handles one message and returns the full turn record.
func (c *Conversation) Turn(message string) Turn {
	c.mu.Lock()
	defer c.mu.Unlock()

	turn := c.engine.Respond(c.profile, message)
	c.profile = turn.Profile.Clone()
	return turn
}

// SetUserProfile merges a partial profile into the conversation's profile.
func (c *Conversation) SetUserProfile(u ProfileUpdate) error {
	if err := u.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profile = u.Apply(c.profile)
	return nil
}

// GetUserProfile returns a snapshot of the profile. Changes to the returned
// value do not affect the conversation.
func (c *Conversation) GetUserProfile() UserProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile.Clone()
}
