package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aishuu11/hackathon-2025/internal/config"
	"github.com/aishuu11/hackathon-2025/internal/dialogue"
	"github.com/aishuu11/hackathon-2025/internal/observability"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Catalog.DataDir = "../../data"
	return cfg
}

func TestNewEngine(t *testing.T) {
	e, set := NewEngine(testConfig(), observability.Nop())

	require.NotNil(t, e)
	assert.Equal(t, 6, set.Foods.Len())
	assert.Equal(t, 2, set.Questions.Len())

	env := e.Respond(dialogue.NewUserProfile(), "tell me about nasi lemak").Envelope
	assert.Equal(t, dialogue.TypeFoodInfo, env.Type)
}

func TestNewEngine_MissingDataDir(t *testing.T) {
	cfg := testConfig()
	cfg.Catalog.DataDir = t.TempDir()

	e, set := NewEngine(cfg, observability.Nop())

	assert.Zero(t, set.Foods.Len())
	assert.Equal(t, dialogue.TypeConfused, e.Respond(dialogue.NewUserProfile(), "tell me about bubble tea").Envelope.Type)
}

func TestEngineConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Matching.MythThreshold = 0.7
	cfg.Spelling.Enabled = false

	_, set := NewEngine(cfg, observability.Nop())
	ec := EngineConfig(cfg, set)

	assert.Equal(t, 0.7, ec.Match.MythThreshold)
	assert.Nil(t, ec.Corrector)

	cfg.Spelling.Enabled = true
	assert.NotNil(t, EngineConfig(cfg, set).Corrector)
}
