package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aishuu11/hackathon-2025/cmd/nutribot-cli/ui"
	"github.com/aishuu11/hackathon-2025/internal/dialogue"
	"github.com/aishuu11/hackathon-2025/internal/intent"
	"github.com/aishuu11/hackathon-2025/internal/monitoring"
	"github.com/aishuu11/hackathon-2025/internal/session"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NUTRIBOT_DATA_DIR", "../../../data")

	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(append([]string{"--no-color"}, args...))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))

	err := root.Execute()
	return out.String(), err
}

func TestParseEvalCases(t *testing.T) {
	cases, err := parseEvalCases(strings.NewReader(`
# comment
{"message": "hi", "intent": "greeting"}
{"message": "xyzzy", "intent": "unknown"}
`))
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, 3, cases[0].Line)
	assert.Equal(t, intent.IntentGreeting, cases[0].Intent)
	assert.Equal(t, "xyzzy", cases[1].Message)
}

func TestParseEvalCases_Errors(t *testing.T) {
	_, err := parseEvalCases(strings.NewReader("{\"message\": \"hi\", \"intent\": \"greeting\"}\n{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = parseEvalCases(strings.NewReader(`{"message": "hi"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing intent")
}

func TestEvaluate(t *testing.T) {
	c := intent.NewClassifier(nil, nil)
	steps := 0

	report := evaluate(c, []evalCase{
		{Line: 1, Message: "hello there", Intent: intent.IntentGreeting},
		{Line: 2, Message: "xyzzy plugh", Intent: intent.IntentUnknown},
		{Line: 3, Message: "haha tell me a joke", Intent: intent.IntentGreeting},
	}, func() { steps++ })

	assert.Equal(t, 3, steps)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Correct)
	assert.InDelta(t, 2.0/3.0, report.Accuracy, 1e-9)
	assert.Equal(t, intentScore{Total: 2, Correct: 1}, report.PerIntent[intent.IntentGreeting])
	require.Len(t, report.Misses, 1)
	assert.Equal(t, intent.IntentOffTopic, report.Misses[0].Got)
}

func TestEvalCommand_JSON(t *testing.T) {
	out, err := run(t, "", "--json", "eval", "testdata/intents.jsonl")
	require.NoError(t, err)

	var report evalReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 6, report.Total)
	assert.Equal(t, 5, report.Correct)
	require.Len(t, report.Misses, 1)
	assert.Equal(t, 8, report.Misses[0].Line)
	assert.Equal(t, intent.IntentOffTopic, report.Misses[0].Got)
}

func TestEvalCommand_TextSummary(t *testing.T) {
	out, err := run(t, "", "eval", "testdata/intents.jsonl")
	require.NoError(t, err)

	assert.Contains(t, out, "5/6 correct (83.3%)")
	assert.NotContains(t, out, "MISSING")
	assert.Contains(t, out, "haha tell me a joke")
}

func TestEvalCommand_MinAccuracy(t *testing.T) {
	_, err := run(t, "", "--json", "eval", "--min-accuracy", "0.9", "testdata/intents.jsonl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below the required")
}

func TestClassifyCommand(t *testing.T) {
	out, err := run(t, "", "--json", "classify", "tell", "me", "about", "bubble", "tea")
	require.NoError(t, err)

	var d intent.Decision
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, intent.IntentFoodQuery, d.Intent)
	assert.Equal(t, "food_catalog", d.Rule)
}

func TestClassifyCommand_AdviceTopic(t *testing.T) {
	out, err := run(t, "", "--json", "classify", "tips", "for", "IF")
	require.NoError(t, err)

	var got struct {
		Intent intent.Intent `json:"intent"`
		Topic  string        `json:"topic"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, intent.IntentGeneralAdvice, got.Intent)
	assert.Equal(t, "intermittent_fasting", got.Topic)

	out, err = run(t, "", "--json", "classify", "tell", "me", "about", "bubble", "tea")
	require.NoError(t, err)
	assert.NotContains(t, out, `"topic"`)
}

func TestClassifyCommand_HelpListsAdviceTopics(t *testing.T) {
	out, err := run(t, "", "classify", "--help")
	require.NoError(t, err)

	for _, name := range dialogue.AdviceTopicNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "weight_loss, muscle_gain, healthy_eating")
}

func TestAskCommand(t *testing.T) {
	out, err := run(t, "", "--json", "ask", "tell me about bubble tea")
	require.NoError(t, err)

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, "food_info", env["type"])
	assert.Equal(t, "bubble_tea", env["food_key"])
}

func TestAskCommand_Explain(t *testing.T) {
	out, err := run(t, "", "ask", "--explain", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "greeting")
	assert.Contains(t, out, "intent")
}

func TestMatchCommands(t *testing.T) {
	out, err := run(t, "", "--json", "match", "food", "bubbel tea")
	require.NoError(t, err)

	var res matchResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Found)
	assert.Equal(t, "bubble_tea", res.Key)

	out, err = run(t, "", "--json", "match", "myth", "is it true that carbs make you fat")
	require.NoError(t, err)
	res = matchResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Found)
	assert.Equal(t, "carbs_fat", res.Key)

	out, err = run(t, "", "match", "myth", "xyzzy plugh")
	require.NoError(t, err)
	assert.Contains(t, out, "no myth matched")
}

func TestCatalogCommands(t *testing.T) {
	out, err := run(t, "", "catalog", "list", "foods")
	require.NoError(t, err)
	assert.Contains(t, out, "Nasi Lemak")
	assert.Contains(t, out, "bubble_tea")

	_, err = run(t, "", "catalog", "list", "drinks")
	assert.Error(t, err)

	out, err = run(t, "", "--json", "catalog", "search", "bubble")
	require.NoError(t, err)
	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.NotEmpty(t, results)
	assert.Equal(t, "bubble_tea", results[0]["key"])
}

func TestChatCommand_Local(t *testing.T) {
	out, err := run(t, "hello\n\ntell me about bubble tea\nbye\n", "chat")
	require.NoError(t, err)

	assert.Contains(t, out, "350")
	assert.Contains(t, out, farewellText)
}

func TestChatCommand_Remote(t *testing.T) {
	var mu sync.Mutex
	var seen []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get(sessionHeader))
		mu.Unlock()

		w.Header().Set(sessionHeader, "session-1")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"greeting","response":"Hi from the server","ui_effects":{"avatar_mood":"happy"},"sessionId":"session-1"}`))
	}))
	defer srv.Close()

	out, err := run(t, "hi\nagain\nquit\n", "chat", "--remote", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Hi from the server")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"", "session-1"}, seen)
}

func TestAPIClient_ServerApology(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"chat failed","type":"error","response":"Sorry, something went wrong processing your message."}`))
	}))
	defer srv.Close()

	env, err := newAPIClient(srv.URL, "").Chat(context.Background(), "hi")
	require.NoError(t, err)
	assert.Contains(t, env.Response, "Sorry")
}

func TestSessionsPurge_SQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sessions.db")

	store, err := session.OpenSQLStore(ctx, session.DriverSQLite, path)
	require.NoError(t, err)
	now := time.Now().UTC()
	for _, id := range []string{"s1", "s2"} {
		require.NoError(t, store.Save(ctx, &session.Record{ID: id, Profile: dialogue.NewUserProfile(), CreatedAt: now, UpdatedAt: now}))
	}
	require.NoError(t, store.Close())

	t.Setenv("DATABASE_URL", "sqlite:"+path)
	out, err := run(t, "", "sessions", "purge", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Purged all sessions from the sqlite store")

	store, err = session.OpenSQLStore(ctx, session.DriverSQLite, path)
	require.NoError(t, err)
	defer store.Close()
	for _, id := range []string{"s1", "s2"} {
		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, session.ErrNotFound)
	}
}

func TestSessionsPurge_NeedsConfirmation(t *testing.T) {
	_, err := run(t, "", "sessions", "purge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestSessionsPurge_MemoryDriver(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("SESSION_DRIVER", "memory")

	_, err := run(t, "", "sessions", "purge", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory session store")
}

func TestAuditTail_RedisUnavailable(t *testing.T) {
	t.Setenv("REDIS_URL", "127.0.0.1:1")

	_, err := run(t, "", "audit", "tail", "--count", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to redis at 127.0.0.1:1")
}

// auditFeed replays a fixed list of payloads as a closed subscription.
type auditFeed struct {
	payloads [][]byte
	channel  string
}

func (f *auditFeed) Subscribe(_ context.Context, channel string) (<-chan []byte, func(), error) {
	f.channel = channel
	ch := make(chan []byte, len(f.payloads))
	for _, p := range f.payloads {
		ch <- p
	}
	close(ch)
	return ch, func() {}, nil
}

func newAuditFeed(t *testing.T, events ...monitoring.TurnEvent) *auditFeed {
	t.Helper()
	f := &auditFeed{}
	for _, e := range events {
		data, err := json.Marshal(e)
		require.NoError(t, err)
		f.payloads = append(f.payloads, data)
	}
	return f
}

func TestTailAudit_Text(t *testing.T) {
	feed := newAuditFeed(t,
		monitoring.TurnEvent{SessionID: "a1b2c3d4-0000", Intent: "food_query", Rule: "food_catalog", MatchKey: "bubble_tea", Score: 0.91, LatencyMs: 1.5},
		monitoring.TurnEvent{SessionID: "ffff0000-1111", Intent: "greeting", Rule: "greeting"},
	)
	var buf bytes.Buffer

	err := tailAudit(context.Background(), ui.New(&buf, false, true), &buf, feed, 0)

	require.NoError(t, err)
	assert.Equal(t, monitoring.AuditChannel, feed.channel)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "a1b2c3d4")
	assert.NotContains(t, lines[0], "a1b2c3d4-0000")
	assert.Contains(t, lines[0], "bubble_tea")
	assert.Contains(t, lines[0], "0.91")
	assert.Contains(t, lines[0], "1.5ms")
	assert.Contains(t, lines[1], "greeting")
	assert.Contains(t, lines[1], " - ")
}

func TestTailAudit_JSONLines(t *testing.T) {
	feed := newAuditFeed(t,
		monitoring.TurnEvent{SessionID: "s1", Intent: "emotion"},
		monitoring.TurnEvent{SessionID: "s2", Intent: "off_topic"},
		monitoring.TurnEvent{SessionID: "s3", Intent: "greeting"},
	)
	var buf bytes.Buffer

	err := tailAudit(context.Background(), ui.New(&buf, true, true), &buf, feed, 2)
	require.NoError(t, err)

	dec := json.NewDecoder(&buf)
	var got []string
	for dec.More() {
		var e monitoring.TurnEvent
		require.NoError(t, dec.Decode(&e))
		got = append(got, e.SessionID)
	}
	assert.Equal(t, []string{"s1", "s2"}, got)
}
