package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aishuu11/hackathon-2025/cmd/nutribot-cli/ui"
	"github.com/aishuu11/hackathon-2025/internal/dialogue"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderReply prints one bot reply with its supportive line and meter.
func renderReply(u *ui.UI, env dialogue.Envelope) error {
	if u.JSON() {
		return writeJSON(u.Writer(), env)
	}

	u.Bot(env.Response, env.UIEffects)
	u.Supportive(env.SupportiveMessage)
	if m := env.UIEffects.MeterValue; m != nil {
		label := "Health"
		if env.Type == dialogue.TypeMythInfo {
			label = "Truth "
		}
		ui.Meter(u.Writer(), label, *m)
	}
	fmt.Fprintln(u.Writer())
	return nil
}

func renderTrace(u *ui.UI, t dialogue.Trace) {
	rows := [][]string{
		{"intent", string(t.Intent)},
		{"rule", t.Rule},
		{"pattern", t.Pattern},
		{"match", t.MatchKey},
		{"path", t.MatchPath},
		{"score", fmt.Sprintf("%.3f", t.Score)},
		{"corrected", t.Corrected},
		{"latency", t.Latency.String()},
	}
	u.Table([]string{"field", "value"}, rows)
}
