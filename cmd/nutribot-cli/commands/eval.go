package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aishuu11/hackathon-2025/cmd/nutribot-cli/ui"
	"github.com/aishuu11/hackathon-2025/internal/intent"
)

// evalCase is one labelled line of an evaluation file.
type evalCase struct {
	Line    int           `json:"line"`
	Message string        `json:"message"`
	Intent  intent.Intent `json:"intent"`
}

type evalMiss struct {
	evalCase
	Got  intent.Intent `json:"got"`
	Rule string        `json:"rule"`
}

type intentScore struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

type evalReport struct {
	Total     int                           `json:"total"`
	Correct   int                           `json:"correct"`
	Accuracy  float64                       `json:"accuracy"`
	PerIntent map[intent.Intent]intentScore `json:"per_intent"`
	Misses    []evalMiss                    `json:"misses,omitempty"`
}

// parseEvalCases reads JSON lines of {"message": ..., "intent": ...}.
// Blank lines and lines starting with # are skipped.
func parseEvalCases(r io.Reader) ([]evalCase, error) {
	var cases []evalCase
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var c evalCase
		if err := json.Unmarshal([]byte(text), &c); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if c.Intent == "" {
			return nil, fmt.Errorf("line %d: missing intent label", line)
		}
		c.Line = line
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read eval file: %w", err)
	}
	return cases, nil
}

func evaluate(c *intent.Classifier, cases []evalCase, step func()) evalReport {
	report := evalReport{PerIntent: make(map[intent.Intent]intentScore)}
	for _, ec := range cases {
		d := c.Explain(ec.Message)

		score := report.PerIntent[ec.Intent]
		score.Total++
		report.Total++
		if d.Intent == ec.Intent {
			score.Correct++
			report.Correct++
		} else {
			report.Misses = append(report.Misses, evalMiss{evalCase: ec, Got: d.Intent, Rule: d.Rule})
		}
		report.PerIntent[ec.Intent] = score

		if step != nil {
			step()
		}
	}
	if report.Total > 0 {
		report.Accuracy = float64(report.Correct) / float64(report.Total)
	}
	return report
}

func newEvalCommand(opts *options) *cobra.Command {
	var minAccuracy float64

	cmd := &cobra.Command{
		Use:   "eval <file.jsonl>",
		Short: "Measure intent classification accuracy on a labelled file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open eval file: %w", err)
			}
			defer f.Close()

			cases, err := parseEvalCases(f)
			if err != nil {
				return err
			}
			if len(cases) == 0 {
				return fmt.Errorf("no cases in %s", args[0])
			}

			engine, _, _, err := opts.engine()
			if err != nil {
				return err
			}
			u := opts.ui(cmd)

			var step func()
			var progress *ui.Progress
			if !u.JSON() {
				progress = ui.NewProgress(cmd.ErrOrStderr())
				bar := progress.Bar("Classifying", int64(len(cases)))
				step = bar.Increment
			}
			report := evaluate(engine.Classifier(), cases, step)
			if progress != nil {
				progress.Wait()
			}

			if u.JSON() {
				if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				printReport(u, report)
			}

			if report.Accuracy < minAccuracy {
				return fmt.Errorf("accuracy %.1f%% is below the required %.1f%%", report.Accuracy*100, minAccuracy*100)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&minAccuracy, "min-accuracy", 0, "fail when accuracy is below this fraction")
	return cmd
}

func printReport(u *ui.UI, r evalReport) {
	u.Section("Intent accuracy")

	intents := make([]string, 0, len(r.PerIntent))
	for in := range r.PerIntent {
		intents = append(intents, string(in))
	}
	sort.Strings(intents)

	rows := make([][]string, 0, len(intents))
	for _, in := range intents {
		s := r.PerIntent[intent.Intent(in)]
		rows = append(rows, []string{in, fmt.Sprintf("%d/%d", s.Correct, s.Total), fmt.Sprintf("%.0f%%", 100*float64(s.Correct)/float64(s.Total))})
	}
	u.Table([]string{"intent", "correct", "accuracy"}, rows)

	if len(r.Misses) > 0 {
		u.Section("Misses")
		missRows := make([][]string, 0, len(r.Misses))
		for _, m := range r.Misses {
			missRows = append(missRows, []string{fmt.Sprintf("%d", m.Line), m.Message, string(m.Intent), string(m.Got), m.Rule})
		}
		u.Table([]string{"line", "message", "want", "got", "rule"}, missRows)
	}

	if r.Correct == r.Total {
		u.Success("%d/%d correct (%.1f%%)", r.Correct, r.Total, r.Accuracy*100)
	} else {
		u.Warning("%d/%d correct (%.1f%%)", r.Correct, r.Total, r.Accuracy*100)
	}
}
