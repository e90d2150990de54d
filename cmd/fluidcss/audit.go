package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fluidcss/internal/app/audit"
	"github.com/alexisbeaulieu97/fluidcss/internal/config"
)

type auditOptions struct {
	ConfigPath  string
	JSON        bool
	Concurrency int
}

func newAuditCmd(root *rootFlags) *cobra.Command {
	opts := auditOptions{}

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check every color pair of a project against its contrast target",
		Long: `Audit solves every color pair listed in a project file and reports the
current ratio, the suggested foreground and how far it drifts from the
original. The command fails when any pair needs a change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd.Context(), cmd.OutOrStdout(), root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to project file")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results in JSON format")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 0, "Pairs solved in parallel (0 uses all CPUs)")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runAudit(ctx context.Context, out io.Writer, root *rootFlags, opts auditOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	project, err := loadProject(opts.ConfigPath)
	if err != nil {
		return err
	}

	findings, err := audit.NewService(root.log, opts.Concurrency).Audit(ctx, auditPairs(project.Colors))
	if err != nil {
		return newCommandError("audit colors", opts.ConfigPath, err, "Retry the audit")
	}

	if opts.JSON {
		if err := renderAuditJSON(out, opts.ConfigPath, findings); err != nil {
			return err
		}
	} else {
		renderAuditTable(out, findings)
	}

	failing := 0
	for _, f := range findings {
		if !f.Passed() {
			failing++
		}
	}
	if failing > 0 {
		return newCommandError("audit colors", opts.ConfigPath,
			fmt.Errorf("%d of %d color pairs need changes", failing, len(findings)),
			"Apply the suggested foregrounds or run 'fluidcss solve' for a single pair")
	}
	return nil
}

func auditPairs(colors []config.ColorPair) []audit.Pair {
	pairs := make([]audit.Pair, len(colors))
	for i, c := range colors {
		target := c.Target
		if target == 0 {
			target = config.DefaultTarget
		}
		pairs[i] = audit.Pair{Name: c.Name, Background: c.Background, Foreground: c.Foreground, Target: target}
	}
	return pairs
}

func auditStatus(f audit.Finding) string {
	switch {
	case f.Err != nil:
		return "error"
	case f.Passed():
		return "pass"
	case f.Result.MetTarget:
		return "fixable"
	default:
		return "unreachable"
	}
}

func renderAuditTable(out io.Writer, findings []audit.Finding) {
	if len(findings) == 0 {
		fmt.Fprintln(out, "No color pairs in project.")
		return
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tSTATUS\tRATIO\tTARGET\tSUGGESTED\tNEW RATIO\tΔE")
	for _, f := range findings {
		if f.Err != nil {
			fmt.Fprintf(writer, "%s\t%s\t-\t-\t-\t-\t%v\n", f.Name, auditStatus(f), f.Err)
			continue
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\t%.1f\n",
			f.Name,
			auditStatus(f),
			formatRatio(f.Before.Ratio),
			formatRatio(f.Query.TargetRatio),
			f.Result.AchievedColor,
			formatRatio(f.Result.AchievedRatio),
			f.Distance,
		)
	}
	writer.Flush() //nolint:errcheck
}

type auditJSONFinding struct {
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	Background string  `json:"background,omitempty"`
	Foreground string  `json:"foreground,omitempty"`
	Target     float64 `json:"target,omitempty"`
	Ratio      float64 `json:"ratio,omitempty"`
	Suggested  string  `json:"suggested,omitempty"`
	NewRatio   float64 `json:"new_ratio,omitempty"`
	Steps      int     `json:"steps"`
	Saturated  bool    `json:"saturated"`
	Distance   float64 `json:"distance"`
	Error      string  `json:"error,omitempty"`
}

type auditJSONPayload struct {
	ConfigFile string             `json:"config_file"`
	Count      int                `json:"count"`
	Findings   []auditJSONFinding `json:"findings"`
}

func renderAuditJSON(out io.Writer, configPath string, findings []audit.Finding) error {
	payload := auditJSONPayload{
		ConfigFile: configPath,
		Count:      len(findings),
		Findings:   make([]auditJSONFinding, len(findings)),
	}

	for i, f := range findings {
		item := auditJSONFinding{Name: f.Name, Status: auditStatus(f)}
		if f.Err != nil {
			item.Error = f.Err.Error()
		} else {
			item.Background = f.Query.Background.String()
			item.Foreground = f.Query.Foreground.String()
			item.Target = f.Query.TargetRatio
			item.Ratio = f.Before.Ratio
			item.Suggested = f.Result.AchievedColor.String()
			item.NewRatio = f.Result.AchievedRatio
			item.Steps = f.Result.Steps
			item.Saturated = f.Result.Saturated
			item.Distance = f.Distance
		}
		payload.Findings[i] = item
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
