package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/vk-validation/config"
	"github.com/wippyai/vk-validation/diag"
	"github.com/wippyai/vk-validation/scenario"
)

type runOptions struct {
	root        *rootOptions
	interactive bool
	verbose     bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := runOptions{root: root}
	cmd := &cobra.Command{
		Use:   "run [flags] scenario.yaml...",
		Short: "Run scenario scripts through the layer against the null driver",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd, opts, args)
		},
	}
	fs := cmd.Flags()
	fs.BoolVarP(&opts.interactive, "interactive", "i", false, "step through a single script in a terminal UI")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "print the reports of passing steps too")
	return cmd
}

func runScenarios(cmd *cobra.Command, opts runOptions, paths []string) error {
	cfg, err := opts.root.settings()
	if err != nil {
		return err
	}
	log, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if opts.interactive {
		if len(paths) != 1 {
			return fmt.Errorf("interactive mode runs exactly one script, got %d", len(paths))
		}
		return runInteractive(paths[0], cfg, log, opts.root.settingsPath)
	}

	out := cmd.OutOrStdout()
	p := painter{color: isTerminal(out)}
	failed := 0
	for _, path := range paths {
		s, err := scenario.Load(path)
		if err != nil {
			return err
		}
		res := scenario.NewRunner(s,
			scenario.WithSettings(cfg.Layer()),
			scenario.WithLogger(log.With(zap.String("script", s.Name))),
		).Run()
		printResult(out, p, res, opts.verbose)
		failed += len(res.Failed())
	}
	if failed > 0 {
		return fmt.Errorf("%d step(s) failed", failed)
	}
	return nil
}

func printResult(w io.Writer, p painter, res scenario.Result, verbose bool) {
	bad := res.Failed()
	if len(bad) == 0 {
		fmt.Fprintf(w, "%s %s (%d steps)\n", p.paint(passStyle, "PASS"), res.Name, len(res.Steps))
	} else {
		fmt.Fprintf(w, "%s %s (%d of %d steps failed)\n", p.paint(failStyle, "FAIL"), res.Name, len(bad), len(res.Steps))
	}
	for _, st := range res.Steps {
		if st.Passed() && !verbose {
			continue
		}
		printStep(w, p, st)
	}
}

func printStep(w io.Writer, p painter, st scenario.StepResult) {
	mark := p.paint(passStyle, "ok")
	if !st.Passed() {
		mark = p.paint(failStyle, "FAIL")
	}
	fmt.Fprintf(w, "  %3d %s %s -> %s\n", st.Index+1, mark, p.paint(opStyle, st.Step.String()), st.Result)
	if st.Err != nil {
		fmt.Fprintf(w, "        %v\n", st.Err)
	}
	for _, rep := range st.Reports {
		printReport(w, p, rep)
	}
}

func printReport(w io.Writer, p painter, rep diag.Report) {
	fmt.Fprintf(w, "        %s %s %s\n", p.severity(rep.Severity), rep.Code, rep.Message)
}
