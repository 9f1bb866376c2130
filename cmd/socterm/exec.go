package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/devluplabs/socterm/internal/analytics"
	"github.com/devluplabs/socterm/internal/config"
	"github.com/devluplabs/socterm/internal/events"
	"github.com/devluplabs/socterm/internal/project"
	"github.com/devluplabs/socterm/internal/sheets"
	"github.com/devluplabs/socterm/internal/terminal"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	promptColor  = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed)
	helpColor    = color.New(color.FgCyan)
	codeColor    = color.New(color.FgHiBlack)
	titleColor   = color.New(color.FgHiWhite, color.Bold)
	accentColor  = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
)

func (a *app) load(ctx context.Context) sheets.LoadResult {
	client := sheets.NewClientFromConfig(a.cfg, a.logger.Named("sheets"))
	return client.Load(ctx)
}

func (a *app) newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run one terminal command and print its output",
		Example: `  socterm exec help
  socterm exec search chatbot
  socterm exec -- stats --view analytics`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runExec,
	}
}

func (a *app) runExec(cmd *cobra.Command, args []string) error {
	res := a.load(cmd.Context())

	bus := events.NewMemoryBus()
	tracker := analytics.NewTracker()
	tracker.Attach(bus)

	term := terminal.New(terminal.Options{
		HistoryLimit:     a.cfg.HistoryLimit,
		ApplicationsOpen: a.cfg.ApplicationsOpen,
		ApplyFormURL:     a.cfg.ApplyFormURL,
		LiveStatsEvery:   a.cfg.LiveStatsEvery(),
		Stats:            tracker,
		Bus:              bus,
		Logger:           a.logger,
	})
	term.SetProjects(res.Projects)
	bus.Publish(events.NewEvent(events.TypeProjectsLoaded, events.ProjectsLoadedData{
		Count:    len(res.Projects),
		Fallback: res.Fallback,
	}))

	before := len(term.History())
	if res.Fallback {
		term.NotifyFallback()
	}
	effect := term.Execute(strings.Join(args, " "))

	var entries []terminal.Entry
	if history := term.History(); len(history) > before {
		entries = history[before:]
	}

	// Animations play out immediately; there is no screen to pace them on.
	if effect.Animation != terminal.AnimationNone {
		for i := 0; ; i++ {
			e, ok := term.AnimationFrame(effect.Animation, i)
			if !ok {
				break
			}
			entries = append(entries, e)
		}
	}

	out := cmd.OutOrStdout()
	renderPlain(out, entries)

	if effect.Navigate != nil {
		codeColor.Fprintf(out, "→ %s\n", effect.Navigate.Path())
	}
	if effect.OpenURL != "" {
		accentColor.Fprintf(out, "Open %s in your browser to continue.\n", effect.OpenURL)
	}
	if effect.LiveStats {
		codeColor.Fprintln(out, "Live updates need the interactive terminal.")
	}
	return nil
}

func (a *app) newProjectsCmd() *cobra.Command {
	var search, tech, status string

	c := &cobra.Command{
		Use:   "projects",
		Short: "List archive projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.load(cmd.Context())
			out := cmd.OutOrStdout()
			if res.Fallback {
				errorColor.Fprintln(cmd.ErrOrStderr(), "Unable to fetch live project data. Displaying mock projects instead.")
			}

			list := project.Filter{Query: search, Tech: tech}.Apply(res.Projects)
			if status != "" {
				list = project.ForTab(list, project.ParseStatus(status))
			}
			if len(list) == 0 {
				errorColor.Fprintln(out, "No projects match.")
				return nil
			}
			for i, p := range list {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printProject(out, p)
			}
			return nil
		},
	}
	c.Flags().StringVar(&search, "search", "", "match name or description")
	c.Flags().StringVar(&tech, "tech", "", "exact tech stack entry")
	c.Flags().StringVar(&status, "status", "", "ongoing, completed or archived")
	return c
}

func (a *app) newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.resolvedConfigPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat config: %w", err)
			}
			if err := config.SaveConfigTo(a.cfg, path); err != nil {
				return err
			}
			a.logger.Info("config written", zap.String("path", path))
			successColor.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.resolvedConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	c.AddCommand(initCmd, pathCmd)
	return c
}

func (a *app) resolvedConfigPath() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	return config.GetConfigPath()
}

// renderPlain prints terminal entries with ANSI colour when out is a tty.
func renderPlain(out io.Writer, entries []terminal.Entry) {
	for _, e := range entries {
		switch e.Type {
		case terminal.EntryCommand:
			promptColor.Fprintf(out, "❯ %s\n", e.Content)
		case terminal.EntryError:
			errorColor.Fprintln(out, e.Content)
		case terminal.EntryHelp:
			helpColor.Fprintln(out, e.Content)
		case terminal.EntryCode:
			codeColor.Fprintln(out, e.Content)
		case terminal.EntryForm:
			successColor.Fprintln(out, e.Content)
		case terminal.EntryProject:
			if e.Project != nil {
				printProject(out, *e.Project)
			} else {
				fmt.Fprintln(out, e.Content)
			}
		case terminal.EntryMentor:
			titleColor.Fprintln(out, e.Content)
			for _, m := range e.Mentors {
				printMentor(out, m)
			}
		default:
			fmt.Fprintln(out, e.Content)
		}
	}
}

func printProject(out io.Writer, p project.Project) {
	titleColor.Fprintf(out, "[%s] %s", p.ID, p.Name)
	accentColor.Fprintf(out, "  (%s · %s)\n", p.CategoryLabel(), p.Status.Title())
	if summary := p.Summary(); summary != "" {
		fmt.Fprintf(out, "    %s\n", summary)
	}
	if len(p.TechStack) > 0 {
		codeColor.Fprintf(out, "    Tech: %s\n", strings.Join(p.TechStack, ", "))
	}
	codeColor.Fprintf(out, "    %s\n", p.MentorSummary())
}

func printMentor(out io.Writer, m project.Mentor) {
	fmt.Fprintf(out, "  • %s", m.Name)
	codeColor.Fprintf(out, " (%s)\n", m.Role)
	if m.Email != "" {
		accentColor.Fprintf(out, "    %s\n", m.Email)
	}
	if m.LinkedIn != "" {
		fmt.Fprintf(out, "    LinkedIn: %s\n", project.NormalizeLink(m.LinkedIn))
	}
	if m.GitHub != "" {
		fmt.Fprintf(out, "    GitHub: %s\n", project.NormalizeLink(m.GitHub))
	}
}
