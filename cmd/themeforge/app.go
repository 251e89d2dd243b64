package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themeforge/internal/color"
	"github.com/alexisbeaulieu97/themeforge/internal/config"
	"github.com/alexisbeaulieu97/themeforge/internal/document"
	"github.com/alexisbeaulieu97/themeforge/internal/logger"
	"github.com/alexisbeaulieu97/themeforge/internal/render"
	"github.com/alexisbeaulieu97/themeforge/internal/theme"
)

// appContext carries what every command needs once settings are resolved.
type appContext struct {
	settings *config.Settings
	log      *logger.Logger
	parser   *color.Parser
}

type commandFunc func(cmd *cobra.Command, args []string, app *appContext) error

// run loads the application context before fn and logs failures.
func (f *rootFlags) run(fn commandFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := f.load(cmd)
		if err != nil {
			return err
		}
		app.log.Debug("command started", map[string]any{"command": cmd.CommandPath(), "args": args})
		if err := fn(cmd, args, app); err != nil {
			app.log.Error(err, "command failed", map[string]any{"command": cmd.CommandPath()})
			return err
		}
		return nil
	}
}

func (f *rootFlags) load(cmd *cobra.Command) (*appContext, error) {
	settings, err := config.Load(f.configPath)
	if err != nil {
		return nil, newCommandError("load settings", "reading configuration", err, "Fix the settings file or the THEMEFORGE_* environment variables.")
	}
	if f.verbose {
		settings.LogLevel = "debug"
	}
	if f.resolver != "" {
		settings.Resolver = strings.ToLower(f.resolver)
	}
	if f.document != "" {
		settings.Document = f.document
	}

	errOut := cmd.ErrOrStderr()
	interactive := isTerminal(errOut)
	log, err := logger.New(logger.Options{
		Level:         settings.LogLevel,
		HumanReadable: settings.HumanLogs || interactive,
		NoColor:       !interactive,
		Writer:        errOut,
	})
	if err != nil {
		return nil, newCommandError("load settings", "creating logger", err, "Use one of debug, info, warn or error for log_level.")
	}

	resolver, err := render.NewResolver(settings.Resolver)
	if err != nil {
		return nil, newCommandError("load settings", "selecting color resolver", err,
			fmt.Sprintf("Use one of: %s.", strings.Join(render.Tiers(), ", ")))
	}

	return &appContext{
		settings: settings,
		log:      log,
		parser:   color.NewParser(color.WithResolver(resolver), color.WithLogger(log)),
	}, nil
}

// defaults returns the built-in theme with the configured font and the
// optional defaults fragment layered over it.
func (a *appContext) defaults() (theme.Theme, error) {
	def := theme.Default()
	if font := a.settings.Font(); font != "" {
		def.FontID = font
	}
	if a.settings.Defaults == "" {
		return def, nil
	}

	data, err := os.ReadFile(a.settings.Defaults)
	if err != nil {
		return theme.Theme{}, newCommandError("load defaults", a.settings.Defaults, err, "Check the defaults path in your settings.")
	}
	fragment, report, err := theme.Import(string(data))
	if err != nil {
		return theme.Theme{}, newCommandError("load defaults", a.settings.Defaults, err, "The defaults file must be a JSON theme fragment.")
	}
	a.logDropped(a.settings.Defaults, report)
	return theme.Merge(def, fragment, theme.Theme{}), nil
}

// openDocument loads the configured theme document and reports ignored keys.
func (a *appContext) openDocument() (*document.Document, theme.Theme, error) {
	doc, err := document.Open(a.settings.Document, a.log)
	if err != nil {
		return nil, theme.Theme{}, newCommandError("open document", a.settings.Document, err, "Fix the JSON syntax of the theme document or point --document elsewhere.")
	}
	stored, report, err := doc.Theme()
	if err != nil {
		return nil, theme.Theme{}, newCommandError("open document", a.settings.Document, err, "Fix the JSON syntax of the theme document.")
	}
	a.logDropped(a.settings.Document, report)
	a.log.Debug("theme document loaded", map[string]any{"path": a.settings.Document, "light": len(stored.Light), "dark": len(stored.Dark)})
	return doc, stored, nil
}

func (a *appContext) logDropped(source string, report theme.ImportReport) {
	for _, key := range report.Dropped {
		a.log.Warn("ignored theme key", map[string]any{"source": source, "key": key})
	}
}

// format picks the command flag over the configured default.
func (a *appContext) format(flag string) string {
	if flag != "" {
		return strings.ToLower(flag)
	}
	return a.settings.Format
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
