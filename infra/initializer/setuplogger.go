package initializer

import (
	"io"
	"log/slog"

	"github.com/amirasaad/bankdesk/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type levelStyle struct {
	level log.Level
	icon  string
	color lipgloss.AdaptiveColor
}

var levelStyles = []levelStyle{
	{log.ErrorLevel, "ERR", lipgloss.AdaptiveColor{Light: "#D32F2F", Dark: "#FF6B6B"}},
	{log.WarnLevel, "WRN", lipgloss.AdaptiveColor{Light: "#C2185B", Dark: "#EE6FF8"}},
	{log.InfoLevel, "INF", lipgloss.AdaptiveColor{Light: "#00897B", Dark: "#04B575"}},
	{log.DebugLevel, "DBG", lipgloss.AdaptiveColor{Light: "#5E35B1", Dark: "#7E57C2"}},
}

// SetupLogger builds the process logger on top of a charm handler writing to w
// and installs it as the slog default. The menu owns stdout, so callers pass stderr.
func SetupLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	styles := log.DefaultStyles()
	for _, ls := range levelStyles {
		styles.Levels[ls.level] = lipgloss.NewStyle().
			SetString(ls.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(ls.color)
	}
	keyColor := levelStyles[len(levelStyles)-1].color
	for _, key := range []string{"error", "prefix", "caller", "time"} {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(keyColor)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(levelStyles[0].color)

	formattersMap := map[string]log.Formatter{
		"json":   log.JSONFormatter,
		"text":   log.TextFormatter,
		"logfmt": log.LogfmtFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger
}
