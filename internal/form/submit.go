package form

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sink receives submitted records.
type Sink interface {
	Record(r Record) error
}

// Submit validates r and hands it to sink. A record that fails validation
// never reaches the sink.
func Submit(r Record, sink Sink) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := sink.Record(r); err != nil {
		return fmt.Errorf("record submission: %w", err)
	}
	return nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A3A3A3")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E5E5"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#404040")).
			Padding(0, 1)
)

// LogSink writes each record to a logger as a bordered key/value block.
type LogSink struct {
	Logger *log.Logger
}

// NewLogSink returns a sink that logs to logger.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{Logger: logger}
}

func (s *LogSink) Record(r Record) error {
	s.Logger.Print("Form Submitted:\n" + Render(r))
	return nil
}

// Render formats r as a bordered block, one field per line.
func Render(r Record) string {
	lines := make([]string, 0, len(Fields)+1)
	lines = append(lines, titleStyle.Render("Form Submitted"))
	for _, f := range Fields {
		lines = append(lines, keyStyle.Render(f.Name())+" "+valueStyle.Render(quote(r.Get(f))))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
}
