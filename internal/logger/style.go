package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

const (
	ColorTeal40    = "#3ddbd9"
	ColorBlue60    = "#4589ff"
	ColorBlue40    = "#78a9ff"
	ColorRed60     = "#da1e28"
	ColorRedStrong = "#ff0000"
	ColorOrange40  = "#ff832b"
	ColorGray60    = "#8d8d8d"
	ColorGray10    = "#f4f4f4"
)

// Styles holds the lipgloss styles used by the console writer.
type Styles struct {
	Timestamp lipgloss.Style
	Message   lipgloss.Style
	Key       lipgloss.Style
	Levels    map[string]string // level name -> background colour
}

func DefaultStyles() *Styles {
	return &Styles{
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray10)),
		Key:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
		Levels: map[string]string{
			"debug": ColorTeal40,
			"info":  ColorBlue60,
			"warn":  ColorOrange40,
			"error": ColorRed60,
			"fatal": ColorRedStrong,
		},
	}
}

// ConsoleWriter builds a zerolog.ConsoleWriter. With plain set, no styling
// or colour codes are emitted.
func ConsoleWriter(out io.Writer, styles *Styles, plain bool) zerolog.ConsoleWriter {
	w := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "01-02 15:04:05",
		NoColor:    plain,
	}
	if plain {
		return w
	}

	w.FormatLevel = func(i any) string {
		lvl := strings.ToLower(fmt.Sprint(i))
		color, ok := styles.Levels[lvl]
		if !ok {
			color = ColorGray60
		}
		label := strings.ToUpper(lvl)
		if len(label) > 3 {
			label = label[:3]
		}
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(color)).
			Padding(0, 1).
			Render(label)
	}
	w.FormatTimestamp = func(i any) string {
		return styles.Timestamp.Render(fmt.Sprintf("[%s]", i))
	}
	w.FormatFieldName = func(i any) string {
		return styles.Key.Render(fmt.Sprint(i)) + "="
	}
	w.FormatMessage = func(i any) string {
		if i == nil {
			return ""
		}
		return styles.Message.Render(fmt.Sprint(i))
	}
	return w
}
