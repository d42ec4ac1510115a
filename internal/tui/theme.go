package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/matthewfesta/Wordle-Clone/internal/game"
)

type Theme struct {
	Brand   lipgloss.Style
	Winner  lipgloss.Style
	Help    lipgloss.Style
	Error   lipgloss.Style
	Empty   lipgloss.Style
	Typed   lipgloss.Style
	Invalid lipgloss.Style
	Tiles   map[game.Classification]lipgloss.Style
}

func tile() lipgloss.Style {
	return lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Bold(true)
}

func DefaultTheme() Theme {
	return Theme{
		Brand:   lipgloss.NewStyle().Bold(true),
		Winner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		Help:    lipgloss.NewStyle().Faint(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Empty:   tile().Faint(true),
		Typed:   tile().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
		Invalid: tile().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")),
		Tiles: map[game.Classification]lipgloss.Style{
			game.Correct: tile().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("71")),
			game.Present: tile().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("178")),
			game.Absent:  tile().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("240")),
		},
	}
}
