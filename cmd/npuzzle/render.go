package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quenlan/npuzzle/board"
)

// Terminal palette for the puzzle renderer.
var (
	colorTile   = lipgloss.Color("#FFFFFF") // plain tiles
	colorSolved = lipgloss.Color("#2CD7C7") // final (solved) board highlight
	colorBlank  = lipgloss.Color("#2C4A54") // the blank slot
	colorLabel  = lipgloss.Color("#20B9B4") // step labels and headers
	colorError  = lipgloss.Color("#E74C3C")
)

// styles provides pre-configured lipgloss styles for the CLI.
var styles = struct {
	Tile   lipgloss.Style
	Solved lipgloss.Style
	Blank  lipgloss.Style
	Label  lipgloss.Style
	Error  lipgloss.Style
	Frame  lipgloss.Style
}{
	Tile:   lipgloss.NewStyle().Bold(true).Foreground(colorTile),
	Solved: lipgloss.NewStyle().Bold(true).Foreground(colorSolved),
	Blank:  lipgloss.NewStyle().Foreground(colorBlank),
	Label:  lipgloss.NewStyle().Bold(true).Foreground(colorLabel),
	Error:  lipgloss.NewStyle().Bold(true).Foreground(colorError),
	Frame: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorLabel).
		Padding(0, 1),
}

// renderBoard draws b as a framed 3×3 grid. When solved is true every tile
// takes the highlight color, marking the last frame of a replay.
func renderBoard(b board.Board, solved bool) string {
	tile := styles.Tile
	if solved {
		tile = styles.Solved
	}

	rows := make([]string, 0, board.Size)
	for r := 0; r < board.Size; r++ {
		cells := make([]string, 0, board.Size)
		for c := 0; c < board.Size; c++ {
			if b[r][c] == board.Blank {
				cells = append(cells, styles.Blank.Render("·"))
				continue
			}
			cells = append(cells, tile.Render(fmt.Sprintf("%d", b[r][c])))
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	return styles.Frame.Render(strings.Join(rows, "\n"))
}
