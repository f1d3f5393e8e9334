// Package tui draws the board on a terminal and runs the prompt loop.
package tui

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "github.com/Thomas-X/Checkers/internal/domain"
)

// ClearScreen homes the cursor and clears the terminal before each board.
const ClearScreen = "\x1b[H\x1b[2J"

var (
    lightStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#D9C39A")).Foreground(lipgloss.Color("#000000"))
    darkStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#6B4226")).Foreground(lipgloss.Color("#FFFFFF"))
    labelStyle  = lipgloss.NewStyle().Faint(true)
    titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00AF00"))
    whiteStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
    blackStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
    hitStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#AF00AF"))
    errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
    bannerStyle = lipgloss.NewStyle().MarginLeft(4)
)

// Glyph returns the symbol drawn for c.
func Glyph(c domain.Cell) string {
    switch c {
    case domain.EmptyLight:
        return " "
    case domain.EmptyDark:
        return "·"
    case domain.FilledLightWhite:
        return "◇"
    case domain.FilledLightBlack:
        return "◆"
    case domain.FilledDarkWhite:
        return "○"
    case domain.FilledDarkBlack:
        return "●"
    default:
        return "?"
    }
}

func cellStyle(c domain.Cell) lipgloss.Style {
    switch c {
    case domain.EmptyLight, domain.FilledLightWhite, domain.FilledLightBlack:
        return lightStyle
    default:
        return darkStyle
    }
}

// Render draws the board with column letters, 1-based row numbers and the
// turn banner to its right.
func Render(g *domain.Game) string {
    var b strings.Builder
    rows := g.Board.Rows()
    label := len(fmt.Sprint(len(rows)))

    b.WriteString(strings.Repeat(" ", label+1))
    for x := 0; x < g.Board.Width; x++ {
        b.WriteString(labelStyle.Render(fmt.Sprintf(" %c ", 'a'+rune(x))))
    }
    b.WriteString("\n")
    for y, row := range rows {
        b.WriteString(labelStyle.Render(fmt.Sprintf("%*d ", label, y+1)))
        for _, c := range row {
            b.WriteString(cellStyle(c).Render(" " + Glyph(c) + " "))
        }
        b.WriteString("\n")
    }
    return lipgloss.JoinHorizontal(lipgloss.Center, b.String(), bannerStyle.Render(Banner(g)))
}

// Banner is the title, whose turn it is and any pending hit.
func Banner(g *domain.Game) string {
    lines := []string{titleStyle.Render("Welcome to RETRO Checkers!")}
    if g.Turn == domain.White {
        lines = append(lines, whiteStyle.Render("It is white's turn."))
    } else {
        lines = append(lines, blackStyle.Render("It is black's turn."))
    }
    if g.HitRequired {
        lines = append(lines, hitStyle.Render("A hit is required!"))
    }
    return strings.Join(lines, "\n")
}

// Failure formats a rejected input or move.
func Failure(msg string, retry string) string {
    return errorStyle.Render(msg) + " Please try again in " + retry + "."
}

// Winner announces the side left on the board.
func Winner(p domain.Player) string {
    name := "White"
    if p == domain.Black {
        name = "Black"
    }
    return titleStyle.Render(name + " wins!")
}
