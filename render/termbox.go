// Package render draws game frames onto the terminal with termbox.
package render

import (
	"fmt"

	"github.com/battlesnakeio/termsnake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	headColor    = termbox.ColorYellow
	deadColor    = termbox.ColorWhite
	foodColor    = termbox.ColorRed
	crashColor   = termbox.ColorRed

	// cellWidth is the number of terminal columns per grid cell, which
	// keeps the board roughly square.
	cellWidth = 2
)

// Screen is the part of termbox the renderer draws through.
type Screen interface {
	Clear(fg, bg termbox.Attribute) error
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Flush() error
}

type termboxScreen struct{}

func (termboxScreen) Clear(fg, bg termbox.Attribute) error { return termbox.Clear(fg, bg) }

func (termboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (termboxScreen) Flush() error { return termbox.Flush() }

// Termbox renders frames to the terminal. The board's top left corner sits
// at (Left, Top).
type Termbox struct {
	Left int
	Top  int

	screen Screen
}

// NewTermbox returns a renderer for an initialised termbox terminal.
func NewTermbox() *Termbox {
	return &Termbox{Left: 2, Top: 1, screen: termboxScreen{}}
}

// Render draws one frame and flushes it.
func (t *Termbox) Render(frame rules.GameFrame) error {
	if err := t.screen.Clear(defaultColor, bgColor); err != nil {
		return err
	}

	var (
		top    = t.Top + 1
		bottom = top + frame.Height + 1
		left   = t.Left
		right  = left + frame.Width*cellWidth + 1
	)

	t.renderTitle(left, t.Top, frame)
	t.renderBoard(top, bottom, left, right)
	if frame.HasFood {
		t.renderCell(left, top, frame.Food, ' ', foodColor)
	}
	t.renderSnake(left, top, frame)

	if !frame.Alive {
		if frame.CrashPoint.In(frame.Width, frame.Height) {
			t.renderCell(left, top, frame.CrashPoint, 'X', crashColor)
		}
		t.tbprint(left, bottom+1, termbox.ColorRed|termbox.AttrBold, bgColor, "GAME OVER")
		t.tbprint(left, bottom+2, defaultColor, bgColor, fmt.Sprintf("%s after %d turns", frame.Cause, frame.Turn))
		t.tbprint(left, bottom+3, defaultColor, bgColor, "Press 'q' to exit")
	} else {
		t.tbprint(left, bottom+1, defaultColor, bgColor, "arrows/wasd to steer, q to quit")
	}

	return t.screen.Flush()
}

func (t *Termbox) renderTitle(left, top int, frame rules.GameFrame) {
	t.tbprint(left, top, defaultColor, bgColor, fmt.Sprintf("Snake! - Score %d - Turn %d", frame.Score, frame.Turn))
}

func (t *Termbox) renderBoard(top, bottom, left, right int) {
	for y := top + 1; y < bottom; y++ {
		t.screen.SetCell(left, y, '│', defaultColor, bgColor)
		t.screen.SetCell(right, y, '│', defaultColor, bgColor)
	}
	for x := left + 1; x < right; x++ {
		t.screen.SetCell(x, top, '─', defaultColor, bgColor)
		t.screen.SetCell(x, bottom, '─', defaultColor, bgColor)
	}

	t.screen.SetCell(left, top, '┌', defaultColor, bgColor)
	t.screen.SetCell(left, bottom, '└', defaultColor, bgColor)
	t.screen.SetCell(right, top, '┐', defaultColor, bgColor)
	t.screen.SetCell(right, bottom, '┘', defaultColor, bgColor)
}

func (t *Termbox) renderSnake(left, top int, frame rules.GameFrame) {
	body := snakeColor
	head := headColor
	if !frame.Alive {
		body, head = deadColor, deadColor
	}
	// tail first so the head wins if anything overlaps
	for i := len(frame.Snake) - 1; i >= 0; i-- {
		color := body
		if i == 0 {
			color = head
		}
		t.renderCell(left, top, frame.Snake[i], ' ', color)
	}
}

// renderCell paints grid point p, offset inside the board border.
func (t *Termbox) renderCell(left, top int, p rules.Point, ch rune, bg termbox.Attribute) {
	x := left + 1 + p.X*cellWidth
	y := top + 1 + p.Y
	for i := 0; i < cellWidth; i++ {
		t.screen.SetCell(x+i, y, ch, defaultColor, bg)
	}
}

func (t *Termbox) tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		t.screen.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
