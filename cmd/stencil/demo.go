package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/zoobzio/stencil"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo <pattern>",
		Short: "Interactively type into a masked field",
		Long: `Open a terminal field masked by the given pattern. Characters are
formatted as you type, arrow keys jump between valid caret positions, and
the recovered raw value is shown below the field.

Press Esc or Ctrl+C to exit.

Examples:
  stencil demo "(999) 999-9999"
  stencil demo --presets masks.yaml us-phone`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, args[0])
		},
	}

	return cmd
}

// demoField adapts the demo's single input line to the mask controller.
type demoField struct {
	display string
	caret   int
}

func (f *demoField) Value() string         { return f.display }
func (f *demoField) Selection() (int, int) { return f.caret, f.caret }
func (f *demoField) SetSelection(pos int)  { f.caret = pos }

// queueScheduler defers callbacks until the event handler has settled the
// field, mirroring how a browser applies an edit before change handlers
// read it back.
type queueScheduler struct {
	queue []func()
}

func (s *queueScheduler) Defer(fn func())                      { s.queue = append(s.queue, fn) }
func (s *queueScheduler) DeferFor(fn func(), _ time.Duration) { s.queue = append(s.queue, fn) }

func (s *queueScheduler) flush() {
	for len(s.queue) > 0 {
		fn := s.queue[0]
		s.queue = s.queue[1:]
		fn()
	}
}

func runDemo(cmd *cobra.Command, patternArg string) error {
	sched := &queueScheduler{}

	var complete string
	m, err := resolveMask(cmd, patternArg,
		stencil.WithScheduler(sched),
		stencil.WithOnComplete(func(value string) { complete = value }),
	)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	field := &demoField{}
	stored := ""

	// settle runs an edit through normalization and redraws the field the
	// way the mask wants it shown.
	settle := func(edited string, editedCaret int) {
		field.display = edited
		field.caret = editedCaret
		m.OnChange(field)

		stored = m.Normalize(edited, stored)
		field.display = m.Format(stored)
		sched.flush()
	}

	m.OnFocus(field)
	sched.flush()

	for {
		draw(screen, m.Pattern(), field, stored, complete)

		ev := screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		switch key.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return nil
		case tcell.KeyLeft:
			m.OnKeyDown(field, stencil.KeyArrowLeft)
			sched.flush()
		case tcell.KeyRight:
			m.OnKeyDown(field, stencil.KeyArrowRight)
			sched.flush()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			value := []rune(field.display)
			if field.caret > 0 && field.caret <= len(value) {
				edited := string(value[:field.caret-1]) + string(value[field.caret:])
				settle(edited, field.caret-1)
			}
		case tcell.KeyRune:
			value := []rune(field.display)
			pos := field.caret
			if pos > len(value) {
				pos = len(value)
			}
			edited := string(value[:pos]) + string(key.Rune()) + string(value[pos:])
			settle(edited, pos+1)
		}
	}
}

func draw(screen tcell.Screen, pattern string, field *demoField, stored, complete string) {
	screen.Clear()

	style := tcell.StyleDefault
	dim := style.Foreground(tcell.ColorGray)

	drawText(screen, 2, 1, dim, "Pattern:  "+pattern)
	drawText(screen, 2, 3, style, "Input:    "+field.display)
	drawText(screen, 2, 5, dim, "Stored:   "+stored)
	if complete != "" {
		drawText(screen, 2, 7, style.Foreground(tcell.ColorGreen), "Complete: "+complete)
	}
	drawText(screen, 2, 9, dim, "Arrows move, Backspace deletes, Esc quits")

	screen.ShowCursor(2+len("Input:    ")+field.caret, 3)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
