package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/jfmyers9/tidalbar/internal/playback"
	"github.com/rivo/tview"
)

// Store is the snapshot source the menu renders
type Store interface {
	Snapshot() playback.Snapshot
	Changed() <-chan struct{}
	Unmount()
}

// App is the terminal menu bar showing TIDAL playback
type App struct {
	app     *tview.Application
	title   *tview.TextView
	section *tview.TextView
	list    *tview.List
	status  *tview.TextView

	store   Store
	actions Actions

	// Last-rendered content for change detection
	lastTitle   string
	lastSection string
	lastItems   string

	// List rows that only separate sections, and the last selectable row
	separators []bool
	lastIndex  int

	cancelFunc context.CancelFunc
}

// New creates a new menu application for store
func New(store Store, actions Actions) *App {
	a := &App{
		app:     tview.NewApplication(),
		store:   store,
		actions: actions,
	}
	if a.actions.Quit == nil {
		a.actions.Quit = a.Stop
	}
	a.setupUI()
	return a
}

// setupUI creates the UI layout
func (a *App) setupUI() {
	// Menu bar title line
	a.title = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	a.title.SetBorder(true)

	// Section header with the wrapped title
	a.section = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)

	// Menu items
	a.list = tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	a.list.SetBorder(true).
		SetTitle(" TIDAL ").
		SetTitleAlign(tview.AlignLeft)
	a.list.SetChangedFunc(a.skipSeparator)

	// Status bar for notices
	a.status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[gray]enter:select  r:refresh  q:quit[-]")

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.title, 3, 0, false).
		AddItem(a.section, 0, 1, false).
		AddItem(a.list, 0, 2, true).
		AddItem(a.status, 1, 0, false)

	a.app.SetInputCapture(a.handleKeyEvent)
	a.app.SetRoot(flex, true)
}

// handleKeyEvent processes keyboard input not handled by the list
func (a *App) handleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC {
		a.actions.Quit()
		return nil
	}
	return event
}

// Notify shows message in the status bar
func (a *App) Notify(message string) {
	a.app.QueueUpdateDraw(func() {
		a.status.SetText(fmt.Sprintf("[yellow]%s[-]", tview.Escape(message)))
	})
}

// Run shows the menu and blocks until it is closed.
// The store is unmounted when Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, a.cancelFunc = context.WithCancel(ctx)
	defer a.cancelFunc()
	defer a.store.Unmount()

	a.render()
	go a.handleUpdates(ctx)

	if err := a.app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// Stop stops the menu application
func (a *App) Stop() {
	if a.cancelFunc != nil {
		a.cancelFunc()
	}
	a.app.Stop()
}

// handleUpdates redraws whenever the store reports a change
func (a *App) handleUpdates(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			a.app.Stop()
			return
		case <-a.store.Changed():
			a.app.QueueUpdateDraw(a.render)
		}
	}
}

// render rebuilds the widgets from the current snapshot.
// Must run on the tview event loop.
func (a *App) render() {
	m := BuildMenu(a.store.Snapshot(), a.actions)

	_, _, width, _ := a.title.GetInnerRect()
	title := TitleLine(m, max(width, 0))
	if m.Title == "" && !m.Loading {
		title = "[gray]" + tview.Escape(title) + "[-]"
	} else {
		title = "[white::b]" + tview.Escape(title) + "[-:-:-]"
	}
	if title != a.lastTitle {
		a.lastTitle = title
		a.title.SetText(title)
	}

	section := "\n[gray]Nothing playing[-]"
	if m.Tooltip != "" {
		section = "\n" + tview.Escape(m.Tooltip)
	}
	if section != a.lastSection {
		a.lastSection = section
		a.section.SetText(section)
	}

	if items := itemsKey(m); items != a.lastItems {
		a.lastItems = items
		a.fillList(m)
	}
}

// fillList replaces the list items, keeping the cursor where possible
func (a *App) fillList(m Menu) {
	current := a.list.GetCurrentItem()
	a.separators = a.separators[:0]
	a.list.Clear()

	for i, s := range m.Sections {
		if i > 0 {
			a.separators = append(a.separators, true)
			a.list.AddItem("[gray]──────────[-]", "", 0, nil)
		}
		for _, item := range s.Items {
			a.separators = append(a.separators, false)
			a.list.AddItem(item.Label, "", item.Key, a.selected(item))
		}
	}

	if current < a.list.GetItemCount() {
		a.list.SetCurrentItem(current)
	}
}

// skipSeparator moves the cursor off separator rows in the direction it was moving
func (a *App) skipSeparator(index int, _, _ string, _ rune) {
	target := skipTarget(a.separators, index, a.lastIndex)
	if target != index {
		a.list.SetCurrentItem(target)
		return
	}
	a.lastIndex = index
}

// skipTarget returns the selectable row nearest to index, searching away from last
func skipTarget(separators []bool, index, last int) int {
	if index < 0 || index >= len(separators) || !separators[index] {
		return index
	}
	step := 1
	if index < last {
		step = -1
	}
	for _, dir := range []int{step, -step} {
		for i := index + dir; i >= 0 && i < len(separators); i += dir {
			if !separators[i] {
				return i
			}
		}
	}
	return index
}

// selected wraps an item action so slow automation never blocks the event loop
func (a *App) selected(item Item) func() {
	if item.Action == nil {
		return nil
	}
	if item.Label == "Quit" {
		return item.Action
	}
	return func() {
		a.status.SetText(fmt.Sprintf("[gray]%s…[-]", tview.Escape(item.Label)))
		go item.Action()
	}
}

// itemsKey identifies the list contents for change detection
func itemsKey(m Menu) string {
	var sb strings.Builder
	for _, s := range m.Sections {
		sb.WriteString("|")
		for _, item := range s.Items {
			sb.WriteString(item.Label)
			sb.WriteString(";")
		}
	}
	return sb.String()
}
