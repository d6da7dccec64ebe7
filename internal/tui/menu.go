package tui

import (
	"github.com/jfmyers9/tidalbar/internal/display"
	"github.com/jfmyers9/tidalbar/internal/playback"
)

// Icon stands in for the TIDAL logo in the title line
const Icon = "♫"

// Item is one actionable menu entry
type Item struct {
	Label  string
	Key    rune
	Action func()
}

// Section is a titled group of items
type Section struct {
	Title string
	Items []Item
}

// Menu is the declarative description of what the surface shows
type Menu struct {
	Icon     string
	Title    string // Empty when nothing is playing
	Tooltip  string
	Loading  bool
	Sections []Section
}

// Actions are the callbacks the menu can trigger
type Actions struct {
	Verbs   playback.Verbs
	Open    func()
	Refresh func()
	Quit    func()
}

// BuildMenu describes the menu for snap.
// Playback items only appear while a track is shown.
func BuildMenu(snap playback.Snapshot, actions Actions) Menu {
	m := Menu{
		Icon:    Icon,
		Loading: snap.Loading,
	}

	if snap.Display != nil && snap.Display.Source != "" {
		m.Title = snap.Display.Short
		m.Tooltip = snap.Display.Full
		m.Sections = append(m.Sections, Section{
			Title: snap.Display.Full,
			Items: []Item{
				{Label: "Pause", Key: 'p', Action: actions.Verbs.Pause},
				{Label: "Next Song", Key: 'n', Action: actions.Verbs.Next},
				{Label: "Previous Song", Key: 'b', Action: actions.Verbs.Previous},
				{Label: "Shuffle", Key: 's', Action: actions.Verbs.Shuffle},
			},
		})
	}

	m.Sections = append(m.Sections, Section{
		Items: []Item{
			{Label: "Open TIDAL", Key: 'o', Action: actions.Open},
			{Label: "Refresh", Key: 'r', Action: actions.Refresh},
			{Label: "Quit", Key: 'q', Action: actions.Quit},
		},
	})

	return m
}

// TitleLine renders the icon, title and loading marker padded to width columns
func TitleLine(m Menu, width int) string {
	line := m.Icon
	if m.Title != "" {
		line += " " + m.Title
	}
	if m.Loading {
		line += " ⟳"
	}
	return display.PadToWidth(line, width)
}
