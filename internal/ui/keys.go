package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Deck navigation
	NextTab   key.Binding
	PrevTab   key.Binding
	Digit     key.Binding
	Home      key.Binding
	DragLeft  key.Binding
	DragRight key.Binding

	// Strip
	StripLeft  key.Binding
	StripRight key.Binding

	// Layout toggles
	ToggleAlign key.Binding
	ToggleFixed key.Binding
	AddTab      key.Binding
	RemoveTab   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("l/→", "Next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("h/←", "Previous tab"),
		),
		Digit: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Jump to tab"),
		),
		Home: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "First tab, no glide"),
		),
		DragLeft: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "Drag deck left"),
		),
		DragRight: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "Drag deck right"),
		),

		StripLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Scroll strip left"),
		),
		StripRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Scroll strip right"),
		),

		ToggleAlign: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Toggle alignment"),
		),
		ToggleFixed: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Toggle fixed width"),
		),
		AddTab: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Add tab"),
		),
		RemoveTab: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Remove tab"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Digit, k.Home},
		{k.DragLeft, k.DragRight, k.StripLeft, k.StripRight},
		{k.ToggleAlign, k.ToggleFixed, k.AddTab, k.RemoveTab},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
