package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Back     key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Search   key.Binding
	Reload   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Submit   key.Binding
	Toggle   key.Binding
	Accept   key.Binding
	Cancel   key.Binding
	Period   key.Binding
	Profile  key.Binding
	Shortcut key.Binding
	TabLeft  key.Binding
	TabRight key.Binding
	Export   key.Binding
	Sort     key.Binding
	Add      key.Binding
	Remove   key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Next:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:     key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Toggle:   key.NewBinding(key.WithKeys(" ", "left", "right"), key.WithHelp("space", "toggle")),
	Accept:   key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirm")),
	Cancel:   key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
	Period:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "period")),
	Profile:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "account")),
	Shortcut: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "open module")),
	TabLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev tab")),
	TabRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next tab")),
	Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export pdf")),
	Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Add:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add")),
	Remove:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
}
