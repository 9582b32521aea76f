// Package tui pinta las pantallas de la consola con bubbletea.
//
// Update es el único hilo que toca el estado de los controladores. Cada listing.Pending se
// ejecuta como tea.Cmd en su propia goroutine y el Commit resultante vuelve como commitMsg
// para aplicarse aquí. Tras cada mensaje se recoge el trabajo diferido del Env y se monta
// la pantalla que piden la sesión y el router.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/listing"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/screen"
)

type commitMsg struct{ commit listing.Commit }

// repaintMsg llega desde fuera de Update (timer del toast) solo para repintar.
type repaintMsg struct{}

// SessionExpiredMsg el backend respondió 401; el token ya fue purgado por el cliente.
type SessionExpiredMsg struct{}

type debounceMsg struct{ seq uint64 }

// Model modelo raíz de bubbletea.
type Model struct {
	env *screen.Env
	set *screen.Set

	width  int
	height int

	ready   bool
	authed  bool
	mounted navigation.State
	current screen.Screen // nil mientras se muestra el login

	cursor    int
	focus     int
	formID    string
	searching bool
	query     string // búsqueda remota del catálogo

	input   textinput.Model
	bound   *string
	spinner spinner.Model
	help    help.Model
}

// New construye el modelo sobre controladores ya creados.
func New(env *screen.Env, set *screen.Set) *Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 255
	in.Width = 40
	in.Cursor.SetMode(cursor.CursorStatic)
	return &Model{
		env:     env,
		set:     set,
		input:   in,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
	}
}

// Run arranca el programa en pantalla alternativa hasta ctrl+c o la cancelación de ctx.
// hook recibe la función que el cliente HTTP debe invocar ante un 401.
func Run(ctx context.Context, m *Model, hook func(func())) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	// Send bloquea si se invoca desde el propio Update, por eso va en goroutine.
	m.env.Notify.OnChange(func() { go p.Send(repaintMsg{}) })
	if hook != nil {
		hook(func() { go p.Send(SessionExpiredMsg{}) })
	}
	_, err := p.Run()
	m.env.Notify.OnChange(nil)
	if m.current != nil {
		m.current.Leave()
	}
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.sync())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	case commitMsg:
		cmds = append(cmds, run(msg.commit()))
	case debounceMsg:
		if m.authed && m.mounted.View == navigation.Inventory {
			cmds = append(cmds, run(m.set.Inventory.Fire(msg.seq)))
		}
	case SessionExpiredMsg:
		m.env.Session.Expire()
		m.env.Router.Reset()
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))
	}
	for _, p := range m.env.TakeDeferred() {
		cmds = append(cmds, run(p))
	}
	cmds = append(cmds, m.sync())
	m.bindInput()
	return m, tea.Batch(cmds...)
}

// run ejecuta la parte bloqueante de p fuera del hilo de UI.
func run(p listing.Pending) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		c := p()
		if c == nil {
			return nil
		}
		return commitMsg{commit: c}
	}
}

// sync monta la pantalla que corresponde a la sesión y al router cuando cambiaron.
func (m *Model) sync() tea.Cmd {
	authed := m.env.Session.Authenticated()
	st := m.env.Router.State()
	if m.ready && authed == m.authed && (!authed || st == m.mounted) {
		return nil
	}
	m.ready = true
	if m.current != nil {
		m.current.Leave()
		m.current = nil
	}
	m.authed, m.mounted = authed, st
	m.cursor, m.focus, m.formID, m.searching = 0, 0, "", false
	m.unbind()
	if !authed {
		m.env.Notify.Cancel()
		return nil
	}
	sc, err := m.set.For(st.View)
	if err != nil {
		m.env.Log.Error().Err(err).Msg("tui: montar vista")
		return nil
	}
	m.current = sc
	if st.View == navigation.Inventory {
		m.query = m.set.Inventory.Query()
	}
	m.env.Log.Debug().Str("view", string(st.View)).Msg("vista montada")
	return run(sc.Mount())
}

func (m *Model) navigate(err error) {
	if err != nil {
		m.env.Fail("navigate", err)
	}
}

func (m *Model) back() {
	if m.current == nil || m.mounted.View == navigation.Dashboard {
		return
	}
	m.navigate(m.env.Router.Navigate(m.current.Parent(), ""))
}

// move desplaza el cursor de lista dentro de [0, n).
func (m *Model) move(delta, n int) {
	m.cursor = clamp(m.cursor+delta, n)
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
