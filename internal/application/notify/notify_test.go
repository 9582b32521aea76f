package notify_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/notify"
)

// manualClock acumula los callbacks programados para dispararlos a mano.
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) notify.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{d: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// fire ejecuta el temporizador i aunque se haya detenido (simula la carrera Stop/disparo).
func (c *manualClock) fire(i int) {
	c.mu.Lock()
	t := c.timers[i]
	c.mu.Unlock()
	t.f()
}

func TestShowToast_TTLYCierre(t *testing.T) {
	clock := &manualClock{}
	s := notify.New(notify.WithAfterFunc(clock.AfterFunc))

	s.Success("Saved")
	toast, ok := s.Toast()
	require.True(t, ok)
	assert.Equal(t, notify.Success, toast.Kind)
	assert.Equal(t, "Saved", toast.Message)
	require.Len(t, clock.timers, 1)
	assert.Equal(t, notify.DefaultTTL, clock.timers[0].d)

	clock.fire(0)
	_, ok = s.Toast()
	assert.False(t, ok)
}

func TestShowToast_ElUltimoGana(t *testing.T) {
	clock := &manualClock{}
	s := notify.New(notify.WithAfterFunc(clock.AfterFunc), notify.WithTTL(time.Second))

	s.Error("first")
	s.Info("second")
	toast, _ := s.Toast()
	assert.Equal(t, "second", toast.Message)
	assert.True(t, clock.timers[0].stopped)

	// el temporizador del primero no cierra el segundo
	clock.fire(0)
	toast, ok := s.Toast()
	require.True(t, ok)
	assert.Equal(t, "second", toast.Message)

	clock.fire(1)
	_, ok = s.Toast()
	assert.False(t, ok)
}

func TestOnChange(t *testing.T) {
	clock := &manualClock{}
	s := notify.New(notify.WithAfterFunc(clock.AfterFunc))
	n := 0
	s.OnChange(func() { n++ })

	s.Info("x")
	clock.fire(0)
	s.DismissToast() // ya no hay toast: no repinta
	assert.Equal(t, 2, n)
}

func TestConfirm_AcceptYCancel(t *testing.T) {
	s := notify.New()
	called := 0

	s.Confirm(notify.ConfirmOptions{Title: "Remove staff", Message: "Are you sure?", OnConfirm: func() { called++ }})
	d, ok := s.Dialog()
	require.True(t, ok)
	assert.Equal(t, "Confirm", d.ConfirmLabel)

	s.Cancel()
	assert.Zero(t, called)
	_, ok = s.Dialog()
	assert.False(t, ok)

	s.Confirm(notify.ConfirmOptions{Title: "Remove staff", OnConfirm: func() { called++ }})
	s.Accept()
	assert.Equal(t, 1, called)
	_, ok = s.Dialog()
	assert.False(t, ok)

	// sin diálogo abierto Accept no hace nada
	s.Accept()
	assert.Equal(t, 1, called)
}

func TestConfirm_ReemplazaAlAnterior(t *testing.T) {
	s := notify.New()
	var got string
	s.Confirm(notify.ConfirmOptions{Title: "A", OnConfirm: func() { got = "A" }})
	s.Confirm(notify.ConfirmOptions{Title: "B", OnConfirm: func() { got = "B" }})
	s.Accept()
	assert.Equal(t, "B", got)
}
