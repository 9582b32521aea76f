package listing

import "time"

// DefaultDebounce ventana de debounce de la búsqueda remota.
const DefaultDebounce = 300 * time.Millisecond

// Scheduled búsqueda programada; la UI debe llamar Fire(Seq) tras Delay.
type Scheduled struct {
	Seq   uint64
	Query string
	Delay time.Duration
}

// Debouncer solo deja pasar la última consulta programada, y una sola vez.
// No es seguro para uso concurrente: vive en el hilo de UI.
type Debouncer struct {
	delay time.Duration
	seq   uint64
	query string
	fired uint64
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{delay: delay}
}

// Type programa una consulta por tecleo.
func (d *Debouncer) Type(query string) Scheduled {
	d.seq++
	d.query = query
	return Scheduled{Seq: d.seq, Query: query, Delay: d.delay}
}

// Open programa la consulta inicial al montar la pantalla, sin espera.
func (d *Debouncer) Open(query string) Scheduled {
	s := d.Type(query)
	s.Delay = 0
	return s
}

// Fire devuelve la consulta si seq es la última programada y aún no se disparó.
func (d *Debouncer) Fire(seq uint64) (string, bool) {
	if seq != d.seq || d.fired == seq {
		return "", false
	}
	d.fired = seq
	return d.query, true
}

// Query última consulta tecleada.
func (d *Debouncer) Query() string { return d.query }
