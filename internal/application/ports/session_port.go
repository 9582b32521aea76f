package ports

// TokenStore define el puerto de almacenamiento durable del token bearer.
// El cliente HTTP lo lee en cada petición y lo limpia ante un 401; la sesión lo escribe en login/logout.
// Las implementaciones deben ser seguras para uso concurrente (las peticiones salen de goroutines).
type TokenStore interface {
	// Token devuelve el token guardado o "" si no hay sesión.
	Token() string
	// SetToken persiste el token.
	SetToken(token string) error
	// Clear elimina el token del almacenamiento.
	Clear() error
}
