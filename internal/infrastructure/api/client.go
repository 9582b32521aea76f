// Package api implementa el cliente REST del backend super-admin.
//
// Todas las llamadas pasan por Client.Request: arma cabeceras (JSON o multipart, Bearer
// si hay token), ejecuta la petición, trata el 401 como fin de sesión y normaliza el
// envelope {success, data, message, errors} en *Error. Los wrappers con nombre
// (superadmin.go) fijan método, ruta y forma del cuerpo; no hay reintentos ni caché.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/ports"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain"
	"github.com/videeinfotech/sultan-super-admin-app/pkg/logger"
	"github.com/videeinfotech/sultan-super-admin-app/pkg/validation"
)

// maxResponseBytes límite de lectura del cuerpo de respuesta.
const maxResponseBytes = 4 << 20

// Options configura el cliente.
type Options struct {
	BaseURL        string
	Tokens         ports.TokenStore
	Timeout        time.Duration // 0 = sin timeout
	HTTPClient     *http.Client  // opcional; si es nil se crea uno con Timeout
	OnUnauthorized func()        // se invoca tras limpiar el token ante un 401
	Logger         *logger.Logger
}

// Client cliente HTTP del backend.
type Client struct {
	baseURL    string
	tokens     ports.TokenStore
	httpClient *http.Client
	log        *logger.Logger
	validate   *validator.Validate

	mu             sync.RWMutex
	onUnauthorized func()
}

var _ ports.SuperAdminAPI = (*Client)(nil)

// New construye el cliente.
func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		tokens:         opts.Tokens,
		httpClient:     hc,
		log:            log,
		validate:       validation.New(),
		onUnauthorized: opts.OnUnauthorized,
	}
}

// BaseURL devuelve la URL base efectiva.
func (c *Client) BaseURL() string { return c.baseURL }

// SetOnUnauthorized reemplaza el hook de 401 (la UI lo registra después de crear el programa).
func (c *Client) SetOnUnauthorized(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

// Multipart cuerpo multipart/form-data con un archivo.
type Multipart struct {
	Field    string
	Filename string
	Reader   io.Reader
	Fields   map[string]string
}

// RequestOptions parámetros opcionales de Request.
type RequestOptions struct {
	Query     url.Values
	Body      any        // se serializa como JSON
	Multipart *Multipart // excluyente con Body
	Headers   http.Header
}

// Request ejecuta una llamada y devuelve el envelope exitoso.
//
// Fallos:
//   - transporte o cuerpo no JSON → *Error{Kind: KindNetwork} con el mensaje genérico.
//   - 401 → limpia el token, dispara OnUnauthorized y devuelve KindUnauthorized.
//   - no-2xx o success:false → mensaje del servidor y errores por campo.
//   - ctx cancelado → el error del contexto, sin clasificar.
func (c *Client) Request(ctx context.Context, method, path string, opts RequestOptions) (*dto.Envelope, error) {
	target := c.baseURL + path
	if len(opts.Query) > 0 {
		target += "?" + opts.Query.Encode()
	}

	body, contentType, err := encodeBody(opts)
	if err != nil {
		return nil, fmt.Errorf("api: serializar cuerpo de %s %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("api: crear request %s %s: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Request-ID", requestID)
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	for k, vs := range opts.Headers {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("api: %s %s cancelada: %w", method, path, ctx.Err())
		}
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("api: llamada HTTP fallida")
		return nil, &Error{Kind: KindNetwork, Message: domain.DefaultMessage, RequestID: requestID, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Str("request_id", requestID).
		Msg("api request")

	if resp.StatusCode == http.StatusUnauthorized {
		c.expireSession()
		return nil, &Error{Kind: KindUnauthorized, Status: resp.StatusCode, Message: "Unauthenticated", RequestID: requestID}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("api: %s %s cancelada: %w", method, path, ctx.Err())
		}
		return nil, &Error{Kind: KindNetwork, Status: resp.StatusCode, Message: domain.DefaultMessage, RequestID: requestID, Err: err}
	}
	if resp.StatusCode == http.StatusNoContent && len(bytes.TrimSpace(raw)) == 0 {
		return &dto.Envelope{Success: true}, nil
	}

	var env dto.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &Error{Kind: KindNetwork, Status: resp.StatusCode, Message: domain.DefaultMessage, RequestID: requestID,
			Err: fmt.Errorf("api: deserializar respuesta: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		apiErr := fromEnvelope(resp.StatusCode, env)
		apiErr.RequestID = requestID
		return nil, apiErr
	}
	return &env, nil
}

// expireSession limpia el token y dispara el hook de 401 (equivalente al reload del navegador).
func (c *Client) expireSession() {
	if c.tokens != nil {
		if err := c.tokens.Clear(); err != nil {
			c.log.Error().Err(err).Msg("api: limpiar token tras 401")
		}
	}
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

func encodeBody(opts RequestOptions) (io.Reader, string, error) {
	if opts.Multipart != nil {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		for k, v := range opts.Multipart.Fields {
			if err := w.WriteField(k, v); err != nil {
				return nil, "", err
			}
		}
		part, err := w.CreateFormFile(opts.Multipart.Field, opts.Multipart.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, opts.Multipart.Reader); err != nil {
			return nil, "", err
		}
		if err := w.Close(); err != nil {
			return nil, "", err
		}
		return &buf, w.FormDataContentType(), nil
	}
	if opts.Body == nil {
		return nil, "application/json", nil
	}
	raw, err := json.Marshal(opts.Body)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(raw), "application/json", nil
}

// decode deserializa env.Data en T y lo valida contra sus tags `validate`.
func decode[T any](c *Client, env *dto.Envelope) (*T, error) {
	var out T
	if err := c.unmarshalData(env, &out); err != nil {
		return nil, err
	}
	if err := c.validate.Struct(&out); err != nil {
		return nil, invalidResponse(err)
	}
	return &out, nil
}

// decodeList deserializa una lista y valida cada elemento.
func decodeList[T any](c *Client, env *dto.Envelope) ([]T, error) {
	var out []T
	if err := c.unmarshalData(env, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if err := c.validate.Struct(&out[i]); err != nil {
			return nil, invalidResponse(err)
		}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (c *Client) unmarshalData(env *dto.Envelope, dst any) error {
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return &Error{Kind: KindNetwork, Message: domain.DefaultMessage, Err: fmt.Errorf("api: respuesta sin data")}
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return &Error{Kind: KindNetwork, Message: domain.DefaultMessage, Err: fmt.Errorf("api: deserializar data: %w", err)}
	}
	return nil
}

func invalidResponse(err error) error {
	return &Error{Kind: KindNetwork, Message: domain.DefaultMessage, Err: fmt.Errorf("api: respuesta inválida: %w", err)}
}
