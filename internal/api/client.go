package api

import (
	"bytes"
	"context"
	"fmt"
	"mime"

	"solicitudes-admin/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// TokenSource entrega el bearer token vigente. Lo implementa la sesión;
// se inyecta explícitamente en lugar de leer un singleton global.
type TokenSource interface {
	Token() string
}

// Client es el único cliente HTTP configurado contra el backend.
// Adjunta el bearer token en cada petición; el Content-Type JSON lo pone
// la capa HTTP salvo en cuerpos multipart, donde se arma solo.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// New crea el cliente con base URL y timeout de la configuración
func New(cfg config.APIConfig, tokens TokenSource, logger *zap.Logger) *Client {
	r := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	r.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if tokens != nil {
			if t := tokens.Token(); t != "" {
				req.SetHeader("Authorization", "Bearer "+t)
			}
		}
		return nil
	})

	return &Client{http: r, logger: logger}
}

// Get emite un GET con query params y deserializa el JSON en out
func (c *Client) Get(ctx context.Context, path string, query map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Get(path)
	return c.revisar(resp, err, "GET", path)
}

// Post emite un POST con cuerpo JSON
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Post(path)
	return c.revisar(resp, err, "POST", path)
}

// Put emite un PUT con cuerpo JSON
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Put(path)
	return c.revisar(resp, err, "PUT", path)
}

// Patch emite un PATCH con cuerpo JSON
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Patch(path)
	return c.revisar(resp, err, "PATCH", path)
}

// Delete emite un DELETE
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	req := c.http.R().SetContext(ctx)
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Delete(path)
	return c.revisar(resp, err, "DELETE", path)
}

// PostMultipart sube un archivo como formulario multipart.
// No se fija Content-Type manualmente: resty arma el boundary.
func (c *Client) PostMultipart(ctx context.Context, path, campo, nombre string, contenido []byte, out any) error {
	req := c.http.R().SetContext(ctx).
		SetFileReader(campo, nombre, bytes.NewReader(contenido))
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Post(path)
	return c.revisar(resp, err, "POST", path)
}

// Archivo contenido binario descargado del backend
type Archivo struct {
	Contenido []byte
	Nombre    string
	TipoMIME  string
}

// Download trae un payload binario y extrae nombre y tipo de los headers
func (c *Client) Download(ctx context.Context, path string) (*Archivo, error) {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err := c.revisar(resp, err, "GET", path); err != nil {
		return nil, err
	}

	archivo := &Archivo{
		Contenido: resp.Body(),
		TipoMIME:  resp.Header().Get("Content-Type"),
	}
	if archivo.TipoMIME == "" {
		archivo.TipoMIME = "application/octet-stream"
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			archivo.Nombre = params["filename"]
		}
	}
	return archivo, nil
}

// revisar convierte fallas de red y respuestas no-2xx en errores tipados
func (c *Client) revisar(resp *resty.Response, err error, metodo, path string) error {
	if err != nil {
		c.logger.Error("fallo de red",
			zap.String("metodo", metodo),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", metodo, path, err)
	}
	if resp.IsError() {
		apiErr := parseAPIError(resp.StatusCode(), resp.Body())
		c.logger.Warn("respuesta de error del backend",
			zap.String("metodo", metodo),
			zap.String("path", path),
			zap.Int("status", apiErr.StatusCode))
		return apiErr
	}
	return nil
}
