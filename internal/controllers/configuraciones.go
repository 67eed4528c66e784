package controllers

import (
	"context"
	"sync"

	"solicitudes-admin/internal/models"
	"solicitudes-admin/internal/services"
	"solicitudes-admin/internal/session"

	"go.uber.org/zap"
)

// ConfiguracionesController estado de la vista de configuración global.
// Mantiene la copia original junto al borrador para saber si hay
// cambios sin guardar.
type ConfiguracionesController struct {
	svc      services.ConfiguracionesService
	ses      *session.Store
	notifier Notifier
	logger   *zap.Logger

	mu       sync.Mutex
	enVuelo  int
	original models.Configuracion
	borrador models.Configuracion
	err      error
}

func NewConfiguracionesController(svc services.ConfiguracionesService, ses *session.Store, notifier Notifier, logger *zap.Logger) *ConfiguracionesController {
	return &ConfiguracionesController{
		svc:      svc,
		ses:      ses,
		notifier: notifier,
		logger:   logger,
	}
}

// GetConfiguracion carga la configuración principal
func (c *ConfiguracionesController) GetConfiguracion(ctx context.Context) error {
	c.mu.Lock()
	c.enVuelo++
	c.mu.Unlock()

	cfg, err := c.svc.GetPrincipal(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.enVuelo--
	if err != nil {
		c.err = err
		c.logger.Error("❌ Error cargando configuración", zap.Error(err))
		return err
	}
	c.original = *cfg
	c.borrador = *cfg
	c.err = nil
	return nil
}

// SetBorrador actualiza el borrador en edición
func (c *ConfiguracionesController) SetBorrador(cfg models.Configuracion) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg.ID = c.original.ID
	c.borrador = cfg
}

// HasChanges indica si el borrador difiere de lo último guardado
func (c *ConfiguracionesController) HasChanges() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.borrador != c.original
}

// Descartar vuelve el borrador al último estado guardado
func (c *ConfiguracionesController) Descartar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.borrador = c.original
}

// Save persiste el borrador. Si no hay cambios no llama al backend.
func (c *ConfiguracionesController) Save(ctx context.Context) error {
	c.mu.Lock()
	if c.borrador == c.original {
		c.mu.Unlock()
		c.notifier.Notificar(Notificacion{
			Severidad: SeveridadAdvertencia,
			Resumen:   ResumenAdvertencia,
			Detalle:   "No hay cambios para guardar",
		})
		return nil
	}
	borrador := c.borrador
	c.enVuelo++
	c.mu.Unlock()

	borrador.UsuarioID = c.ses.UsuarioID()
	actualizada, err := c.svc.UpdatePrincipal(ctx, borrador)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.enVuelo--
	if err != nil {
		notificarErrorMutacion(c.notifier, err, "Conflicto al guardar la configuración", "Error al guardar la configuración")
		return err
	}
	c.original = *actualizada
	c.borrador = *actualizada
	notificarExito(c.notifier, "Configuración guardada correctamente")
	return nil
}

func (c *ConfiguracionesController) Configuracion() models.Configuracion {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.borrador
}

func (c *ConfiguracionesController) Cargando() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enVuelo > 0
}

func (c *ConfiguracionesController) Error() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
