package controllers

import (
	"strings"
	"sync"

	"solicitudes-admin/internal/api"

	"go.uber.org/zap"
)

// Severidades de notificación, el análogo de los toasts de la vista
const (
	SeveridadExito       = "success"
	SeveridadAdvertencia = "warn"
	SeveridadError       = "error"
)

// Resúmenes estándar
const (
	ResumenExito       = "Éxito"
	ResumenAdvertencia = "Advertencia"
	ResumenError       = "Error"
)

// Notificacion mensaje dirigido al usuario
type Notificacion struct {
	Severidad string
	Resumen   string
	Detalle   string
}

// Notifier recibe las notificaciones de los controladores; lo implementa
// la capa de presentación que consuma este módulo.
type Notifier interface {
	Notificar(n Notificacion)
}

type zapNotifier struct {
	logger *zap.Logger
}

// NewZapNotifier notifica al log estructurado; es la implementación por
// defecto cuando no hay interfaz de usuario conectada.
func NewZapNotifier(logger *zap.Logger) Notifier {
	return &zapNotifier{logger: logger}
}

func (z *zapNotifier) Notificar(n Notificacion) {
	campos := []zap.Field{
		zap.String("resumen", n.Resumen),
		zap.String("detalle", n.Detalle),
	}
	switch n.Severidad {
	case SeveridadError:
		z.logger.Error("notificación", campos...)
	case SeveridadAdvertencia:
		z.logger.Warn("notificación", campos...)
	default:
		z.logger.Info("notificación", campos...)
	}
}

// NotifierRecorder acumula notificaciones; para tests
type NotifierRecorder struct {
	mu             sync.Mutex
	Notificaciones []Notificacion
}

func (r *NotifierRecorder) Notificar(n Notificacion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notificaciones = append(r.Notificaciones, n)
}

// Ultima devuelve la notificación más reciente, o una vacía
func (r *NotifierRecorder) Ultima() Notificacion {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Notificaciones) == 0 {
		return Notificacion{}
	}
	return r.Notificaciones[len(r.Notificaciones)-1]
}

// notificarExito toast de éxito estándar
func notificarExito(n Notifier, detalle string) {
	n.Notificar(Notificacion{Severidad: SeveridadExito, Resumen: ResumenExito, Detalle: detalle})
}

// notificarErrorMutacion traduce el error clasificado de un create/update
// a la notificación correspondiente. Es la única rama por status code:
// todos los recursos pasan por acá.
func notificarErrorMutacion(n Notifier, err error, conflicto, generico string) {
	switch api.Classify(err) {
	case api.KindValidation:
		detalle := strings.Join(api.Mensajes(err), " | ")
		if detalle == "" {
			detalle = generico
		}
		n.Notificar(Notificacion{Severidad: SeveridadAdvertencia, Resumen: ResumenAdvertencia, Detalle: detalle})
	case api.KindNotFound:
		n.Notificar(Notificacion{Severidad: SeveridadAdvertencia, Resumen: ResumenAdvertencia, Detalle: "Recurso no encontrado"})
	case api.KindConflict:
		detalle := primerMensaje(err, conflicto)
		n.Notificar(Notificacion{Severidad: SeveridadAdvertencia, Resumen: ResumenAdvertencia, Detalle: detalle})
	default:
		n.Notificar(Notificacion{Severidad: SeveridadError, Resumen: ResumenError, Detalle: generico})
	}
}

// notificarErrorBorrado un 409 en un delete significa registros
// dependientes y se muestra como advertencia, no como error
func notificarErrorBorrado(n Notifier, err error, dependientes, generico string) {
	if api.Classify(err) == api.KindConflict {
		detalle := primerMensaje(err, dependientes)
		n.Notificar(Notificacion{Severidad: SeveridadAdvertencia, Resumen: ResumenAdvertencia, Detalle: detalle})
		return
	}
	detalle := primerMensaje(err, generico)
	n.Notificar(Notificacion{Severidad: SeveridadError, Resumen: ResumenError, Detalle: detalle})
}

func primerMensaje(err error, fallback string) string {
	if msgs := api.Mensajes(err); len(msgs) > 0 && msgs[0] != "" {
		return msgs[0]
	}
	return fallback
}
