package services

import (
	"context"
	"fmt"

	"solicitudes-admin/internal/api"
	"solicitudes-admin/internal/models"

	"go.uber.org/zap"
)

// Tipos de archivo adjuntos a una solicitud
const (
	ArchivoComprobante = "comprobantePago"
	ArchivoFactura     = "factura"
	ArchivoDress       = "dress"
)

// SolicitudesService recurso /solicitudes: CRUD, cambio de estado,
// archivos adjuntos y listados especiales (hoy, historial, día anterior).
type SolicitudesService interface {
	GetSolicitudes(ctx context.Context, filtros models.FiltrosSolicitud) (*models.SolicitudesList, error)
	GetSolicitud(ctx context.Context, id int) (*models.Solicitud, error)
	CreateSolicitud(ctx context.Context, solicitud models.Solicitud) (*models.Solicitud, error)
	UpdateSolicitud(ctx context.Context, id int, solicitud models.Solicitud) (*models.Solicitud, error)
	DeleteSolicitud(ctx context.Context, id int) error

	// ChangeEstado pide la transición al backend; el cliente no valida
	// ni ordena el vocabulario de estados
	ChangeEstado(ctx context.Context, id int, estado string) (*models.Solicitud, error)

	UploadComprobante(ctx context.Context, id int, nombre string, contenido []byte) error
	UploadFactura(ctx context.Context, id int, nombre string, contenido []byte) error
	UploadDress(ctx context.Context, id int, nombre string, contenido []byte) error
	DownloadComprobante(ctx context.Context, id int) (*api.Archivo, error)
	DownloadFactura(ctx context.Context, id int) (*api.Archivo, error)
	DownloadDress(ctx context.Context, id int) (*api.Archivo, error)
	// ViewArchivo trae el archivo por el canal autenticado para previsualizarlo;
	// el token viaja en el header, nunca como query param
	ViewArchivo(ctx context.Context, id int, tipo string) (*api.Archivo, error)
	DeleteFile(ctx context.Context, id int, tipo string) error

	GetEstadisticas(ctx context.Context) (*models.Estadisticas, error)
	GetSolicitudesHoy(ctx context.Context, filtros models.FiltrosSolicitud) (*models.SolicitudesList, error)
	GetHistorial(ctx context.Context, filtros models.FiltrosSolicitud) (*models.SolicitudesList, error)
	GetSolicitudesPasadas(ctx context.Context, filtros models.FiltrosSolicitud) (*models.SolicitudesList, error)
}

type solicitudesService struct {
	client *api.Client
	logger *zap.Logger
}

// NewSolicitudesService crea una nueva instancia del servicio
func NewSolicitudesService(client *api.Client, logger *zap.Logger) SolicitudesService {
	return &solicitudesService{client: client, logger: logger}
}

// GetSolicitudes obtiene todas las solicitudes con filtros y paginación
func (s *solicitudesService) GetSolicitudes(ctx context.Context, filtros models.FiltrosSolicitud) (*models.SolicitudesList, error) {
	return s.listar(ctx, "/solicitudes", filtros)
}

func (s *solicitudesService) GetSolicitud(ctx context.Context, id int) (*models.Solicitud, error) {
	var solicitud models.Solicitud
	if err := s.client.Get(ctx, fmt.Sprintf("/solicitudes/%d", id), nil, &solicitud); err != nil {
		return nil, err
	}
	return &solicitud, nil
}

// CreateSolicitud crea una nueva solicitud (solo datos, sin archivos)
func (s *solicitudesService) CreateSolicitud(ctx context.Context, solicitud models.Solicitud) (*models.Solicitud, error) {
	var creada models.Solicitud
	if err := s.client.Post(ctx, "/solicitudes", solicitud, &creada); err != nil {
		return nil, err
	}
	return &creada, nil
}

func (s *solicitudesService) UpdateSolicitud(ctx context.Context, id int, solicitud models.Solicitud) (*models.Solicitud, error) {
	var actualizada models.Solicitud
	if err := s.client.Put(ctx, fmt.Sprintf("/solicitudes/%d", id), solicitud, &actualizada); err != nil {
		return nil, err
	}
	return &actualizada, nil
}

func (s *solicitudesService) DeleteSolicitud(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/solicitudes/%d", id), nil)
}

func (s *solicitudesService) ChangeEstado(ctx context.Context, id int, estado string) (*models.Solicitud, error) {
	var actualizada models.Solicitud
	body := map[string]string{"estado": estado}
	if err := s.client.Patch(ctx, fmt.Sprintf("/solicitudes/%d/estado", id), body, &actualizada); err != nil {
		return nil, err
	}
	s.logger.Info("✅ Estado de solicitud cambiado",
		zap.Int("id", id),
		zap.String("estado", estado))
	return &actualizada, nil
}

func (s *solicitudesService) UploadComprobante(ctx context.Context, id int, nombre string, contenido []byte) error {
	path := fmt.Sprintf("/solicitudes/%d/comprobante", id)
	return s.client.PostMultipart(ctx, path, ArchivoComprobante, nombre, contenido, nil)
}

func (s *solicitudesService) UploadFactura(ctx context.Context, id int, nombre string, contenido []byte) error {
	path := fmt.Sprintf("/solicitudes/%d/factura", id)
	return s.client.PostMultipart(ctx, path, ArchivoFactura, nombre, contenido, nil)
}

func (s *solicitudesService) UploadDress(ctx context.Context, id int, nombre string, contenido []byte) error {
	path := fmt.Sprintf("/solicitudes/%d/dress", id)
	return s.client.PostMultipart(ctx, path, ArchivoDress, nombre, contenido, nil)
}

func (s *solicitudesService) DownloadComprobante(ctx context.Context, id int) (*api.Archivo, error) {
	return s.client.Download(ctx, fmt.Sprintf("/solicitudes/%d/comprobante/download", id))
}

func (s *solicitudesService) DownloadFactura(ctx context.Context, id int) (*api.Archivo, error) {
	return s.client.Download(ctx, fmt.Sprintf("/solicitudes/%d/factura/download", id))
}

func (s *solicitudesService) DownloadDress(ctx context.Context, id int) (*api.Archivo, error) {
	return s.client.Download(ctx, fmt.Sprintf("/solicitudes/%d/dress/download", id))
}

func (s *solicitudesService) ViewArchivo(ctx context.Context, id int, tipo string) (*api.Archivo, error) {
	var segmento string
	switch tipo {
	case ArchivoComprobante:
		segmento = "comprobante"
	case ArchivoFactura:
		segmento = "factura"
	case ArchivoDress:
		segmento = "dress"
	default:
		return nil, fmt.Errorf("tipo de archivo desconocido: %s", tipo)
	}
	return s.client.Download(ctx, fmt.Sprintf("/solicitudes/%d/%s/view", id, segmento))
}

func (s *solicitudesService) DeleteFile(ctx context.Context, id int, tipo string) error {
	return s.client.Delete(ctx, fmt.Sprintf("/solicitudes/%d/files/%s", id, tipo), nil)
}

func (s *solicitudesService) GetEstadisticas(ctx context.Context) (*models.Estadisticas, error) {
	var stats models.Estadisticas
	if err := s.client.Get(ctx, "/solicitudes/estadisticas", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetSolicitudesHoy solicitudes creadas hoy
func (s *solicitudesService) GetSolicitudesHoy(ctx context.Context, filtros models.FiltrosSolicitud) (*models.SolicitudesList, error) {
	return s.listar(ctx, "/solicitudes/hoy/actuales", filtros)
}

// GetHistorial solicitudes anteriores a hoy
func (s *solicitudesService) GetHistorial(ctx context.Context, filtros models.FiltrosSolicitud) (*models.SolicitudesList, error) {
	return s.listar(ctx, "/solicitudes/historial/todas", filtros)
}

// GetSolicitudesPasadas solicitudes del día anterior
func (s *solicitudesService) GetSolicitudesPasadas(ctx context.Context, filtros models.FiltrosSolicitud) (*models.SolicitudesList, error) {
	return s.listar(ctx, "/solicitudes/pasadas/dia-anterior", filtros)
}

func (s *solicitudesService) listar(ctx context.Context, path string, filtros models.FiltrosSolicitud) (*models.SolicitudesList, error) {
	var lista models.SolicitudesList
	if err := s.client.Get(ctx, path, filtros.Query(), &lista); err != nil {
		return nil, err
	}
	if lista.Data == nil {
		lista.Data = []models.Solicitud{}
	}
	return &lista, nil
}
