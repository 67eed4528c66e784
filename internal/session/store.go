package session

import (
	"context"
	"strconv"
	"sync"

	"solicitudes-admin/internal/models"
	"solicitudes-admin/internal/storage"

	"go.uber.org/zap"
)

// Claves persistidas en el almacenamiento local
const (
	claveUser      = "user"
	claveUsuarioID = "usuarioid"
	claveToken     = "token"
	claveRol       = "rol"
	claveCorreo    = "correo"
)

// RutaPorDefecto destino luego de un login sin returnUrl
const RutaPorDefecto = "/dashboard"

// RutaLogin destino luego del logout
const RutaLogin = "/auth/login"

// Navigator empuja una ruta de navegación; lo implementa la capa de
// presentación que consuma este módulo.
type Navigator interface {
	Push(ruta string)
}

// AuthAPI subconjunto del servicio de autenticación que usa la sesión
type AuthAPI interface {
	Login(ctx context.Context, usuario, clave string) (*models.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	ForgotPassword(ctx context.Context, correo string) (*models.MensajeResponse, error)
	ResetPassword(ctx context.Context, token, nuevaClave string) (*models.MensajeResponse, error)
	VerifyResetToken(ctx context.Context, token string) (*models.VerificacionTokenResponse, error)
}

// Store guarda la identidad de la sesión en memoria, espejada
// sincrónicamente al almacenamiento local. Toda mutación de estado pasa
// por acá; el cliente HTTP lee el token vía Token().
type Store struct {
	mu        sync.RWMutex
	user      string
	usuarioID int
	token     string
	rol       string
	correo    string
	returnURL string

	local  *storage.LocalStore
	auth   AuthAPI
	nav    Navigator
	logger *zap.Logger
}

// New crea la sesión y la rehidrata desde el almacenamiento local
func New(local *storage.LocalStore, nav Navigator, logger *zap.Logger) *Store {
	s := &Store{local: local, nav: nav, logger: logger}
	s.rehidratar()
	return s
}

// SetAuthService conecta el servicio de autenticación luego de construir
// el cliente HTTP (que a su vez necesita esta sesión como TokenSource)
func (s *Store) SetAuthService(auth AuthAPI) {
	s.auth = auth
}

func (s *Store) rehidratar() {
	s.user = s.leer(claveUser)
	s.token = s.leer(claveToken)
	s.rol = s.leer(claveRol)
	s.correo = s.leer(claveCorreo)
	if id, err := strconv.Atoi(s.leer(claveUsuarioID)); err == nil {
		s.usuarioID = id
	}
}

func (s *Store) leer(clave string) string {
	v, err := s.local.Get(clave)
	if err != nil {
		s.logger.Warn("No se pudo leer clave de sesión", zap.String("clave", clave), zap.Error(err))
		return ""
	}
	return v
}

// Token implementa api.TokenSource
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) User() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) UsuarioID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usuarioID
}

func (s *Store) Rol() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rol
}

func (s *Store) Correo() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.correo
}

func (s *Store) ReturnURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.returnURL
}

// SetReturnURL guarda el destino a retomar luego del login; no se persiste
func (s *Store) SetReturnURL(ruta string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.returnURL = ruta
}

// Login autentica contra el backend. En éxito sobreescribe todos los
// campos de la sesión, los persiste y navega a returnUrl o a la ruta por
// defecto. El error del backend se propaga sin tocar, la capa de vista
// decide cómo mostrarlo.
func (s *Store) Login(ctx context.Context, usuario, clave string) error {
	resp, err := s.auth.Login(ctx, usuario, clave)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = resp.Usuario
	s.usuarioID = resp.ID
	s.token = resp.AccessToken
	s.rol = resp.Rol.Nombre
	s.correo = resp.Correo
	destino := s.returnURL
	s.mu.Unlock()

	s.persistir(claveUser, resp.Usuario)
	s.persistir(claveUsuarioID, strconv.Itoa(resp.ID))
	s.persistir(claveToken, resp.AccessToken)
	s.persistir(claveRol, resp.Rol.Nombre)
	s.persistir(claveCorreo, resp.Correo)

	if destino == "" {
		destino = RutaPorDefecto
	}
	s.nav.Push(destino)

	s.logger.Info("Sesión iniciada",
		zap.String("usuario", resp.Usuario),
		zap.String("rol", resp.Rol.Nombre))
	return nil
}

// Logout avisa al backend (si falla se ignora), siempre limpia memoria y
// almacenamiento, y siempre navega a la pantalla de login.
func (s *Store) Logout(ctx context.Context) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if s.auth != nil && token != "" {
		if err := s.auth.Logout(ctx, token); err != nil {
			s.logger.Warn("Logout remoto falló, se limpia la sesión igual", zap.Error(err))
		}
	}

	s.mu.Lock()
	s.user = ""
	s.usuarioID = 0
	s.token = ""
	s.rol = ""
	s.correo = ""
	s.mu.Unlock()

	for _, clave := range []string{claveUser, claveUsuarioID, claveToken, claveRol, claveCorreo} {
		if err := s.local.Remove(clave); err != nil {
			s.logger.Warn("No se pudo limpiar clave de sesión", zap.String("clave", clave), zap.Error(err))
		}
	}

	s.nav.Push(RutaLogin)
	s.logger.Info("Sesión cerrada")
}

// ChangePassword cambio de clave del usuario autenticado
func (s *Store) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return s.auth.ChangePassword(ctx, oldPassword, newPassword)
}

// ForgotPassword solicita recuperación de contraseña
func (s *Store) ForgotPassword(ctx context.Context, correo string) (*models.MensajeResponse, error) {
	return s.auth.ForgotPassword(ctx, correo)
}

// ResetPassword restablece la contraseña con un token de recuperación
func (s *Store) ResetPassword(ctx context.Context, token, nuevaClave string) (*models.MensajeResponse, error) {
	return s.auth.ResetPassword(ctx, token, nuevaClave)
}

// VerifyResetToken verifica un token de restablecimiento
func (s *Store) VerifyResetToken(ctx context.Context, token string) (*models.VerificacionTokenResponse, error) {
	return s.auth.VerifyResetToken(ctx, token)
}

func (s *Store) persistir(clave, valor string) {
	if err := s.local.Set(clave, valor); err != nil {
		s.logger.Error("No se pudo persistir clave de sesión", zap.String("clave", clave), zap.Error(err))
	}
}
