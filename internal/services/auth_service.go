package services

import (
	"context"

	"solicitudes-admin/internal/api"
	"solicitudes-admin/internal/models"

	"go.uber.org/zap"
)

// AuthService operaciones de autenticación contra /auth
type AuthService interface {
	Login(ctx context.Context, usuario, clave string) (*models.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	ForgotPassword(ctx context.Context, correo string) (*models.MensajeResponse, error)
	ResetPassword(ctx context.Context, token, nuevaClave string) (*models.MensajeResponse, error)
	VerifyResetToken(ctx context.Context, token string) (*models.VerificacionTokenResponse, error)
}

type authService struct {
	client *api.Client
	logger *zap.Logger
}

// NewAuthService crea una nueva instancia del servicio
func NewAuthService(client *api.Client, logger *zap.Logger) AuthService {
	return &authService{client: client, logger: logger}
}

func (s *authService) Login(ctx context.Context, usuario, clave string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	err := s.client.Post(ctx, "/auth/login", models.LoginRequest{Usuario: usuario, Clave: clave}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.client.Post(ctx, "/auth/logout", map[string]string{"token": token}, nil)
}

func (s *authService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := models.CambioClaveRequest{OldPassword: oldPassword, NewPassword: newPassword}
	return s.client.Patch(ctx, "/auth/change-password", body, nil)
}

func (s *authService) ForgotPassword(ctx context.Context, correo string) (*models.MensajeResponse, error) {
	var resp models.MensajeResponse
	err := s.client.Post(ctx, "/auth/forgot-password", map[string]string{"email": correo}, &resp)
	if err != nil {
		s.logger.Error("Error en forgotPassword", zap.Error(err))
		return nil, err
	}
	return &resp, nil
}

func (s *authService) ResetPassword(ctx context.Context, token, nuevaClave string) (*models.MensajeResponse, error) {
	var resp models.MensajeResponse
	body := map[string]string{"token": token, "newPassword": nuevaClave}
	if err := s.client.Post(ctx, "/auth/reset-password", body, &resp); err != nil {
		s.logger.Error("Error en resetPassword", zap.Error(err))
		return nil, err
	}
	return &resp, nil
}

func (s *authService) VerifyResetToken(ctx context.Context, token string) (*models.VerificacionTokenResponse, error) {
	var resp models.VerificacionTokenResponse
	if err := s.client.Post(ctx, "/auth/verify-reset-token", map[string]string{"token": token}, &resp); err != nil {
		s.logger.Error("Error en verifyResetToken", zap.Error(err))
		return nil, err
	}
	return &resp, nil
}
