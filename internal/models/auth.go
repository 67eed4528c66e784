package models

// LoginRequest credenciales de acceso
type LoginRequest struct {
	Usuario string `json:"usuario"`
	Clave   string `json:"clave"`
}

// LoginResponse respuesta de /auth/login
type LoginResponse struct {
	ID          int    `json:"id"`
	Usuario     string `json:"usuario"`
	AccessToken string `json:"access_token"`
	Correo      string `json:"correo"`
	Rol         struct {
		Nombre string `json:"nombre"`
	} `json:"rol"`
}

// CambioClaveRequest cambio de contraseña del usuario autenticado
type CambioClaveRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// MensajeResponse respuesta genérica con mensaje del backend
type MensajeResponse struct {
	Message string `json:"message"`
}

// VerificacionTokenResponse respuesta de /auth/verify-reset-token
type VerificacionTokenResponse struct {
	Valido  bool   `json:"valid"`
	Correo  string `json:"correo,omitempty"`
	Message string `json:"message,omitempty"`
}
