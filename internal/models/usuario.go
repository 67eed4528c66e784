package models

// Rol representa un rol del sistema
type Rol struct {
	ID          int    `json:"id,omitempty"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Activo      bool   `json:"activo"`
	UsuarioID   int    `json:"usuarioId,omitempty"`
}

// RolesList respuesta paginada de roles
type RolesList struct {
	Data  []Rol `json:"data"`
	Total int   `json:"total"`
}

// FiltrosRol filtros para el listado de roles
type FiltrosRol struct {
	Paginacion
	Nombre      *string `json:"nombre,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
	Activo      *bool   `json:"activo,omitempty"`
}

// Query serializa los filtros como query params, omitiendo los ausentes
func (f FiltrosRol) Query() map[string]string {
	q := f.Paginacion.Query()
	setString(q, "nombre", f.Nombre)
	setString(q, "descripcion", f.Descripcion)
	setBool(q, "activo", f.Activo)
	return q
}

// Usuario representa un usuario del sistema
type Usuario struct {
	ID        int    `json:"id,omitempty"`
	Usuario   string `json:"usuario"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Direccion string `json:"direccion,omitempty"`
	Telefono  string `json:"telefono"`
	Correo    string `json:"correo"`
	Clave     string `json:"clave,omitempty"`
	RolID     int    `json:"rolId"`
	Rol       *Rol   `json:"rol,omitempty"`
	Activo    bool   `json:"activo"`
	UsuarioID int    `json:"usuarioId,omitempty"`
}

// UsuariosList respuesta paginada de usuarios
type UsuariosList struct {
	Data  []Usuario `json:"data"`
	Total int       `json:"total"`
}

// FiltrosUsuario filtros para el listado de usuarios
type FiltrosUsuario struct {
	Paginacion
	Usuario *string `json:"usuario,omitempty"`
	Nombre  *string `json:"nombre,omitempty"`
	Correo  *string `json:"correo,omitempty"`
	RolID   *int    `json:"rolId,omitempty"`
	Activo  *bool   `json:"activo,omitempty"`
}

// Query serializa los filtros como query params, omitiendo los ausentes
func (f FiltrosUsuario) Query() map[string]string {
	q := f.Paginacion.Query()
	setString(q, "usuario", f.Usuario)
	setString(q, "nombre", f.Nombre)
	setString(q, "correo", f.Correo)
	setInt(q, "rolId", f.RolID)
	setBool(q, "activo", f.Activo)
	return q
}

// Configuracion parámetros globales de comisión y tipo de cambio.
// Es un singleton: el backend mantiene el registro con id 1.
type Configuracion struct {
	ID                 int     `json:"id,omitempty"`
	ComisionPorcentaje float64 `json:"comisionPorcentaje"`
	TipoCambioUSD      float64 `json:"tipoCambioUSD"`
	TipoCambioCLP      float64 `json:"tipoCambioCLP"`
	UsuarioID          int     `json:"usuarioId,omitempty"`
}

// ConfiguracionPrincipalID id fijo de la configuración principal
const ConfiguracionPrincipalID = 1
