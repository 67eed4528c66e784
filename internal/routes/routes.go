package routes

import (
	"strings"

	"solicitudes-admin/internal/session"

	"go.uber.org/zap"
)

// Ruta una entrada de la tabla de navegación
type Ruta struct {
	Path    string
	Nombre  string
	Publica bool
}

// RutaSolicitudes destino del rol cliente cuando pide el dashboard
const RutaSolicitudes = "/pages/solicitudes"

// Tabla devuelve la tabla completa de rutas de la aplicación
func Tabla() []Ruta {
	return []Ruta{
		{Path: "/", Nombre: "home", Publica: true},
		{Path: "/home", Nombre: "home", Publica: true},
		{Path: "/auth/login", Nombre: "login", Publica: true},
		{Path: "/reset-password", Nombre: "reset-password", Publica: true},
		{Path: "/register-cliente", Nombre: "register-cliente", Publica: true},
		{Path: "/dashboard", Nombre: "dashboard"},
		{Path: "/pages/solicitudes", Nombre: "solicitudes"},
		{Path: "/pages/historial", Nombre: "historial"},
		{Path: "/pages/navieras", Nombre: "navieras"},
		{Path: "/pages/tarifas", Nombre: "tarifas"},
		{Path: "/pages/roles", Nombre: "roles"},
		{Path: "/pages/usuarios", Nombre: "usuarios"},
		{Path: "/pages/configuraciones", Nombre: "configuraciones"},
		{Path: "/perfil", Nombre: "perfil"},
	}
}

// Guard decide, antes de cada navegación, si la ruta pedida se permite,
// se redirige o se frena por falta de sesión.
type Guard struct {
	ses    *session.Store
	rutas  map[string]Ruta
	logger *zap.Logger
}

func NewGuard(ses *session.Store, logger *zap.Logger) *Guard {
	rutas := make(map[string]Ruta)
	for _, r := range Tabla() {
		rutas[r.Path] = r
	}
	return &Guard{ses: ses, rutas: rutas, logger: logger}
}

// EsPublica indica si la ruta no exige sesión. Los sub-paths de
// reset-password son públicos, el token de recuperación viaja ahí.
func (g *Guard) EsPublica(path string) bool {
	if r, ok := g.rutas[path]; ok {
		return r.Publica
	}
	return strings.HasPrefix(path, "/reset-password/")
}

// Resolve devuelve la ruta a la que debe ir la navegación pedida.
// La presencia del token es lo único que habilita las rutas privadas;
// si falta, se guarda el destino como returnUrl y se va al login.
func (g *Guard) Resolve(destino string) string {
	if g.EsPublica(destino) {
		return destino
	}

	if g.ses.Token() == "" {
		g.ses.SetReturnURL(destino)
		g.logger.Info("Navegación sin sesión, redirigiendo al login",
			zap.String("destino", destino))
		return session.RutaLogin
	}

	// El rol cliente no ve el dashboard, va directo a sus solicitudes
	if destino == session.RutaPorDefecto && g.ses.Rol() == "cliente" {
		return RutaSolicitudes
	}

	if _, ok := g.rutas[destino]; !ok {
		return session.RutaPorDefecto
	}
	return destino
}
