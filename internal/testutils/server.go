package testutils

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"time"

	"solicitudes-admin/internal/models"

	"github.com/gin-gonic/gin"
)

type archivoGuardado struct {
	nombre    string
	contenido []byte
	tipoMIME  string
}

// Credenciales aceptadas por el backend de prueba
const (
	UsuarioValido = "admin"
	ClaveValida   = "admin123"
	TokenPrueba   = "jwt-de-prueba"
)

// ServidorFalso backend de prueba sobre gin. Implementa el subconjunto
// de la API que consumen los servicios: autenticación, CRUD de
// navieras, solicitudes, configuración y dashboard.
type ServidorFalso struct {
	*httptest.Server

	mu              sync.Mutex
	roles           []models.Rol
	usuarios        []models.Usuario
	resetsClave     []int
	navieras        []models.Naviera
	tarifas         []models.Tarifa
	archivos        map[string]archivoGuardado
	conDependientes map[int]bool
	solicitudes     []models.Solicitud
	estadisticas    models.Estadisticas
	configuracion   models.Configuracion
	dashboard       models.DashboardData
	ultimaQuery     url.Values
	ultimoAuth      string
	retardoListado  time.Duration
	siguienteID     int
	logoutLlamado   bool
}

// NuevoServidor levanta el backend de prueba y lo cierra con el test
func NuevoServidor(t interface{ Cleanup(func()) }) *ServidorFalso {
	gin.SetMode(gin.TestMode)
	s := &ServidorFalso{
		conDependientes: map[int]bool{},
		archivos:        map[string]archivoGuardado{},
		siguienteID:     100,
		configuracion:   models.Configuracion{ID: models.ConfiguracionPrincipalID, ComisionPorcentaje: 10, TipoCambioUSD: 6.96, TipoCambioCLP: 0.0075},
	}

	router := gin.New()

	router.POST("/auth/login", s.login)
	router.POST("/auth/logout", s.logout)
	router.POST("/auth/forgot-password", s.forgotPassword)

	router.GET("/roles", s.listarRoles)

	router.GET("/usuarios", s.listarUsuarios)
	router.POST("/usuarios", s.crearUsuario)
	router.PATCH("/usuarios/:id/reset-password", s.resetPassword)

	router.GET("/navieras", s.listarNavieras)
	router.POST("/navieras", s.crearNaviera)
	router.PATCH("/navieras/:id", s.actualizarNaviera)
	router.DELETE("/navieras/:id", s.eliminarNaviera)

	router.GET("/tarifas", s.listarTarifas)
	router.POST("/tarifas", s.crearTarifa)
	router.PATCH("/tarifas/:id", s.actualizarTarifa)
	router.DELETE("/tarifas/:id", s.eliminarTarifa)

	router.GET("/solicitudes", s.listarSolicitudes)
	router.GET("/solicitudes/hoy/actuales", s.listarSolicitudes)
	router.GET("/solicitudes/historial/todas", s.listarSolicitudes)
	router.GET("/solicitudes/pasadas/dia-anterior", s.listarSolicitudes)
	router.GET("/solicitudes/estadisticas", s.obtenerEstadisticas)
	router.PATCH("/solicitudes/:id/estado", s.cambiarEstado)

	router.POST("/solicitudes/:id/comprobante", s.subirArchivo("comprobantePago"))
	router.POST("/solicitudes/:id/factura", s.subirArchivo("factura"))
	router.POST("/solicitudes/:id/dress", s.subirArchivo("dress"))
	router.GET("/solicitudes/:id/comprobante/download", s.descargarArchivo("comprobantePago", "attachment"))
	router.GET("/solicitudes/:id/factura/download", s.descargarArchivo("factura", "attachment"))
	router.GET("/solicitudes/:id/dress/download", s.descargarArchivo("dress", "attachment"))
	router.GET("/solicitudes/:id/comprobante/view", s.descargarArchivo("comprobantePago", "inline"))
	router.GET("/solicitudes/:id/factura/view", s.descargarArchivo("factura", "inline"))
	router.GET("/solicitudes/:id/dress/view", s.descargarArchivo("dress", "inline"))
	router.DELETE("/solicitudes/:id/files/:tipo", s.eliminarArchivo)

	router.GET("/configuraciones/:id", s.obtenerConfiguracion)
	router.PATCH("/configuraciones/:id", s.actualizarConfiguracion)

	router.GET("/dashboard/data", s.datosDashboard)

	s.Server = httptest.NewServer(router)
	t.Cleanup(s.Server.Close)
	return s
}

// SetRoles reemplaza el contenido del recurso roles
func (s *ServidorFalso) SetRoles(roles []models.Rol) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles = roles
}

// SetUsuarios reemplaza el contenido del recurso usuarios
func (s *ServidorFalso) SetUsuarios(usuarios []models.Usuario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usuarios = usuarios
}

// ResetsClave ids de usuario que recibieron un reset de contraseña
func (s *ServidorFalso) ResetsClave() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resetsClave
}

// SetNavieras reemplaza el contenido del recurso navieras
func (s *ServidorFalso) SetNavieras(navieras []models.Naviera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navieras = navieras
}

// MarcarConDependientes hace que el DELETE de esa naviera responda 409
func (s *ServidorFalso) MarcarConDependientes(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conDependientes[id] = true
}

// SetTarifas reemplaza el contenido del recurso tarifas
func (s *ServidorFalso) SetTarifas(tarifas []models.Tarifa) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tarifas = tarifas
}

// TieneArchivo indica si el backend guarda un adjunto para esa solicitud
func (s *ServidorFalso) TieneArchivo(id int, campo string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.archivos[claveArchivo(id, campo)]
	return ok
}

// SetSolicitudes reemplaza el contenido del recurso solicitudes
func (s *ServidorFalso) SetSolicitudes(solicitudes []models.Solicitud) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solicitudes = solicitudes
}

// SetEstadisticas fija los contadores por estado
func (s *ServidorFalso) SetEstadisticas(e models.Estadisticas) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.estadisticas = e
}

// SetDashboard fija el payload de /dashboard/data
func (s *ServidorFalso) SetDashboard(d models.DashboardData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboard = d
}

// SetRetardoListado demora las respuestas de listado, para tests de
// peticiones concurrentes
func (s *ServidorFalso) SetRetardoListado(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retardoListado = d
}

// UltimaQuery query params de la última petición de listado
func (s *ServidorFalso) UltimaQuery() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ultimaQuery
}

// UltimoAuth header Authorization de la última petición de listado
func (s *ServidorFalso) UltimoAuth() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ultimoAuth
}

// LogoutLlamado indica si el backend recibió el POST de logout
func (s *ServidorFalso) LogoutLlamado() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logoutLlamado
}

func (s *ServidorFalso) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Petición inválida"})
		return
	}
	if req.Usuario != UsuarioValido || req.Clave != ClaveValida {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciales inválidas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":           7,
		"usuario":      UsuarioValido,
		"access_token": TokenPrueba,
		"correo":       "admin@puerto.bo",
		"rol":          gin.H{"nombre": "administrador"},
	})
}

func (s *ServidorFalso) logout(c *gin.Context) {
	s.mu.Lock()
	s.logoutLlamado = true
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}

func (s *ServidorFalso) forgotPassword(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Correo de recuperación enviado"})
}

func (s *ServidorFalso) registrarListado(c *gin.Context) {
	s.mu.Lock()
	s.ultimaQuery = c.Request.URL.Query()
	s.ultimoAuth = c.GetHeader("Authorization")
	retardo := s.retardoListado
	s.mu.Unlock()
	if retardo > 0 {
		time.Sleep(retardo)
	}
}

func (s *ServidorFalso) listarRoles(c *gin.Context) {
	s.registrarListado(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, models.RolesList{Data: s.roles, Total: len(s.roles)})
}

func (s *ServidorFalso) listarUsuarios(c *gin.Context) {
	s.registrarListado(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, models.UsuariosList{Data: s.usuarios, Total: len(s.usuarios)})
}

func (s *ServidorFalso) crearUsuario(c *gin.Context) {
	var u models.Usuario
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Petición inválida"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existente := range s.usuarios {
		if existente.Correo == u.Correo {
			c.JSON(http.StatusConflict, gin.H{"message": "Ya existe un usuario con ese correo"})
			return
		}
	}
	s.siguienteID++
	u.ID = s.siguienteID
	u.Clave = ""
	s.usuarios = append(s.usuarios, u)
	c.JSON(http.StatusCreated, u)
}

func (s *ServidorFalso) resetPassword(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.usuarios {
		if u.ID == id {
			s.resetsClave = append(s.resetsClave, id)
			c.JSON(http.StatusOK, gin.H{"message": "Contraseña restablecida"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Usuario no encontrado"})
}

func (s *ServidorFalso) listarNavieras(c *gin.Context) {
	s.registrarListado(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, models.NavierasList{Data: s.navieras, Total: len(s.navieras)})
}

func (s *ServidorFalso) crearNaviera(c *gin.Context) {
	var n models.Naviera
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Petición inválida"})
		return
	}
	if n.Nombre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": []string{
			"El nombre es obligatorio",
			"El nombre debe tener al menos 3 caracteres",
			"El nombre no puede exceder los 100 caracteres",
		}})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existente := range s.navieras {
		if existente.Nombre == n.Nombre {
			c.JSON(http.StatusConflict, gin.H{"message": "Ya existe una naviera con ese nombre"})
			return
		}
	}
	s.siguienteID++
	n.ID = s.siguienteID
	s.navieras = append(s.navieras, n)
	c.JSON(http.StatusCreated, n)
}

func (s *ServidorFalso) actualizarNaviera(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var n models.Naviera
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Petición inválida"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existente := range s.navieras {
		if existente.ID == id {
			n.ID = id
			s.navieras[i] = n
			c.JSON(http.StatusOK, n)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Naviera no encontrada"})
}

func (s *ServidorFalso) eliminarNaviera(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conDependientes[id] {
		c.JSON(http.StatusConflict, gin.H{"message": "La naviera tiene solicitudes relacionadas"})
		return
	}
	for i, existente := range s.navieras {
		if existente.ID == id {
			s.navieras = append(s.navieras[:i], s.navieras[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Naviera eliminada"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Naviera no encontrada"})
}

func (s *ServidorFalso) listarTarifas(c *gin.Context) {
	s.registrarListado(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, models.TarifasList{Data: s.tarifas, Total: len(s.tarifas)})
}

func (s *ServidorFalso) crearTarifa(c *gin.Context) {
	var t models.Tarifa
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Petición inválida"})
		return
	}
	if t.NavieraID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": []string{
			"La naviera es obligatoria",
			"El monto base debe ser mayor o igual a 0",
		}})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existente := range s.tarifas {
		if existente.NavieraID == t.NavieraID && existente.Tipo == t.Tipo {
			c.JSON(http.StatusConflict, gin.H{"message": "Ya existe una tarifa de ese tipo para la naviera"})
			return
		}
	}
	s.siguienteID++
	t.ID = s.siguienteID
	s.tarifas = append(s.tarifas, t)
	c.JSON(http.StatusCreated, t)
}

func (s *ServidorFalso) actualizarTarifa(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var t models.Tarifa
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Petición inválida"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existente := range s.tarifas {
		if existente.ID == id {
			t.ID = id
			s.tarifas[i] = t
			c.JSON(http.StatusOK, t)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Tarifa no encontrada"})
}

func (s *ServidorFalso) eliminarTarifa(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conDependientes[id] {
		c.JSON(http.StatusConflict, gin.H{"message": "La tarifa tiene solicitudes relacionadas"})
		return
	}
	for i, existente := range s.tarifas {
		if existente.ID == id {
			s.tarifas = append(s.tarifas[:i], s.tarifas[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Tarifa eliminada"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Tarifa no encontrada"})
}

func claveArchivo(id int, campo string) string {
	return fmt.Sprintf("%d:%s", id, campo)
}

func (s *ServidorFalso) subirArchivo(campo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))
		fh, err := c.FormFile(campo)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Archivo requerido"})
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo leer el archivo"})
			return
		}
		defer f.Close()
		contenido, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo leer el archivo"})
			return
		}
		tipoMIME := fh.Header.Get("Content-Type")
		if tipoMIME == "" {
			tipoMIME = "application/octet-stream"
		}
		s.mu.Lock()
		s.archivos[claveArchivo(id, campo)] = archivoGuardado{
			nombre:    fh.Filename,
			contenido: contenido,
			tipoMIME:  tipoMIME,
		}
		s.mu.Unlock()
		c.JSON(http.StatusCreated, gin.H{"message": "Archivo subido"})
	}
}

func (s *ServidorFalso) descargarArchivo(campo, disposicion string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))
		s.mu.Lock()
		archivo, ok := s.archivos[claveArchivo(id, campo)]
		s.mu.Unlock()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Archivo no encontrado"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`%s; filename="%s"`, disposicion, archivo.nombre))
		c.Data(http.StatusOK, archivo.tipoMIME, archivo.contenido)
	}
}

func (s *ServidorFalso) eliminarArchivo(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	tipo := c.Param("tipo")
	s.mu.Lock()
	defer s.mu.Unlock()
	clave := claveArchivo(id, tipo)
	if _, ok := s.archivos[clave]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Archivo no encontrado"})
		return
	}
	delete(s.archivos, clave)
	c.JSON(http.StatusOK, gin.H{"message": "Archivo eliminado"})
}

func (s *ServidorFalso) listarSolicitudes(c *gin.Context) {
	s.registrarListado(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, models.SolicitudesList{Data: s.solicitudes, Total: len(s.solicitudes)})
}

func (s *ServidorFalso) obtenerEstadisticas(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.estadisticas)
}

func (s *ServidorFalso) cambiarEstado(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Estado string `json:"estado"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Estado == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Estado requerido"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sol := range s.solicitudes {
		if sol.ID == id {
			s.solicitudes[i].Estado = body.Estado
			c.JSON(http.StatusOK, s.solicitudes[i])
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Solicitud %d no encontrada", id)})
}

func (s *ServidorFalso) obtenerConfiguracion(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.configuracion)
}

func (s *ServidorFalso) actualizarConfiguracion(c *gin.Context) {
	var cfg models.Configuracion
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Petición inválida"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg.ID = s.configuracion.ID
	s.configuracion = cfg
	c.JSON(http.StatusOK, cfg)
}

func (s *ServidorFalso) datosDashboard(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.dashboard)
}
