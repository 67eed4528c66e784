package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"solicitudes-admin/internal/api"
	"solicitudes-admin/internal/config"
	"solicitudes-admin/internal/controllers"
	"solicitudes-admin/internal/routes"
	"solicitudes-admin/internal/services"
	"solicitudes-admin/internal/session"
	"solicitudes-admin/internal/storage"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// navConsola imprime las navegaciones que la sesión pediría a la vista
type navConsola struct {
	logger *zap.Logger
}

func (n navConsola) Push(ruta string) {
	n.logger.Info("➡️ Navegación", zap.String("ruta", ruta))
}

func main() {
	usuario := flag.String("usuario", "", "Usuario para iniciar sesión")
	clave := flag.String("clave", "", "Clave del usuario")
	flag.Parse()

	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("No se pudo cargar la configuración: %v", err)
	}

	logger, err := nuevoLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("No se pudo crear el logger: %v", err)
	}
	defer logger.Sync()

	// Almacenamiento local y sesión rehidratada
	local, err := storage.Open(cfg.Storage.Path, logger)
	if err != nil {
		logger.Fatal("❌ No se pudo abrir el almacenamiento local", zap.Error(err))
	}
	defer local.Close()

	nav := navConsola{logger: logger}
	ses := session.New(local, nav, logger)

	// Cliente HTTP con el token de la sesión
	client := api.New(cfg.API, ses, logger)
	ses.SetAuthService(services.NewAuthService(client, logger))

	solicitudesSvc := services.NewSolicitudesService(client, logger)
	navierasSvc := services.NewNavierasService(client, logger)
	usuariosSvc := services.NewUsuariosService(client, logger)
	dashboardSvc := services.NewDashboardService(client, logger)

	notifier := controllers.NewZapNotifier(logger)
	solicitudes := controllers.NewSolicitudesController(solicitudesSvc, navierasSvc, usuariosSvc, ses, notifier, logger)
	dashboard := controllers.NewDashboardController(dashboardSvc, notifier, logger)
	guard := routes.NewGuard(ses, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if *usuario != "" {
		if err := ses.Login(ctx, *usuario, *clave); err != nil {
			logger.Fatal("❌ No se pudo iniciar sesión", zap.Error(err))
		}
	}

	destino := guard.Resolve(session.RutaPorDefecto)
	if destino == session.RutaLogin {
		logger.Error("No hay sesión activa; use -usuario y -clave")
		os.Exit(1)
	}
	logger.Info("✅ Sesión activa",
		zap.String("usuario", ses.User()),
		zap.String("rol", ses.Rol()))

	if err := solicitudes.GetEstadisticas(ctx); err == nil {
		stats := solicitudes.Estadisticas()
		fmt.Printf("Solicitudes: %d totales | %d pendientes | %d subidas | %d verificadas | %d pagadas | %d anuladas\n",
			stats.Total, stats.Pendientes, stats.Subidos, stats.Verificadas, stats.Pagadas, stats.Anuladas)
	}

	solicitudes.SetModo(controllers.ModoHoy)
	if err := solicitudes.GetSolicitudes(ctx); err != nil {
		logger.Fatal("❌ No se pudieron cargar las solicitudes de hoy", zap.Error(err))
	}
	fmt.Printf("Solicitudes de hoy (%d):\n", solicitudes.Total())
	for _, s := range solicitudes.Solicitudes() {
		fmt.Printf("  #%d %s %s [%s] %s Bs %.2f\n",
			s.ID, s.BL, s.Contenedor, s.Tipo, s.Estado, s.TotalFinalBs)
	}

	if err := dashboard.LoadDashboardData(ctx); err == nil {
		for _, tarjeta := range dashboard.TarjetasPrincipales() {
			fmt.Printf("%-22s %s\n", tarjeta.Titulo, tarjeta.Valor)
		}
	}
}

func nuevoLogger(nivel string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(nivel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
