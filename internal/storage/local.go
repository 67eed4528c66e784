package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// LocalStore almacenamiento clave/valor persistente de la sesión.
// Es el equivalente del local storage del navegador: strings planos,
// sin cifrado ni expiración, releídos al arrancar.
type LocalStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open abre (o crea) la base en path y prepara la tabla de almacenamiento
func Open(path string, logger *zap.Logger) (*LocalStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS almacen (
		clave TEXT PRIMARY KEY,
		valor TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create storage table: %w", err)
	}

	logger.Info("Local storage abierto", zap.String("path", path))

	return &LocalStore{db: db, logger: logger}, nil
}

// Get devuelve el valor de una clave, o "" si no existe
func (s *LocalStore) Get(clave string) (string, error) {
	var valor string
	err := s.db.QueryRow(`SELECT valor FROM almacen WHERE clave = ?`, clave).Scan(&valor)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %s: %w", clave, err)
	}
	return valor, nil
}

// Set guarda o reemplaza el valor de una clave
func (s *LocalStore) Set(clave, valor string) error {
	_, err := s.db.Exec(
		`INSERT INTO almacen(clave, valor) VALUES(?, ?) ON CONFLICT(clave) DO UPDATE SET valor = excluded.valor`,
		clave, valor,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", clave, err)
	}
	return nil
}

// Remove borra una clave; borrar una clave inexistente no es error
func (s *LocalStore) Remove(clave string) error {
	if _, err := s.db.Exec(`DELETE FROM almacen WHERE clave = ?`, clave); err != nil {
		return fmt.Errorf("failed to remove key %s: %w", clave, err)
	}
	return nil
}

func (s *LocalStore) Close() error {
	return s.db.Close()
}
