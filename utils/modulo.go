package utils

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ComandoFunc procesa un comando ya separado de sus argumentos posicionales.
type ComandoFunc func(args []string) error

// Comando describe un comando registrado del módulo
type Comando struct {
	Nombre   string
	CantArgs int
	Handler  ComandoFunc
}

// Modulo representa un módulo del sistema con su registro de comandos
type Modulo struct {
	Nombre   string
	Comandos map[string]*Comando
}

// NuevoModulo crea una nueva instancia de un módulo
func NuevoModulo(nombre string) *Modulo {
	return &Modulo{
		Nombre:   nombre,
		Comandos: make(map[string]*Comando),
	}
}

// RegistrarComando registra un handler para un comando con una cantidad fija
// de argumentos posicionales
func (m *Modulo) RegistrarComando(nombre string, cantArgs int, handler ComandoFunc) {
	m.Comandos[nombre] = &Comando{
		Nombre:   nombre,
		CantArgs: cantArgs,
		Handler:  handler,
	}
}

// EjecutarComandos consume la secuencia de tokens, despachando cada comando a
// su handler. Un comando que falla se informa y la ejecución continúa con el
// siguiente; un comando desconocido se saltea.
func (m *Modulo) EjecutarComandos(tokens []string) {
	for i := 0; i < len(tokens); {
		cmd, existe := m.Comandos[tokens[i]]
		if !existe {
			Log.WithField("token", tokens[i]).Warn("Comando desconocido, se ignora")
			i++
			continue
		}

		inicio := i + 1
		fin := inicio + cmd.CantArgs
		if fin > len(tokens) {
			Log.WithFields(logrus.Fields{
				"comando":   cmd.Nombre,
				"esperados": cmd.CantArgs,
				"recibidos": len(tokens) - inicio,
			}).Error("Faltan argumentos para el comando")
			return
		}

		if err := cmd.Handler(tokens[inicio:fin]); err != nil {
			Log.WithField("comando", cmd.Nombre).WithError(err).Error("Error ejecutando comando")
		}
		i = fin
	}
}

// CargarConfiguracion decodifica un archivo JSON de configuración al tipo
// del módulo que lo invoca
func CargarConfiguracion[T any](ruta string) (*T, error) {
	Log.WithField("ruta", ruta).Debug("Cargando configuración")

	absPath, err := filepath.Abs(ruta)
	if err != nil {
		return nil, errors.Wrapf(err, "resolviendo ruta de configuración %s", ruta)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, errors.Wrapf(err, "abriendo archivo de configuración %s", absPath)
	}
	defer file.Close()

	var config T
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, errors.Wrapf(err, "decodificando configuración %s", absPath)
	}

	Log.Debug("Configuración cargada correctamente")
	return &config, nil
}
