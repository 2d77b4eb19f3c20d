package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log es el logger global del módulo, con el campo "modulo" ya aplicado.
var Log *logrus.Entry

func init() {
	// Logger por defecto para que los tests y el init de otros paquetes
	// no dependan del orden de arranque.
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(logrus.InfoLevel)
	Log = base.WithField("modulo", "memoria")
}

// InicializarLogger configura el logger global del módulo
func InicializarLogger(nivel string, modulo string) {
	base := logrus.New()

	// La salida estándar queda reservada para los reportes del simulador
	base.SetOutput(os.Stderr)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := logrus.ParseLevel(strings.ToLower(nivel))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	base.SetLevel(lvl)

	Log = base.WithField("modulo", modulo)
	Log.WithField("nivel", lvl.String()).Debug("Logger inicializado")
}
