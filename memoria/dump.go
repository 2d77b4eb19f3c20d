package memoria

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

// CrearDump vuelca el contenido de los marcos de datos de un proceso, en
// orden de página virtual, a un archivo <pid>-<timestamp>.dmp dentro de dir.
// Devuelve la ruta del archivo creado.
func (m *Memoria) CrearDump(pid int, dir string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	proceso, err := m.buscarProceso(pid)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "creando directorio de dumps %s", dir)
	}

	timestamp := time.Now().Format("20060102-150405")
	ruta := filepath.Join(dir, fmt.Sprintf("%d-%s.dmp", pid, timestamp))

	// Copiar el contenido de cada marco mapeado, en orden de página virtual
	contenido := make([]byte, 0, len(proceso.MarcosAsignados)*TamPagina)
	for v := 0; v < CantMarcos; v++ {
		marco := m.leerEntradaTabla(proceso.TablaPaginas, v)
		if marco == 0 {
			continue
		}
		inicio := marco * TamPagina
		contenido = append(contenido, m.mem[inicio:inicio+TamPagina]...)
	}

	if err := os.WriteFile(ruta, contenido, 0644); err != nil {
		return "", errors.Wrapf(err, "escribiendo dump del pid %d", pid)
	}

	// Log obligatorio del enunciado
	utils.Log.Info(fmt.Sprintf("## PID: %d Memory Dump solicitado", pid))
	utils.Log.WithField("pid", pid).WithField("archivo", ruta).
		WithField("tamaño_bytes", len(contenido)).Info("Memory dump completado")

	return ruta, nil
}
