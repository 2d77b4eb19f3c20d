// Package memoria implementa un simulador de memoria física de un solo nivel
// con paginación administrada por software: asignación de marcos, tablas de
// páginas por proceso, traducción de direcciones y finalización de procesos.
//
// Toda la información de los procesos vive dentro de la memoria simulada: la
// tabla de páginas de cada proceso ocupa un marco físico, y la tabla de
// procesos es una región fija que arranca en el offset 64. El marco 0 queda
// reservado de forma permanente (históricamente alojaba la tabla de uso).
package memoria

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

// Geometría fija de la memoria simulada. TamMemoria debe ser igual a
// TamPagina * CantMarcos, y TamPagina a 1<<DespPagina.
const (
	TamPagina  = 256
	CantMarcos = 64
	TamMemoria = TamPagina * CantMarcos
	DespPagina = 8

	// InicioTablaProcesos es el offset físico de la tabla de procesos:
	// un byte por slot con el número de marco de la tabla de páginas.
	InicioTablaProcesos = CantMarcos

	// MaxProcesos limita los slots de proceso a lo que entra en el marco 0
	// después de la tabla de uso histórica.
	MaxProcesos = TamPagina - InicioTablaProcesos
)

// Proceso es el estado explícito de un slot ocupado de la tabla de procesos.
type Proceso struct {
	PID             int
	TablaPaginas    int // marco físico que aloja la tabla de páginas
	PaginasPedidas  int
	MarcosAsignados []int
}

// Memoria contiene toda la memoria física simulada y el estado del asignador.
type Memoria struct {
	mu sync.RWMutex

	mem          []byte
	marcosLibres []bool // true = libre, false = ocupado
	procesos     map[int]*Proceso
	metricas     map[int]*MetricasProceso
}

// NuevaMemoria inicializa la memoria simulada: todos los bytes en cero y el
// marco 0 reservado.
func NuevaMemoria() *Memoria {
	m := &Memoria{
		mem:          make([]byte, TamMemoria),
		marcosLibres: make([]bool, CantMarcos),
		procesos:     make(map[int]*Proceso),
		metricas:     make(map[int]*MetricasProceso),
	}

	for i := range m.marcosLibres {
		m.marcosLibres[i] = true
	}
	// El marco 0 aloja la tabla de uso y la tabla de procesos: nunca se asigna.
	m.marcosLibres[0] = false

	utils.Log.WithField("tamaño_bytes", TamMemoria).
		WithField("tamaño_página", TamPagina).
		WithField("marcos", CantMarcos).
		Info("Memoria principal inicializada")

	return m
}

// DireccionFisica compone un marco y un desplazamiento en una dirección física.
func DireccionFisica(marco, desplazamiento int) int {
	return marco<<DespPagina | desplazamiento
}

// LeerFisica lee un byte de una dirección física
func (m *Memoria) LeerFisica(dir int) (byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.leerFisica(dir)
}

// EscribirFisica escribe un byte en una dirección física
func (m *Memoria) EscribirFisica(dir int, valor byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.escribirFisica(dir, valor)
}

func (m *Memoria) leerFisica(dir int) (byte, error) {
	if dir < 0 || dir >= TamMemoria {
		return 0, errors.Wrapf(ErrDireccionInvalida, "dirección física %d", dir)
	}
	return m.mem[dir], nil
}

func (m *Memoria) escribirFisica(dir int, valor byte) error {
	if dir < 0 || dir >= TamMemoria {
		return errors.Wrapf(ErrDireccionInvalida, "dirección física %d", dir)
	}
	m.mem[dir] = valor
	return nil
}

// MapaMarcosLibres devuelve una copia del estado de ocupación de los marcos:
// true = libre, false = ocupado.
func (m *Memoria) MapaMarcosLibres() []bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mapa := make([]bool, CantMarcos)
	copy(mapa, m.marcosLibres)
	return mapa
}

// ContarMarcosLibres cuenta los marcos disponibles
func (m *Memoria) ContarMarcosLibres() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Count(m.marcosLibres, true)
}

// EspacioLibre calcula el espacio libre total en bytes
func (m *Memoria) EspacioLibre() int {
	return m.ContarMarcosLibres() * TamPagina
}
