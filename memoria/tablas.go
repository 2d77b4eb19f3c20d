package memoria

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Mapeo es una entrada no vacía de la tabla de páginas de un proceso.
type Mapeo struct {
	PaginaVirtual int
	Marco         int
}

// La tabla de páginas de un proceso ocupa un marco físico completo: el byte
// en el offset v guarda el marco asignado a la página virtual v, y 0
// significa "sin mapear".

// escribirEntradaTabla registra marco como destino de la página virtual.
// El llamador debe tener tomado m.mu.
func (m *Memoria) escribirEntradaTabla(tabla, paginaVirtual, marco int) {
	m.mem[DireccionFisica(tabla, paginaVirtual)] = byte(marco)
}

// leerEntradaTabla devuelve el marco mapeado a la página virtual, 0 si no hay.
// El llamador debe tener tomado m.mu.
func (m *Memoria) leerEntradaTabla(tabla, paginaVirtual int) int {
	return int(m.mem[DireccionFisica(tabla, paginaVirtual)])
}

// buscarProceso devuelve el estado del slot o ErrProcesoInexistente.
// El llamador debe tener tomado m.mu.
func (m *Memoria) buscarProceso(pid int) (*Proceso, error) {
	proceso, existe := m.procesos[pid]
	if !existe {
		return nil, errors.Wrapf(ErrProcesoInexistente, "pid %d", pid)
	}
	return proceso, nil
}

// registrarProceso ocupa el slot y escribe el puntero a la tabla de páginas
// en la tabla de procesos de la memoria simulada.
// El llamador debe tener tomado m.mu.
func (m *Memoria) registrarProceso(proceso *Proceso) {
	m.procesos[proceso.PID] = proceso
	m.mem[InicioTablaProcesos+proceso.PID] = byte(proceso.TablaPaginas)
}

// desregistrarProceso vacía el slot y limpia el puntero de la tabla de
// procesos para que no quede apuntando a un marco liberado.
// El llamador debe tener tomado m.mu.
func (m *Memoria) desregistrarProceso(pid int) {
	delete(m.procesos, pid)
	m.mem[InicioTablaProcesos+pid] = 0
}

// TablaDePaginas devuelve las entradas no vacías de la tabla de páginas de un
// proceso, en orden de página virtual.
func (m *Memoria) TablaDePaginas(pid int) ([]Mapeo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	proceso, err := m.buscarProceso(pid)
	if err != nil {
		return nil, err
	}

	paginas := lo.Range(CantMarcos)
	mapeos := lo.FilterMap(paginas, func(v int, _ int) (Mapeo, bool) {
		marco := m.leerEntradaTabla(proceso.TablaPaginas, v)
		return Mapeo{PaginaVirtual: v, Marco: marco}, marco != 0
	})
	return mapeos, nil
}
