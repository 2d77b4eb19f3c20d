package memoria

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

// NuevoProceso crea un proceso con la cantidad pedida de páginas de datos:
// asigna un marco para la tabla de páginas y un marco por página virtual
// 0..cantPaginas, registrando cada mapeo en la tabla.
//
// Si la memoria se agota a mitad de la creación se revierte todo lo asignado
// y el slot queda vacío; el error resultante es un *ErrorSinEspacio que
// indica qué asignación falló.
func (m *Memoria) NuevoProceso(pid int, cantPaginas int) error {
	if pid < 0 || pid >= MaxProcesos {
		return errors.Errorf("pid %d fuera de rango [0, %d)", pid, MaxProcesos)
	}
	if cantPaginas < 0 || cantPaginas >= TamPagina {
		return errors.Errorf("cantidad de páginas %d fuera de rango [0, %d)", cantPaginas, TamPagina)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, existe := m.procesos[pid]; existe {
		return errors.Wrapf(ErrProcesoExistente, "pid %d", pid)
	}

	utils.Log.WithField("pid", pid).WithField("paginas", cantPaginas).Info("Creando proceso")

	// Marco para la tabla de páginas
	tabla, err := m.asignarMarco()
	if err != nil {
		return &ErrorSinEspacio{PID: pid, Recurso: "page table"}
	}

	proceso := &Proceso{
		PID:            pid,
		TablaPaginas:   tabla,
		PaginasPedidas: cantPaginas,
	}

	// Marcos de datos, uno por página virtual
	for v := 0; v < cantPaginas; v++ {
		marco, err := m.asignarMarco()
		if err != nil {
			m.revertirCreacion(proceso)
			return &ErrorSinEspacio{PID: pid, Recurso: "data page"}
		}
		m.escribirEntradaTabla(tabla, v, marco)
		proceso.MarcosAsignados = append(proceso.MarcosAsignados, marco)
	}

	m.registrarProceso(proceso)
	m.metricaDe(pid).MarcosAsignados += cantPaginas + 1

	// Log obligatorio del enunciado
	utils.Log.Info(fmt.Sprintf("## PID: %d - Proceso Creado - Páginas: %d", pid, cantPaginas))
	return nil
}

// revertirCreacion deshace una creación a medias: libera los marcos de datos
// ya mapeados y el marco de la tabla. El llamador debe tener tomado m.mu.
func (m *Memoria) revertirCreacion(proceso *Proceso) {
	for _, marco := range proceso.MarcosAsignados {
		if err := m.liberarMarco(marco); err != nil {
			utils.Log.WithField("pid", proceso.PID).WithField("marco", marco).
				WithError(err).Error("Error revirtiendo marco de datos")
		}
	}
	if err := m.liberarMarco(proceso.TablaPaginas); err != nil {
		utils.Log.WithField("pid", proceso.PID).WithError(err).
			Error("Error revirtiendo tabla de páginas")
	}
	utils.Log.WithField("pid", proceso.PID).
		WithField("marcos_revertidos", len(proceso.MarcosAsignados)+1).
		Warn("Creación de proceso revertida por falta de marcos")
}

// FinalizarProceso libera todos los marcos del proceso: recorre la tabla de
// páginas completa liberando cada entrada no vacía, libera el marco de la
// tabla y vacía el slot de la tabla de procesos.
func (m *Memoria) FinalizarProceso(pid int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	proceso, err := m.buscarProceso(pid)
	if err != nil {
		return err
	}

	liberados := 0
	for v := 0; v < CantMarcos; v++ {
		marco := m.leerEntradaTabla(proceso.TablaPaginas, v)
		if marco == 0 {
			continue
		}
		if err := m.liberarMarco(marco); err != nil {
			utils.Log.WithField("pid", pid).WithField("marco", marco).
				WithError(err).Error("Error liberando marco de datos")
			continue
		}
		liberados++
	}

	if err := m.liberarMarco(proceso.TablaPaginas); err != nil {
		return errors.Wrapf(err, "liberando tabla de páginas del pid %d", pid)
	}
	liberados++

	m.desregistrarProceso(pid)

	met := m.metricaDe(pid)
	met.MarcosLiberados += liberados

	// Log obligatorio del enunciado
	utils.Log.Info(fmt.Sprintf(
		"## PID: %d - Proceso Destruido - Métricas - Acc.T.P: %d; Lec.Mem: %d; Esc.Mem: %d; Marcos Asig.: %d; Marcos Lib.: %d",
		pid, met.AccesosTablaPaginas, met.LecturasMemoria, met.EscriturasMemoria,
		met.MarcosAsignados, met.MarcosLiberados))

	return nil
}
