package memoria

import (
	"github.com/pkg/errors"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

// TraducirDireccion convierte una dirección virtual de un proceso en una
// dirección física a través de su tabla de páginas. Una entrada en cero no
// se traduce al marco 0: es ErrPaginaNoMapeada.
func (m *Memoria) TraducirDireccion(pid int, dirVirtual int) (int, error) {
	// Lock de escritura: la traducción actualiza las métricas del proceso.
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.traducirDireccion(pid, dirVirtual)
}

func (m *Memoria) traducirDireccion(pid int, dirVirtual int) (int, error) {
	if dirVirtual < 0 || dirVirtual >= TamPagina*TamPagina {
		return 0, errors.Wrapf(ErrDireccionInvalida, "dirección virtual %d", dirVirtual)
	}

	paginaVirtual := dirVirtual >> DespPagina
	desplazamiento := dirVirtual & (TamPagina - 1)

	proceso, err := m.buscarProceso(pid)
	if err != nil {
		return 0, err
	}
	m.metricaDe(pid).AccesosTablaPaginas++

	marco := m.leerEntradaTabla(proceso.TablaPaginas, paginaVirtual)
	if marco == 0 {
		return 0, errors.Wrapf(ErrPaginaNoMapeada, "pid %d página virtual %d", pid, paginaVirtual)
	}

	dirFisica := DireccionFisica(marco, desplazamiento)

	utils.Log.WithField("pid", pid).
		WithField("dir_virtual", dirVirtual).
		WithField("dir_física", dirFisica).
		WithField("marco", marco).
		Debug("Dirección traducida")

	return dirFisica, nil
}

// EscribirByte traduce la dirección virtual y escribe un byte en ella.
// Devuelve la dirección física para el reporte del driver.
func (m *Memoria) EscribirByte(pid int, dirVirtual int, valor byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dirFisica, err := m.traducirDireccion(pid, dirVirtual)
	if err != nil {
		return 0, err
	}
	if err := m.escribirFisica(dirFisica, valor); err != nil {
		return 0, err
	}

	m.metricaDe(pid).EscriturasMemoria++
	return dirFisica, nil
}

// LeerByte traduce la dirección virtual y lee el byte almacenado en ella.
// Devuelve también la dirección física para el reporte del driver.
func (m *Memoria) LeerByte(pid int, dirVirtual int) (byte, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dirFisica, err := m.traducirDireccion(pid, dirVirtual)
	if err != nil {
		return 0, 0, err
	}
	valor, err := m.leerFisica(dirFisica)
	if err != nil {
		return 0, 0, err
	}

	m.metricaDe(pid).LecturasMemoria++
	return valor, dirFisica, nil
}
