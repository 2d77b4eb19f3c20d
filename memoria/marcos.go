package memoria

import (
	"github.com/pkg/errors"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

// asignarMarco busca el primer marco libre en orden ascendente y lo marca
// como ocupado. Determinístico: first-fit por número de marco.
// El llamador debe tener tomado m.mu.
func (m *Memoria) asignarMarco() (int, error) {
	for i, libre := range m.marcosLibres {
		if libre {
			m.marcosLibres[i] = false
			utils.Log.WithField("marco", i).Debug("Marco asignado")
			return i, nil
		}
	}
	return 0, ErrSinMarcosLibres
}

// liberarMarco devuelve un marco al asignador y limpia su contenido.
// Rechaza el marco 0 (reservado), marcos fuera de rango y dobles liberaciones.
// El llamador debe tener tomado m.mu.
func (m *Memoria) liberarMarco(marco int) error {
	if marco <= 0 || marco >= CantMarcos {
		return errors.Wrapf(ErrMarcoInvalido, "marco %d", marco)
	}
	if m.marcosLibres[marco] {
		return errors.Wrapf(ErrMarcoInvalido, "marco %d ya estaba libre", marco)
	}

	m.marcosLibres[marco] = true

	// Poner en ceros el contenido del marco liberado
	inicio := marco * TamPagina
	for i := inicio; i < inicio+TamPagina; i++ {
		m.mem[i] = 0
	}

	utils.Log.WithField("marco", marco).Debug("Marco liberado")
	return nil
}

// LiberarMarco devuelve un marco al asignador
func (m *Memoria) LiberarMarco(marco int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.liberarMarco(marco)
}

// AsignarMarco reserva el primer marco libre y devuelve su número
func (m *Memoria) AsignarMarco() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.asignarMarco()
}
