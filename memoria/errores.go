package memoria

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrSinMarcosLibres indica que el asignador agotó los marcos físicos.
	ErrSinMarcosLibres = errors.New("no hay marcos físicos libres")

	// ErrMarcoInvalido indica un número de marco fuera de rango, reservado
	// o que no estaba asignado.
	ErrMarcoInvalido = errors.New("marco inválido")

	// ErrDireccionInvalida indica una dirección fuera del espacio simulado.
	ErrDireccionInvalida = errors.New("dirección fuera de rango")

	// ErrPaginaNoMapeada indica que la página virtual no tiene marco asignado.
	ErrPaginaNoMapeada = errors.New("página virtual no mapeada")

	// ErrProcesoInexistente indica un slot vacío de la tabla de procesos.
	ErrProcesoInexistente = errors.New("el proceso no existe")

	// ErrProcesoExistente indica que el slot ya está ocupado.
	ErrProcesoExistente = errors.New("el proceso ya existe")
)

// ErrorSinEspacio se devuelve cuando la creación de un proceso agota la
// memoria; Recurso identifica qué asignación falló ("page table" o
// "data page") para el diagnóstico OOM del driver.
type ErrorSinEspacio struct {
	PID     int
	Recurso string
}

func (e *ErrorSinEspacio) Error() string {
	return fmt.Sprintf("OOM: proc %d %s", e.PID, e.Recurso)
}

func (e *ErrorSinEspacio) Unwrap() error {
	return ErrSinMarcosLibres
}
