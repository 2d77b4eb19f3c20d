package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/memoria"
	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

const marcosPorFila = 16

// Simulador ata la memoria simulada a la salida de reportes del driver.
type Simulador struct {
	mem       *memoria.Memoria
	salida    io.Writer
	dumpPath  string
	retardoMs int
}

// registrarComandos da de alta la superficie de comandos del simulador
func (s *Simulador) registrarComandos(mod *utils.Modulo) {
	mod.RegistrarComando("np", 2, s.comandoNuevoProceso)
	mod.RegistrarComando("pfm", 0, s.comandoMapaLibre)
	mod.RegistrarComando("ppt", 1, s.comandoTablaPaginas)
	mod.RegistrarComando("kp", 1, s.comandoFinalizarProceso)
	mod.RegistrarComando("sb", 3, s.comandoEscribirByte)
	mod.RegistrarComando("lb", 2, s.comandoLeerByte)
	mod.RegistrarComando("dump", 1, s.comandoDump)
}

// parsearEnteros convierte los argumentos posicionales de un comando
func parsearEnteros(args []string) ([]int, error) {
	valores := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "argumento inválido %q", arg)
		}
		valores[i] = v
	}
	return valores, nil
}

func (s *Simulador) comandoNuevoProceso(args []string) error {
	v, err := parsearEnteros(args)
	if err != nil {
		return err
	}

	err = s.mem.NuevoProceso(v[0], v[1])
	var oom *memoria.ErrorSinEspacio
	if errors.As(err, &oom) {
		// Diagnóstico OOM por salida estándar; la corrida continúa
		fmt.Fprintf(s.salida, "OOM: proc %d %s\n", oom.PID, oom.Recurso)
		return nil
	}
	return err
}

func (s *Simulador) comandoMapaLibre([]string) error {
	fmt.Fprint(s.salida, formatearMapaLibre(s.mem.MapaMarcosLibres()))
	return nil
}

func (s *Simulador) comandoTablaPaginas(args []string) error {
	v, err := parsearEnteros(args)
	if err != nil {
		return err
	}

	mapeos, err := s.mem.TablaDePaginas(v[0])
	if err != nil {
		return err
	}
	fmt.Fprint(s.salida, formatearTabla(v[0], mapeos))
	return nil
}

func (s *Simulador) comandoFinalizarProceso(args []string) error {
	v, err := parsearEnteros(args)
	if err != nil {
		return err
	}
	return s.mem.FinalizarProceso(v[0])
}

func (s *Simulador) comandoEscribirByte(args []string) error {
	v, err := parsearEnteros(args)
	if err != nil {
		return err
	}

	utils.AplicarRetardo("escritura", s.retardoMs)
	dirFisica, err := s.mem.EscribirByte(v[0], v[1], byte(v[2]))
	if err != nil {
		return err
	}
	fmt.Fprintf(s.salida, "Store proc %d: %d => %d, value=%d\n", v[0], v[1], dirFisica, v[2])
	return nil
}

func (s *Simulador) comandoLeerByte(args []string) error {
	v, err := parsearEnteros(args)
	if err != nil {
		return err
	}

	utils.AplicarRetardo("lectura", s.retardoMs)
	valor, dirFisica, err := s.mem.LeerByte(v[0], v[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.salida, "Load proc %d: %d => %d, value=%d\n", v[0], v[1], dirFisica, valor)
	return nil
}

func (s *Simulador) comandoDump(args []string) error {
	v, err := parsearEnteros(args)
	if err != nil {
		return err
	}
	_, err = s.mem.CrearDump(v[0], s.dumpPath)
	return err
}

// formatearMapaLibre arma el mapa de marcos libres: '.' libre, '#' ocupado,
// 16 celdas por fila.
func formatearMapaLibre(mapa []bool) string {
	var b strings.Builder
	b.WriteString("--- PAGE FREE MAP ---\n")
	for i, libre := range mapa {
		if libre {
			b.WriteByte('.')
		} else {
			b.WriteByte('#')
		}
		if (i+1)%marcosPorFila == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// formatearTabla arma el mapa de páginas virtuales a marcos de un proceso
func formatearTabla(pid int, mapeos []memoria.Mapeo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- PROCESS %d PAGE TABLE ---\n", pid)
	for _, mapeo := range mapeos {
		fmt.Fprintf(&b, "%02x -> %02x\n", mapeo.PaginaVirtual, mapeo.Marco)
	}
	return b.String()
}
