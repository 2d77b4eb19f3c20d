package memoria

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mapaConOcupados arma el mapa esperado de marcos libres con los marcos
// indicados ocupados (el 0 siempre lo está).
func mapaConOcupados(marcos ...int) []bool {
	mapa := make([]bool, CantMarcos)
	for i := range mapa {
		mapa[i] = true
	}
	mapa[0] = false
	for _, marco := range marcos {
		mapa[marco] = false
	}
	return mapa
}

func TestEscenarioCompleto(t *testing.T) {
	m := NuevaMemoria()

	if diff := cmp.Diff(mapaConOcupados(), m.MapaMarcosLibres()); diff != "" {
		t.Fatalf("mapa inicial (-want +got):\n%s", diff)
	}

	// np 0 2: marco 1 para la tabla, marcos 2 y 3 para los datos
	if err := m.NuevoProceso(0, 2); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(mapaConOcupados(1, 2, 3), m.MapaMarcosLibres()); diff != "" {
		t.Fatalf("mapa tras np 0 2 (-want +got):\n%s", diff)
	}

	mapeos, err := m.TablaDePaginas(0)
	if err != nil {
		t.Fatal(err)
	}
	esperado := []Mapeo{{PaginaVirtual: 0, Marco: 2}, {PaginaVirtual: 1, Marco: 3}}
	if diff := cmp.Diff(esperado, mapeos); diff != "" {
		t.Fatalf("tabla de páginas (-want +got):\n%s", diff)
	}

	// sb 0 0 42 / lb 0 0
	if _, err := m.EscribirByte(0, 0, 42); err != nil {
		t.Fatal(err)
	}
	valor, _, err := m.LeerByte(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if valor != 42 {
		t.Fatalf("LeerByte = %d, esperaba 42", valor)
	}

	// kp 0: vuelven a quedar libres los marcos 1, 2 y 3
	if err := m.FinalizarProceso(0); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(mapaConOcupados(), m.MapaMarcosLibres()); diff != "" {
		t.Fatalf("mapa tras kp 0 (-want +got):\n%s", diff)
	}

	// El slot quedó limpio: el pid puede reutilizarse
	if _, err := m.TablaDePaginas(0); !errors.Is(err, ErrProcesoInexistente) {
		t.Fatalf("esperaba ErrProcesoInexistente tras kp, obtuve %v", err)
	}
	if err := m.NuevoProceso(0, 1); err != nil {
		t.Fatalf("recrear el proceso tras kp falló: %v", err)
	}
}

func TestNuevoProcesoExistente(t *testing.T) {
	m := NuevaMemoria()
	if err := m.NuevoProceso(0, 1); err != nil {
		t.Fatal(err)
	}

	libres := m.ContarMarcosLibres()
	if err := m.NuevoProceso(0, 1); !errors.Is(err, ErrProcesoExistente) {
		t.Fatalf("esperaba ErrProcesoExistente, obtuve %v", err)
	}
	if m.ContarMarcosLibres() != libres {
		t.Fatal("el rechazo por slot ocupado no debe consumir marcos")
	}
}

func TestFinalizarProcesoInexistente(t *testing.T) {
	m := NuevaMemoria()
	if err := m.FinalizarProceso(9); !errors.Is(err, ErrProcesoInexistente) {
		t.Fatalf("esperaba ErrProcesoInexistente, obtuve %v", err)
	}
}

func TestAgotamiento(t *testing.T) {
	m := NuevaMemoria()

	// 1 tabla + 62 datos = los 63 marcos asignables
	if err := m.NuevoProceso(0, 62); err != nil {
		t.Fatal(err)
	}
	if m.ContarMarcosLibres() != 0 {
		t.Fatalf("quedaron %d marcos libres, esperaba 0", m.ContarMarcosLibres())
	}

	err := m.NuevoProceso(1, 1)
	var oom *ErrorSinEspacio
	if !errors.As(err, &oom) {
		t.Fatalf("esperaba *ErrorSinEspacio, obtuve %v", err)
	}
	if oom.PID != 1 || oom.Recurso != "page table" {
		t.Fatalf("diagnóstico OOM inesperado: %v", oom)
	}
	if !errors.Is(err, ErrSinMarcosLibres) {
		t.Fatal("ErrorSinEspacio debe envolver ErrSinMarcosLibres")
	}

	// El proceso existente no se corrompe
	mapeos, err := m.TablaDePaginas(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(mapeos) != 62 {
		t.Fatalf("el proceso 0 quedó con %d mapeos, esperaba 62", len(mapeos))
	}
}

func TestAgotamientoConReversion(t *testing.T) {
	m := NuevaMemoria()

	if err := m.NuevoProceso(0, 40); err != nil {
		t.Fatal(err)
	}
	libres := m.ContarMarcosLibres()

	// Pide más páginas de las que quedan: falla al asignar datos y revierte
	err := m.NuevoProceso(1, libres+5)
	var oom *ErrorSinEspacio
	if !errors.As(err, &oom) {
		t.Fatalf("esperaba *ErrorSinEspacio, obtuve %v", err)
	}
	if oom.Recurso != "data page" {
		t.Fatalf("recurso OOM = %q, esperaba \"data page\"", oom.Recurso)
	}

	if m.ContarMarcosLibres() != libres {
		t.Fatalf("la reversión dejó %d marcos libres, esperaba %d", m.ContarMarcosLibres(), libres)
	}
	if _, err := m.TablaDePaginas(1); !errors.Is(err, ErrProcesoInexistente) {
		t.Fatalf("el slot del proceso fallido debe quedar vacío, obtuve %v", err)
	}

	mapeos, err := m.TablaDePaginas(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(mapeos) != 40 {
		t.Fatalf("el proceso 0 quedó con %d mapeos, esperaba 40", len(mapeos))
	}
}

func TestMetricas(t *testing.T) {
	m := NuevaMemoria()

	if err := m.NuevoProceso(0, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := m.EscribirByte(0, 0, 1); err != nil {
		t.Fatal(err)
	}
	if _, _, err := m.LeerByte(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := m.FinalizarProceso(0); err != nil {
		t.Fatal(err)
	}

	esperado := MetricasProceso{
		AccesosTablaPaginas: 2,
		LecturasMemoria:     1,
		EscriturasMemoria:   1,
		MarcosAsignados:     2,
		MarcosLiberados:     2,
	}
	if diff := cmp.Diff(esperado, m.Metricas(0)); diff != "" {
		t.Fatalf("métricas (-want +got):\n%s", diff)
	}
}
