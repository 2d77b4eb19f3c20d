package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEjecutarComandosDespacho(t *testing.T) {
	mod := NuevoModulo("Prueba")

	var recibido [][]string
	mod.RegistrarComando("a", 2, func(args []string) error {
		recibido = append(recibido, append([]string{"a"}, args...))
		return nil
	})
	mod.RegistrarComando("b", 0, func(args []string) error {
		recibido = append(recibido, []string{"b"})
		return nil
	})

	mod.EjecutarComandos([]string{"a", "1", "2", "desconocido", "b", "a", "3", "4"})

	esperado := [][]string{
		{"a", "1", "2"},
		{"b"},
		{"a", "3", "4"},
	}
	if diff := cmp.Diff(esperado, recibido); diff != "" {
		t.Fatalf("despacho (-want +got):\n%s", diff)
	}
}

func TestEjecutarComandosArgumentosFaltantes(t *testing.T) {
	mod := NuevoModulo("Prueba")

	llamadas := 0
	mod.RegistrarComando("a", 3, func(args []string) error {
		llamadas++
		return nil
	})

	// Quedan menos tokens que argumentos: el comando no debe ejecutarse
	mod.EjecutarComandos([]string{"a", "1"})
	if llamadas != 0 {
		t.Fatalf("el handler se ejecutó %d veces con argumentos incompletos", llamadas)
	}
}

type configPrueba struct {
	LogLevel string `json:"LOG_LEVEL"`
	Retardo  int    `json:"RETARDO_MEMORIA"`
}

func TestCargarConfiguracion(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "config.json")
	contenido := `{"LOG_LEVEL": "debug", "RETARDO_MEMORIA": 50}`
	if err := os.WriteFile(ruta, []byte(contenido), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := CargarConfiguracion[configPrueba](ruta)
	if err != nil {
		t.Fatal(err)
	}

	esperado := &configPrueba{LogLevel: "debug", Retardo: 50}
	if diff := cmp.Diff(esperado, config); diff != "" {
		t.Fatalf("configuración (-want +got):\n%s", diff)
	}
}

func TestCargarConfiguracionInexistente(t *testing.T) {
	if _, err := CargarConfiguracion[configPrueba]("/no/existe.json"); err == nil {
		t.Fatal("esperaba error por archivo inexistente")
	}
}
