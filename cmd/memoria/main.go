package main

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/memoria"
	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

func main() {
	if err := app().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func app() *cli.App {
	return &cli.App{
		Name:      "memoria",
		Usage:     "simulador de memoria física paginada administrada por software",
		ArgsUsage: "comando [args...] [comando [args...] ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "ruta al archivo JSON de configuración",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "nivel de log (debug, info, warn, error)",
			},
		},
		Action: ejecutar,
	}
}

func ejecutar(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("uso: memoria comandos", 1)
	}

	// Logger con nivel por defecto hasta cargar la configuración
	utils.InicializarLogger("info", "Memoria")

	if err := inicializarConfig(c.String("config")); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	nivel := config.LogLevel
	if c.IsSet("log-level") {
		nivel = c.String("log-level")
	}
	utils.InicializarLogger(nivel, "Memoria")

	utils.Log.Info("Iniciando módulo Memoria")

	sim := &Simulador{
		mem:       memoria.NuevaMemoria(),
		salida:    os.Stdout,
		dumpPath:  config.DumpPath,
		retardoMs: config.RetardoMemoria,
	}

	mod := utils.NuevoModulo("Memoria")
	sim.registrarComandos(mod)
	mod.EjecutarComandos(c.Args().Slice())

	return nil
}

func inicializarConfig(ruta string) error {
	config = configPorDefecto()

	if ruta == "" {
		return nil
	}

	cargada, err := utils.CargarConfiguracion[MemoriaConfig](ruta)
	if err != nil {
		return err
	}
	if cargada.LogLevel == "" {
		cargada.LogLevel = config.LogLevel
	}
	if cargada.DumpPath == "" {
		cargada.DumpPath = config.DumpPath
	}
	config = cargada
	return nil
}
