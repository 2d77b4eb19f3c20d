package main

// MemoriaConfig representa la configuración del simulador. La geometría de la
// memoria es fija (ver el paquete memoria); acá solo viven los parámetros
// ambientales.
type MemoriaConfig struct {
	LogLevel       string `json:"LOG_LEVEL"`
	DumpPath       string `json:"DUMP_PATH"`
	RetardoMemoria int    `json:"RETARDO_MEMORIA"` // ms por acceso sb/lb
}

// configPorDefecto aplica cuando no se pasa archivo de configuración
func configPorDefecto() *MemoriaConfig {
	return &MemoriaConfig{
		LogLevel:       "info",
		DumpPath:       "dumps",
		RetardoMemoria: 0,
	}
}

var config *MemoriaConfig
