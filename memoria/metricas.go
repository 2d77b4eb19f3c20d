package memoria

// MetricasProceso acumula estadísticas de uso de memoria de un proceso.
// Sobreviven a la finalización del proceso para poder reportarlas.
type MetricasProceso struct {
	AccesosTablaPaginas int
	LecturasMemoria     int
	EscriturasMemoria   int
	MarcosAsignados     int
	MarcosLiberados     int
}

// metricaDe devuelve las métricas del proceso, creándolas si no existen.
// El llamador debe tener tomado m.mu.
func (m *Memoria) metricaDe(pid int) *MetricasProceso {
	met, existe := m.metricas[pid]
	if !existe {
		met = &MetricasProceso{}
		m.metricas[pid] = met
	}
	return met
}

// Metricas devuelve una copia de las métricas acumuladas de un proceso
func (m *Memoria) Metricas(pid int) MetricasProceso {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if met, existe := m.metricas[pid]; existe {
		return *met
	}
	return MetricasProceso{}
}
