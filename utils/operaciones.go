package utils

import (
	"time"
)

// AplicarRetardo aplica un retardo simulado de acceso y lo registra
func AplicarRetardo(operacion string, duracionMs int) {
	if duracionMs <= 0 {
		return
	}
	Log.WithField("operación", operacion).WithField("duración_ms", duracionMs).Debug("Aplicando retardo")
	time.Sleep(time.Duration(duracionMs) * time.Millisecond)
}
