package http_test

import (
	"os"
	"testing"

	hubmetrics "github.com/jhoicas/hubber-api/prometheus"
)

// Las métricas se registran una sola vez para todo el paquete: los handlers las
// incrementan y un doble registro en Prometheus provoca panic.
func TestMain(m *testing.M) {
	hubmetrics.InitMetrics("hubber_test")
	os.Exit(m.Run())
}
