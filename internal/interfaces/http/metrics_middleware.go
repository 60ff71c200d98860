package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	hubmetrics "github.com/jhoicas/hubber-api/prometheus"
)

// MetricsMiddleware registra contador y latencia de cada request HTTP.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		duration := time.Since(start).Seconds()
		method := c.Method()
		path := c.Route().Path

		hubmetrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		hubmetrics.HTTPRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration)

		return err
	}
}
