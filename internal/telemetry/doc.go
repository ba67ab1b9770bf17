// Package telemetry provides the rsa4096 CLI's observability surface:
// structured logging via zerolog, Prometheus metrics, and the selector
// observer. OpenTelemetry spans are opened by internal/rsa4096, not here.
// None of it sits on the correctness path of internal/bigint,
// internal/montgomery, or internal/modexp — the core never imports this
// package.
package telemetry
