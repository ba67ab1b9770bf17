// Package clipresent renders the rsa4096 CLI's output: self-check result
// tables, benchmark summaries, and decimal/hex truncation for values too
// wide for a terminal line. It depends on internal/ui for color and on
// internal/telemetry only through plain data it is handed; it never imports
// the arithmetic core directly, so the same table renderer works whether
// the caller is reporting on bigint, montgomery, or modexp self-checks.
package clipresent
