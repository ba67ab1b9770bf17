// Package orchestration runs modular-exponentiation cases across several
// engines concurrently and cross-checks their results. It is the CLI
// collaborator's comparison layer; the arithmetic core never imports it.
package orchestration
