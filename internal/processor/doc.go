// Package processor wires the card and folder stores, the translation
// pipeline and the exporters together behind the operations the CLI
// commands invoke.
package processor
