// Package cli holds the cobra command scaffolding, flag definitions and
// viper configuration handling shared by the flipcard commands.
package cli
