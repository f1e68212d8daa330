// Package batch reads card import files: plain text, one card per line.
package batch
