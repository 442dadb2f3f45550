// Package utils provides common utility functions for the ams-coverage application.
// It includes helpers for converting loosely typed decoded documents (YAML, JSON)
// into the plain strings the domain types carry.
package utils
