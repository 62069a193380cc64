// Package utils provides common utility functions for the layout catalog service.
// It holds small conversion helpers that don't fit into domain-specific packages,
// such as formatting request parameters.
package utils
