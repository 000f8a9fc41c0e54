package utils

import (
	"fmt"
	"net/http"
)

// ANSI escape codes for console output.
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
)

func ColorText(text, color string) string {
	return color + text + Reset
}

// ColorStatus renders a status code with its class color.
func ColorStatus(statusCode int) string {
	var color string
	switch {
	case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
		color = Green
	case statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError:
		color = Yellow
	default:
		color = Red
	}
	return fmt.Sprintf("%s%d%s", color, statusCode, Reset)
}
