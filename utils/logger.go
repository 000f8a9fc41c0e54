package utils

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// PrintLogInfo writes the per-request outcome line: who hit the API, what
// status they got, and from which handler.
func PrintLogInfo(caller *string, statusCode int, functionName string, err *error) {
	var logColor string

	switch {
	case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
		logColor = Green
	case statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError:
		logColor = Yellow
	case statusCode >= http.StatusInternalServerError:
		logColor = Red
	default:
		logColor = Reset
	}

	who := "Unknown"
	if caller != nil {
		who = *caller
	}

	line := fmt.Sprintf("Caller: %s | Status: %s | Function: %s", who, ColorStatus(statusCode), functionName)
	if err != nil && *err != nil {
		log.Error().Err(*err).Msg(line)
		fmt.Printf("%s%s | Error: %v%s\n", logColor, line, *err, Reset)
		return
	}

	log.Info().Msg(line)
	fmt.Printf("%s%s%s\n", logColor, line, Reset)
}
