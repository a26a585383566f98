package importer

import (
	"errors"

	"seed-manager/core/ingest"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps an import error to an HTTP status code.
func StatusFor(err error) int {
	if errors.Is(err, ErrStorageUnavailable) {
		return fiber.StatusServiceUnavailable
	}

	switch ingest.KindOf(err) {
	case ingest.KindMissingInput, ingest.KindSourceUnreadable:
		return fiber.StatusBadRequest
	case ingest.KindUnsupportedFormat:
		return fiber.StatusUnsupportedMediaType
	case ingest.KindMalformedJSON, ingest.KindMalformedCSV, ingest.KindEncodingUndetectable,
		ingest.KindSpreadsheetUnreadable, ingest.KindUnsupportedConstruct:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
