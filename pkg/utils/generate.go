package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateReservationID returns an id of the form RES-YYYYMMDD-XXXXXXXX.
func GenerateReservationID() string {
	datePart := time.Now().Format("20060102")
	randomPart := strings.ToUpper(uuid.New().String()[:8])

	return fmt.Sprintf("RES-%s-%s", datePart, randomPart)
}
