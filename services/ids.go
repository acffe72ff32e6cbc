package services

import (
	"math/rand"
	"strconv"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateUniqueID returns `<base36 ms timestamp>_<5 base36 chars>`.
// Collision-resistant under normal issuance rates, not globally unique.
func GenerateUniqueID() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return timestamp + "_" + string(suffix)
}
