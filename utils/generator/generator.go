package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const alphanum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanum[rand.Intn(len(alphanum))]
	}
	return string(b)
}

// TrackingNumber returns a unique shipment reference,
// e.g. TRK-20260831142501-7KQ2XW.
func TrackingNumber() string {
	return fmt.Sprintf("TRK-%s-%s", time.Now().Format("20060102150405"), randomSuffix(6))
}

// BatchNumber returns a batch reference, e.g. BN-20260831-X4P9.
func BatchNumber() string {
	return fmt.Sprintf("BN-%s-%s", time.Now().Format("20060102"), randomSuffix(4))
}

// Shelf life in days per blood product, used when a lot is created without
// an explicit expiry.
var shelfLifeDays = map[string]int{
	"whole blood":         35,
	"red blood cells":     42,
	"platelets":           5,
	"plasma":              365,
	"fresh frozen plasma": 365,
	"cryoprecipitate":     365,
}

// ExpiryDate calculates a default expiry for a blood product. Unknown
// products fall back to 35 days.
func ExpiryDate(bloodProduct string, from time.Time) time.Time {
	days, ok := shelfLifeDays[strings.ToLower(bloodProduct)]
	if !ok {
		days = 35
	}
	return from.AddDate(0, 0, days)
}
