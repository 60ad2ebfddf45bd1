package clock

import "time"

// Clock provides time to adapters that stamp or expire records.
type Clock interface {
	Now() time.Time
}
