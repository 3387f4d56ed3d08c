package domain

import "github.com/m04kA/SMC-SchedulingService/pkg/types"

// SlotMinutes is the fixed availability granularity.
const SlotMinutes = 30

// Default working hours applied when a provider is created without them
var (
	DefaultWorkStart = types.TimeString("08:00")
	DefaultWorkEnd   = types.TimeString("18:00")
)

// Business validation constants
const (
	MaxNoteLength        = 500
	MaxNameLength        = 150
	MaxDescriptionLength = 1000
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04" // YYYY-MM-DDTHH:MM
)
