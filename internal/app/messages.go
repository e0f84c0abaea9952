package app

import "time"

// TickMsg triggers a ranging pass and an animation frame.
type TickMsg time.Time

// EvictMsg triggers beacon eviction and region exit detection.
type EvictMsg time.Time
