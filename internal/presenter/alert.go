package presenter

import "fmt"

// Alert is the modal shown on arrival.
type Alert struct {
	Title   string
	Message string
}

// AlertPolicy allows a single arrival alert per process. Exiting a region
// does not re-arm it.
type AlertPolicy struct {
	fired bool
}

// OnRegionEntered returns the arrival alert for the first region entry and
// false for every entry after that.
func (a *AlertPolicy) OnRegionEntered(beaconName string) (Alert, bool) {
	if a.fired {
		return Alert{}, false
	}
	a.fired = true
	return Alert{
		Title:   "Beacon Detected",
		Message: fmt.Sprintf("You are near %s.", beaconName),
	}, true
}

// Fired reports whether the alert has already been shown.
func (a *AlertPolicy) Fired() bool {
	return a.fired
}

// Reset re-arms the policy.
func (a *AlertPolicy) Reset() {
	a.fired = false
}
