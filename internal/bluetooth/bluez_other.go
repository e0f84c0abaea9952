//go:build !linux

package bluetooth

// CheckAvailability is a no-op where there is no BlueZ; adapter.Enable
// reports problems instead.
func CheckAvailability(string) error {
	return nil
}
