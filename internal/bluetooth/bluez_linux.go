//go:build linux

package bluetooth

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	bluezBus     = "org.bluez"
	adapterIface = "org.bluez.Adapter1"
	propsGet     = "org.freedesktop.DBus.Properties.Get"
)

// CheckAvailability asks BlueZ whether the named adapter exists and is
// powered. Scanning cannot start otherwise.
func CheckAvailability(adapter string) error {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return fmt.Errorf("%w: connect to system bus: %v", ErrUnavailable, err)
	}
	defer conn.Close()

	var names []string
	if err := conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		return fmt.Errorf("%w: list bus names: %v", ErrUnavailable, err)
	}
	if !contains(names, bluezBus) {
		return fmt.Errorf("%w: org.bluez not on system bus (is bluetooth.service running?)", ErrUnavailable)
	}

	obj := conn.Object(bluezBus, dbus.ObjectPath("/org/bluez/"+adapter))
	var v dbus.Variant
	if err := obj.Call(propsGet, 0, adapterIface, "Powered").Store(&v); err != nil {
		return fmt.Errorf("%w: adapter %s: %v", ErrUnavailable, adapter, err)
	}
	powered, ok := v.Value().(bool)
	if !ok {
		return fmt.Errorf("%w: adapter %s: Powered is %T", ErrUnavailable, adapter, v.Value())
	}
	if !powered {
		return fmt.Errorf("%w: %s (try: bluetoothctl power on)", ErrAdapterOff, adapter)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
