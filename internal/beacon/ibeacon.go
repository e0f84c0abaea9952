package beacon

import (
	"encoding/binary"
	"errors"

	"github.com/google/uuid"
)

// AppleCompanyID is the Bluetooth SIG company identifier carried by iBeacon frames.
const AppleCompanyID uint16 = 0x004C

const (
	ibeaconType   = 0x02
	ibeaconLength = 0x15 // bytes following the type/length header
	ibeaconSize   = 2 + ibeaconLength
)

// ErrNotIBeacon is returned for manufacturer data that is not an iBeacon frame.
var ErrNotIBeacon = errors.New("not an iBeacon advertisement")

// Advertisement is the decoded payload of an iBeacon frame.
type Advertisement struct {
	ID            ID
	MeasuredPower int8 // calibrated RSSI at 1 meter
}

// ParseIBeacon decodes the manufacturer-specific data of an advertisement.
//
// Layout after the company ID: 0x02 0x15, 16-byte UUID, major (BE), minor (BE),
// measured power (int8).
func ParseIBeacon(companyID uint16, data []byte) (Advertisement, error) {
	if companyID != AppleCompanyID || len(data) < ibeaconSize {
		return Advertisement{}, ErrNotIBeacon
	}
	if data[0] != ibeaconType || data[1] != ibeaconLength {
		return Advertisement{}, ErrNotIBeacon
	}

	var id uuid.UUID
	copy(id[:], data[2:18])

	return Advertisement{
		ID: ID{
			UUID:  id,
			Major: binary.BigEndian.Uint16(data[18:20]),
			Minor: binary.BigEndian.Uint16(data[20:22]),
		},
		MeasuredPower: int8(data[22]),
	}, nil
}

// Bytes encodes the advertisement as iBeacon manufacturer data, without the
// company ID.
func (a Advertisement) Bytes() []byte {
	b := make([]byte, ibeaconSize)
	b[0] = ibeaconType
	b[1] = ibeaconLength
	copy(b[2:18], a.ID.UUID[:])
	binary.BigEndian.PutUint16(b[18:20], a.ID.Major)
	binary.BigEndian.PutUint16(b[20:22], a.ID.Minor)
	b[22] = byte(a.MeasuredPower)
	return b
}

// Observation is one ranged beacon as seen in a single ranging pass.
type Observation struct {
	ID        ID
	Proximity Proximity
	RSSI      float64
	Distance  float64 // meters, negative when unknown
}
