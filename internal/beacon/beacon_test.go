package beacon

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const airLocate = "E2C56DB5-DFFB-48D2-B060-D0F5A71096E0"

func TestClassify(t *testing.T) {
	th := Thresholds{Immediate: 0.5, Near: 3.0}
	tests := []struct {
		dist float64
		want Proximity
	}{
		{-1, ProximityUnknown},
		{0, ProximityUnknown},
		{math.NaN(), ProximityUnknown},
		{math.Inf(1), ProximityUnknown},
		{0.1, ProximityImmediate},
		{0.49, ProximityImmediate},
		{0.5, ProximityNear},
		{2.9, ProximityNear},
		{3.0, ProximityFar},
		{25, ProximityFar},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, th.Classify(tt.dist), "Classify(%v)", tt.dist)
	}
}

func TestProximityRankOrdersNearestFirst(t *testing.T) {
	assert.Less(t, ProximityImmediate.Rank(), ProximityNear.Rank())
	assert.Less(t, ProximityNear.Rank(), ProximityFar.Rank())
	assert.Less(t, ProximityFar.Rank(), ProximityUnknown.Rank())
	assert.Equal(t, ProximityUnknown.Rank(), Proximity(42).Rank())
	assert.Equal(t, "unknown", Proximity(42).String())
}

func TestEstimateDistance(t *testing.T) {
	assert.Equal(t, -1.0, EstimateDistance(0, -59))
	assert.Equal(t, 0.1, EstimateDistance(5, -59))
	assert.InDelta(t, 1.0, EstimateDistance(-59, -59), 1e-9)
	assert.InDelta(t, 10.0, EstimateDistance(-84, -59), 1e-9)
	// zero measured power falls back to the default
	assert.InDelta(t, 1.0, EstimateDistance(-59, 0), 1e-9)
}

func TestRegistryLabel(t *testing.T) {
	id := uuid.MustParse(airLocate)
	reg := NewRegistry(map[uuid.UUID]string{id: "Apple AirLocate"})

	assert.Equal(t, "Apple AirLocate", reg.Label(id))
	// pure: repeated lookups agree
	assert.Equal(t, reg.Label(id), reg.Label(id))
	assert.Equal(t, UnknownLabel, reg.Label(uuid.MustParse("00000000-0000-0000-0000-000000000001")))

	name, ok := reg.Lookup(uuid.Nil)
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestRegistryIsImmutable(t *testing.T) {
	id := uuid.MustParse(airLocate)
	src := map[uuid.UUID]string{id: "Apple AirLocate"}
	reg := NewRegistry(src)
	src[id] = "changed"
	assert.Equal(t, "Apple AirLocate", reg.Label(id))
	assert.Equal(t, 1, reg.Len())
}

func TestParseUUID(t *testing.T) {
	id, err := ParseUUID(" e2c56db5-dffb-48d2-b060-d0f5a71096e0 ")
	require.NoError(t, err)
	assert.Equal(t, uuid.MustParse(airLocate), id)

	_, err = ParseUUID("not-a-uuid")
	assert.True(t, errors.Is(err, ErrInvalidUUID))
}

func TestConstraintMatches(t *testing.T) {
	major, minor := uint16(123), uint16(456)
	exact, err := ParseConstraint("5A4BCFCE-174E-4BAC-A814-092E77F6B7E5", &major, &minor)
	require.NoError(t, err)
	loose := Constraint{UUID: exact.UUID}

	hit := ID{UUID: exact.UUID, Major: 123, Minor: 456}
	wrongMinor := ID{UUID: exact.UUID, Major: 123, Minor: 1}
	other := ID{UUID: uuid.MustParse(airLocate), Major: 123, Minor: 456}

	assert.True(t, exact.Matches(hit))
	assert.False(t, exact.Matches(wrongMinor))
	assert.False(t, exact.Matches(other))
	assert.True(t, loose.Matches(wrongMinor))
	assert.Equal(t, "5A4BCFCE-174E-4BAC-A814-092E77F6B7E5/123/456", exact.String())
	assert.Equal(t, "5A4BCFCE-174E-4BAC-A814-092E77F6B7E5/*/*", loose.String())

	_, err = ParseConstraint("5A4BCFCE-XXXX", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidUUID)
}

func TestParseIBeacon(t *testing.T) {
	adv := Advertisement{
		ID:            ID{UUID: uuid.MustParse(airLocate), Major: 1, Minor: 0xBEEF},
		MeasuredPower: -59,
	}
	data := adv.Bytes()
	require.Len(t, data, 23)
	assert.Equal(t, []byte{0x02, 0x15, 0xE2, 0xC5}, data[:4])

	got, err := ParseIBeacon(AppleCompanyID, data)
	require.NoError(t, err)
	assert.Equal(t, adv, got)
	assert.Equal(t, airLocate+"/1/48879", got.ID.String())
}

func TestParseIBeaconRejects(t *testing.T) {
	good := Advertisement{ID: ID{UUID: uuid.MustParse(airLocate)}}.Bytes()

	wrongType := append([]byte(nil), good...)
	wrongType[0] = 0x03

	tests := []struct {
		name    string
		company uint16
		data    []byte
	}{
		{"other company", 0x0006, good},
		{"short", AppleCompanyID, good[:10]},
		{"wrong type", AppleCompanyID, wrongType},
		{"empty", AppleCompanyID, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIBeacon(tt.company, tt.data)
			assert.ErrorIs(t, err, ErrNotIBeacon)
		})
	}
}
