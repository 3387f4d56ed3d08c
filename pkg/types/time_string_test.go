package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "hours and minutes", input: "09:30", want: "09:30"},
		{name: "with seconds", input: "18:00:00", want: "18:00"},
		{name: "postgres fractional", input: "07:05:00.000000", want: "07:05"},
		{name: "garbage", input: "nine", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := MustTimeString("17:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:15"), got)

	_, err = MustTimeString("23:50").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Comparisons(t *testing.T) {
	nine := MustTimeString("09:00")
	half := MustTimeString("09:30")

	assert.True(t, nine.IsBefore(half))
	assert.True(t, half.IsAfter(nine))
	assert.False(t, nine.IsBefore(nine))
	assert.True(t, nine.Equal(MustTimeString("09:00:00")))

	assert.True(t, nine.Within(nine, half))
	assert.False(t, half.Within(nine, half), "end of range is exclusive")
}

func TestTimeString_On(t *testing.T) {
	day := time.Date(2099, 1, 1, 13, 17, 0, 0, time.UTC)
	got := MustTimeString("08:05").On(day)
	assert.Equal(t, time.Date(2099, 1, 1, 8, 5, 0, 0, time.UTC), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("08:00:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := MustTimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
