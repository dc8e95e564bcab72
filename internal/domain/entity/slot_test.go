package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Slot
		wantErr bool
	}{
		{name: "morning", input: "09:00", want: NewSlot(9, 0)},
		{name: "half hour", input: "17:30", want: NewSlot(17, 30)},
		{name: "midnight", input: "00:00", want: 0},
		{name: "end of day", input: "24:00", want: MinutesPerDay},
		{name: "past end of day", input: "24:30", wantErr: true},
		{name: "minute overflow", input: "10:60", wantErr: true},
		{name: "single digit hour", input: "9:00", wantErr: true},
		{name: "missing separator", input: "0900", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSlot(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSlot)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlot_JSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		Slot Slot `json:"slot"`
	}{Slot: NewSlot(8, 5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"slot":"08:05"}`, string(payload))

	var decoded struct {
		Slot Slot `json:"slot"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"slot":"14:00"}`), &decoded))
	assert.Equal(t, NewSlot(14, 0), decoded.Slot)

	assert.Error(t, json.Unmarshal([]byte(`{"slot":"25:00"}`), &decoded))
}
