package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_UnmarshalLayouts(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2025-11-02T19:30:00Z"`, time.Date(2025, 11, 2, 19, 30, 0, 0, time.UTC)},
		{`"2025-11-02T19:30:00"`, time.Date(2025, 11, 2, 19, 30, 0, 0, time.UTC)},
		{`"2025-11-02T19:30"`, time.Date(2025, 11, 2, 19, 30, 0, 0, time.UTC)},
		{`"2025-11-02 19:30:00"`, time.Date(2025, 11, 2, 19, 30, 0, 0, time.UTC)},
		{`"2025-11-02"`, time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var d DateTime
			require.NoError(t, json.Unmarshal([]byte(tc.in), &d))
			assert.True(t, tc.want.Equal(d.Time), "got %v", d.Time)
		})
	}
}

func TestDateTime_UnmarshalNull(t *testing.T) {
	var d DateTime
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDateTime_UnmarshalRejectsGarbage(t *testing.T) {
	var d DateTime
	assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestEvent_DisplayNamePrefersLocalizedColumn(t *testing.T) {
	e := Event{Name: "plain", NombreAlt: "Concierto"}
	assert.Equal(t, "Concierto", e.DisplayName())

	e = Event{Name: "plain"}
	assert.Equal(t, "plain", e.DisplayName())
}

func TestEvent_HasEnrollment(t *testing.T) {
	e := Event{Enrollments: []Enrollment{{UserID: 7}, {UserID: 9}}}
	assert.True(t, e.HasEnrollment(9))
	assert.False(t, e.HasEnrollment(1))
}
