package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentServiceEnd(t *testing.T) {
	appt := &Appointment{ID: 7, Date: "2024-01-10", EndTime: "14:00"}

	end, err := appt.ServiceEnd()
	require.NoError(t, err)
	assert.True(t, end.Equal(time.Date(2024, 1, 10, 14, 0, 0, 0, time.Local)))
}

func TestAppointmentServiceEndMissingFields(t *testing.T) {
	tests := []struct {
		name string
		appt Appointment
	}{
		{name: "no date", appt: Appointment{ID: 1, EndTime: "14:00"}},
		{name: "no end time", appt: Appointment{ID: 2, Date: "2024-01-10"}},
		{name: "garbled date", appt: Appointment{ID: 3, Date: "10/01/2024", EndTime: "14:00"}},
		{name: "garbled time", appt: Appointment{ID: 4, Date: "2024-01-10", EndTime: "25:99"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.appt.ServiceEnd()
			assert.Error(t, err)
		})
	}
}

func TestAppointmentIsCash(t *testing.T) {
	assert.True(t, (&Appointment{PaymentMethod: PaymentMethodCash}).IsCash())
	assert.False(t, (&Appointment{PaymentMethod: PaymentMethodCard}).IsCash())
}
