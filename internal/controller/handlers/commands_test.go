package handlers

import (
	"strings"
	"testing"

	"github.com/smartsched/smartsched/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEmployeesWeekdaysMondayFirst(t *testing.T) {
	availability, err := model.ParseWeeklyAvailability(map[string][]string{
		"Sunday":    {"10:00-14:00"},
		"Monday":    {"08:00-12:00", "13:00-17:00"},
		"Wednesday": {"09:00-13:00"},
	})
	require.NoError(t, err)

	text := formatEmployees([]*model.Employee{
		{Name: "Laura Sanchez", Role: "Stylist", Availability: availability},
	})

	assert.Contains(t, text, "Laura Sanchez — Stylist")
	assert.Contains(t, text, "Monday: 08:00-12:00, 13:00-17:00")
	assert.NotContains(t, text, "Tuesday:")

	monday := strings.Index(text, "Monday:")
	wednesday := strings.Index(text, "Wednesday:")
	sunday := strings.Index(text, "Sunday:")
	require.NotEqual(t, -1, monday)
	require.NotEqual(t, -1, wednesday)
	require.NotEqual(t, -1, sunday)
	assert.Less(t, monday, wednesday)
	assert.Less(t, wednesday, sunday, "Sunday is listed last, not first")
}

func TestFormatEmployeesWithoutHours(t *testing.T) {
	text := formatEmployees([]*model.Employee{
		{Name: "Carlos Gomez", Role: "Barber"},
	})
	assert.Contains(t, text, "(no working hours configured)")
}

func TestCommandArgument(t *testing.T) {
	assert.Equal(t, "Ana Lopez", commandArgument("/appointments Ana Lopez"))
	assert.Equal(t, "", commandArgument("/appointments"))
	assert.Equal(t, "Laura Sanchez", commandArgument("  /schedule   Laura Sanchez  "))
}
