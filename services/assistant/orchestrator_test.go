package assistant

import (
	"context"
	"testing"

	"concierge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownOperation(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})

	res := svc.HandleTool(context.Background(), "s1", "teleport", ToolArgs{})
	require.Equal(t, models.StatusError, res.Status)
	assert.Equal(t, models.FlowNone, svc.Sessions.Get("s1").ActiveFlow)
}

func TestFlowSwitchClearsPreviousSlots(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})

	svc.HandleTool(context.Background(), "s1", OpFlightDetails, ToolArgs{
		FromCity: strp("Dubai"),
		ToCity:   strp("Riyadh"),
	})
	sess := svc.Sessions.Get("s1")
	require.NotNil(t, sess.Flight.FromCity)
	require.Equal(t, models.FlowFlight, sess.ActiveFlow)

	// Jumping to the food flow wipes every flight slot.
	res := svc.HandleTool(context.Background(), "s1", OpFoodDetails, ToolArgs{
		Cuisine: strp("Lebanese"),
	})
	require.Equal(t, models.StatusPartial, res.Status)
	assert.Equal(t, models.FlowFood, sess.ActiveFlow)
	assert.Nil(t, sess.Flight.FromCity)
	assert.Nil(t, sess.Flight.ToCity)

	// Coming back to flights starts from scratch with no inherited state.
	res = svc.HandleTool(context.Background(), "s1", OpFlightDetails, ToolArgs{})
	require.Equal(t, models.StatusPartial, res.Status)
	assert.Contains(t, res.Message, "flying from")
	assert.Nil(t, sess.Food.Cuisine)
}

func TestSessionsAreIndependent(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})

	svc.HandleTool(context.Background(), "s1", OpFlightDetails, ToolArgs{FromCity: strp("Dubai")})
	svc.HandleTool(context.Background(), "s2", OpRideDetails, ToolArgs{Pickup: strp("Marina")})

	assert.Equal(t, models.FlowFlight, svc.Sessions.Get("s1").ActiveFlow)
	assert.Equal(t, models.FlowRide, svc.Sessions.Get("s2").ActiveFlow)
	assert.Nil(t, svc.Sessions.Get("s2").Flight.FromCity)
}

func TestEndSessionDiscardsState(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})

	svc.HandleTool(context.Background(), "s1", OpFlightDetails, ToolArgs{FromCity: strp("Dubai")})
	svc.EndSession("s1")

	// A later call finds a fresh session.
	sess := svc.Sessions.Get("s1")
	assert.Equal(t, models.FlowNone, sess.ActiveFlow)
	assert.Nil(t, sess.Flight.FromCity)
}

func TestResolveChoiceNumericBounds(t *testing.T) {
	names := []string{"Emirates", "FlyDubai", "Saudia"}

	idx, err := resolveChoice("2", names, 68)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = resolveChoice("0", names, 68)
	require.Error(t, err)
	_, err = resolveChoice("4", names, 68)
	require.Error(t, err)
	_, err = resolveChoice("   ", names, 68)
	require.Error(t, err)
}
