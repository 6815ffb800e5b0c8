package assistant

import (
	"context"
	"testing"

	"concierge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startRideSearch(t *testing.T, svc *DefaultAssistantService, sessionID string) {
	t.Helper()
	res := svc.HandleTool(context.Background(), sessionID, OpRideDetails, ToolArgs{
		Pickup:      strp("Marina"),
		Destination: strp("Airport"),
		RideType:    strp("sedan"),
		Passengers:  intp(2),
	})
	require.Equal(t, models.StatusSuccess, res.Status)
}

func TestRideSlotOrder(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})

	res := svc.HandleTool(context.Background(), "s1", OpRideDetails, ToolArgs{})
	require.Equal(t, models.StatusPartial, res.Status)
	assert.Contains(t, res.Message, "pick you up")

	res = svc.HandleTool(context.Background(), "s1", OpRideDetails, ToolArgs{Pickup: strp("Marina")})
	require.Equal(t, models.StatusPartial, res.Status)
	assert.Contains(t, res.Message, "headed")
}

func TestRideUnknownTypeReasks(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})

	res := svc.HandleTool(context.Background(), "s1", OpRideDetails, ToolArgs{
		Pickup:      strp("Marina"),
		Destination: strp("Airport"),
		RideType:    strp("boat"),
	})
	require.Equal(t, models.StatusPartial, res.Status)
	assert.Contains(t, res.Message, "boat")

	st := svc.Sessions.Get("s1").Ride
	assert.Nil(t, st.RideType)
	require.NotNil(t, st.Pickup)
}

func TestRidePassengersMinimum(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})

	res := svc.HandleTool(context.Background(), "s1", OpRideDetails, ToolArgs{
		Pickup:      strp("Marina"),
		Destination: strp("Airport"),
		RideType:    strp("sedan"),
		Passengers:  intp(0),
	})
	require.Equal(t, models.StatusPartial, res.Status)
	assert.Nil(t, svc.Sessions.Get("s1").Ride.Passengers)
}

func TestRideSearchSamplesDistanceOnce(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})
	startRideSearch(t, svc, "s1")

	st := svc.Sessions.Get("s1").Ride
	assert.Equal(t, 10, st.DistanceKm)
	assert.Len(t, st.SearchResults, 2)
}

func TestRideSelectAndFare(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})
	startRideSearch(t, svc, "s1")

	res := svc.HandleTool(context.Background(), "s1", OpRideSelect, ToolArgs{Choice: strp("careem")})
	require.Equal(t, models.StatusSuccess, res.Status)

	st := svc.Sessions.Get("s1").Ride
	require.NotNil(t, st.Selection)
	assert.Equal(t, "Careem", st.Selection.Service)

	// BaseFare 12 + 3.2/km over 10 km, for 2 passengers.
	data := res.Data.(map[string]interface{})
	assert.Equal(t, 44.0, data["estimatedFare"])
	assert.Equal(t, 88.0, data["totalPrice"])
}

func TestRidePaymentAndConfirm(t *testing.T) {
	store := &fakeBookings{}
	svc := newTestService(testCatalog(), store)
	startRideSearch(t, svc, "s1")

	svc.HandleTool(context.Background(), "s1", OpRideSelect, ToolArgs{Choice: strp("2")})
	res := svc.HandleTool(context.Background(), "s1", OpRidePayment, ToolArgs{PaymentMethod: strp("cash")})
	require.Equal(t, models.StatusSuccess, res.Status)

	// Uber: BaseFare 10 + 3.0 x 10 km, for 2 passengers.
	data := res.Data.(map[string]interface{})
	assert.Equal(t, 80.0, data["totalPrice"])

	res = svc.HandleTool(context.Background(), "s1", OpRideConfirm, ToolArgs{Confirm: boolp(true)})
	require.Equal(t, models.StatusSuccess, res.Status)
	require.Len(t, store.created, 1)
	assert.Equal(t, "ride", store.created[0].BookingType)
	assert.Equal(t, "R002", store.created[0].ItemID)
	assert.Equal(t, 80.0, store.created[0].TotalPrice)
}

func TestRideSelectBeforeSearch(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})

	res := svc.HandleTool(context.Background(), "s1", OpRideSelect, ToolArgs{Choice: strp("1")})
	assert.Equal(t, models.StatusError, res.Status)
}
