package assistant

import (
	"context"
	"testing"

	"concierge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startFoodOrder runs the food flow up to a selected restaurant with a loaded menu.
func startFoodOrder(t *testing.T, svc *DefaultAssistantService, sessionID string) {
	t.Helper()
	res := svc.HandleTool(context.Background(), sessionID, OpFoodDetails, ToolArgs{
		Cuisine: strp("Lebanese"),
		Area:    strp("Deira"),
	})
	require.Equal(t, models.StatusSuccess, res.Status)

	res = svc.HandleTool(context.Background(), sessionID, OpFoodSelect, ToolArgs{Choice: strp("1")})
	require.Equal(t, models.StatusSuccess, res.Status)
}

func TestFoodSlotOrder(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})

	res := svc.HandleTool(context.Background(), "s1", OpFoodDetails, ToolArgs{})
	require.Equal(t, models.StatusPartial, res.Status)
	assert.Contains(t, res.Message, "cuisine")

	res = svc.HandleTool(context.Background(), "s1", OpFoodDetails, ToolArgs{Cuisine: strp("Lebanese")})
	require.Equal(t, models.StatusPartial, res.Status)
	assert.Contains(t, res.Message, "area")
}

func TestFoodSearchEmptyKeepsSlots(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})

	res := svc.HandleTool(context.Background(), "s1", OpFoodDetails, ToolArgs{
		Cuisine: strp("Lebanese"),
		Area:    strp("Marina"),
	})
	require.Equal(t, models.StatusError, res.Status)

	// The area can be corrected without re-stating the cuisine.
	st := svc.Sessions.Get("s1").Food
	require.NotNil(t, st.Cuisine)
	res = svc.HandleTool(context.Background(), "s1", OpFoodDetails, ToolArgs{Area: strp("Deira")})
	require.Equal(t, models.StatusSuccess, res.Status)
}

func TestFoodSelectLoadsMenuAndResetsCart(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})
	startFoodOrder(t, svc, "s1")

	st := &svc.Sessions.Get("s1").Food
	require.NotNil(t, st.Selection)
	assert.Equal(t, "Al Mallah", st.Selection.Name)
	assert.Len(t, st.Menu, 2)

	svc.HandleTool(context.Background(), "s1", OpFoodItems, ToolArgs{Item: strp("falafel wrap")})
	require.Len(t, st.Cart, 1)

	// Re-selecting a restaurant starts a fresh cart.
	res := svc.HandleTool(context.Background(), "s1", OpFoodSelect, ToolArgs{Choice: strp("2")})
	require.Equal(t, models.StatusSuccess, res.Status)
	assert.Equal(t, "Operation Falafel", st.Selection.Name)
	assert.Empty(t, st.Cart)
}

func TestFoodItemsSpokenQuantityAndAccumulation(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})
	startFoodOrder(t, svc, "s1")

	res := svc.HandleTool(context.Background(), "s1", OpFoodItems, ToolArgs{Item: strp("two falafel wrap")})
	require.Equal(t, models.StatusSuccess, res.Status)

	st := svc.Sessions.Get("s1").Food
	require.Len(t, st.Cart, 1)
	assert.Equal(t, "Falafel Wrap", st.Cart[0].Item.Name)
	assert.Equal(t, 2, st.Cart[0].Quantity)

	// Adding the same item again grows the existing line instead of duplicating it.
	res = svc.HandleTool(context.Background(), "s1", OpFoodItems, ToolArgs{Item: strp("falafel wrap")})
	require.Equal(t, models.StatusSuccess, res.Status)
	st = svc.Sessions.Get("s1").Food
	require.Len(t, st.Cart, 1)
	assert.Equal(t, 3, st.Cart[0].Quantity)
}

func TestFoodItemsExplicitQuantity(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})
	startFoodOrder(t, svc, "s1")

	res := svc.HandleTool(context.Background(), "s1", OpFoodItems, ToolArgs{
		Item:     strp("chicken shawarma plate"),
		Quantity: intp(4),
	})
	require.Equal(t, models.StatusSuccess, res.Status)

	st := svc.Sessions.Get("s1").Food
	require.Len(t, st.Cart, 1)
	assert.Equal(t, 4, st.Cart[0].Quantity)
}

func TestFoodItemsUnknownItemLeavesCartUntouched(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})
	startFoodOrder(t, svc, "s1")

	svc.HandleTool(context.Background(), "s1", OpFoodItems, ToolArgs{Item: strp("falafel wrap")})
	res := svc.HandleTool(context.Background(), "s1", OpFoodItems, ToolArgs{Item: strp("sushi boat")})
	require.Equal(t, models.StatusError, res.Status)
	assert.Equal(t, "notFound", res.Data.(map[string]interface{})["code"])

	st := svc.Sessions.Get("s1").Food
	require.Len(t, st.Cart, 1)
	assert.Equal(t, 1, st.Cart[0].Quantity)
}

func TestFoodPaymentAddsDeliveryFee(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})
	startFoodOrder(t, svc, "s1")

	svc.HandleTool(context.Background(), "s1", OpFoodItems, ToolArgs{Item: strp("two falafel wrap")})

	res := svc.HandleTool(context.Background(), "s1", OpFoodPayment, ToolArgs{})
	require.Equal(t, models.StatusPartial, res.Status)

	res = svc.HandleTool(context.Background(), "s1", OpFoodPayment, ToolArgs{PaymentMethod: strp("card")})
	require.Equal(t, models.StatusSuccess, res.Status)
	data := res.Data.(map[string]interface{})
	assert.Equal(t, 36.0, data["subtotal"])
	assert.Equal(t, 46.0, data["totalPrice"])
}

func TestFoodConfirmWritesOrder(t *testing.T) {
	store := &fakeBookings{}
	svc := newTestService(testCatalog(), store)
	startFoodOrder(t, svc, "s1")

	svc.HandleTool(context.Background(), "s1", OpFoodItems, ToolArgs{Item: strp("two falafel wrap")})
	svc.HandleTool(context.Background(), "s1", OpFoodPayment, ToolArgs{PaymentMethod: strp("cash")})

	res := svc.HandleTool(context.Background(), "s1", OpFoodConfirm, ToolArgs{Confirm: boolp(true)})
	require.Equal(t, models.StatusSuccess, res.Status)
	require.Len(t, store.created, 1)
	assert.Equal(t, "food", store.created[0].BookingType)
	assert.Equal(t, "r1", store.created[0].ItemID)
	assert.Equal(t, 46.0, store.created[0].TotalPrice)
}

func TestFoodItemsBeforeSelection(t *testing.T) {
	svc := newTestService(testCatalog(), &fakeBookings{})

	res := svc.HandleTool(context.Background(), "s1", OpFoodItems, ToolArgs{Item: strp("falafel wrap")})
	assert.Equal(t, models.StatusError, res.Status)
}
