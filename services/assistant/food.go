package assistant

import (
	"context"
	"fmt"
	"strings"

	"concierge/models"
	"concierge/services/assistant/normalize"

	"go.uber.org/zap"
)

// foodSlots is the food flow's declared field order: cuisine, area.
func (s *DefaultAssistantService) foodSlots(st *models.FoodState, args ToolArgs) []slot {
	return []slot{
		{
			name:     "cuisine",
			prompt:   "What cuisine are you in the mood for?",
			supplied: func() bool { return args.Cuisine != nil },
			apply: func(ctx context.Context) error {
				cuisine := strings.TrimSpace(*args.Cuisine)
				if cuisine == "" {
					return NewValidationError("what cuisine are you in the mood for?")
				}
				st.Cuisine = &cuisine
				return nil
			},
			filled: func() bool { return st.Cuisine != nil },
		},
		{
			name:     "area",
			prompt:   "Which area should I look in?",
			supplied: func() bool { return args.Area != nil },
			apply: func(ctx context.Context) error {
				area := strings.TrimSpace(*args.Area)
				if area == "" {
					return NewValidationError("which area should I look in?")
				}
				st.Area = &area
				return nil
			},
			filled: func() bool { return st.Area != nil },
		},
	}
}

func (s *DefaultAssistantService) foodDetails(ctx context.Context, sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Food
	if res, done := advance(ctx, OpFoodDetails, s.foodSlots(st, args)); !done {
		return res
	}
	return s.foodSearch(ctx, st)
}

func (s *DefaultAssistantService) foodSearch(ctx context.Context, st *models.FoodState) models.ToolResult {
	restaurants, err := s.Catalog.Restaurants(ctx, *st.Cuisine, *st.Area)
	if err != nil {
		s.Logger.Error("restaurant search failed", zap.Error(err))
		return models.Error(OpFoodDetails, "failed to search restaurants, please try again")
	}
	if len(restaurants) == 0 {
		return errorResult(OpFoodDetails,
			NewEmptyResultError("no %s restaurants found in %s, try a different cuisine or area", *st.Cuisine, *st.Area))
	}

	st.SearchResults = restaurants
	st.Selection = nil
	st.Menu = nil
	st.Cart = nil

	options := make([]map[string]interface{}, 0, len(restaurants))
	for i, r := range restaurants {
		options = append(options, map[string]interface{}{
			"position":   i + 1,
			"restaurant": r,
		})
	}
	data := map[string]interface{}{
		"cuisine": *st.Cuisine,
		"area":    *st.Area,
		"options": options,
	}

	s.publish(ctx, OpFoodDetails, data)
	return models.Success(OpFoodDetails,
		fmt.Sprintf("%d restaurants found for %s in %s", len(restaurants), *st.Cuisine, *st.Area), data)
}

// foodSelect picks a restaurant from the current results and loads its menu. A new
// selection starts an empty cart.
func (s *DefaultAssistantService) foodSelect(ctx context.Context, sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Food
	if len(st.SearchResults) == 0 {
		return models.Error(OpFoodSelect, "no restaurant results to choose from, search for restaurants first")
	}
	if args.Choice == nil {
		return models.Partial(OpFoodSelect, "which restaurant would you like?")
	}

	names := make([]string, len(st.SearchResults))
	for i, r := range st.SearchResults {
		names[i] = r.Name
	}
	idx, err := resolveChoice(*args.Choice, names, normalize.PlaceThreshold)
	if err != nil {
		return errorResult(OpFoodSelect, err)
	}

	selected := st.SearchResults[idx]
	menu, err := s.Catalog.MenuItems(ctx, selected.ID)
	if err != nil {
		s.Logger.Error("menu lookup failed", zap.String("restaurantId", selected.ID), zap.Error(err))
		return models.Error(OpFoodSelect, "failed to load the menu, please try again")
	}
	if len(menu) == 0 {
		return errorResult(OpFoodSelect,
			NewEmptyResultError("%s has no menu items right now, pick another restaurant", selected.Name))
	}

	st.Selection = &selected
	st.Menu = menu
	st.Cart = nil

	items := make([]map[string]interface{}, 0, len(menu))
	for i, m := range menu {
		items = append(items, map[string]interface{}{
			"position": i + 1,
			"item":     m,
		})
	}
	return models.Success(OpFoodSelect,
		fmt.Sprintf("selected %s, here is the menu", selected.Name),
		map[string]interface{}{
			"restaurant": selected,
			"menu":       items,
		})
}

// foodItems adds a menu item to the cart. The item is fuzzy matched at the looser
// menu threshold and the quantity comes from spoken words in the utterance, the
// explicit quantity argument, or defaults to one. Re-adding an item accumulates its
// quantity on the existing cart line.
func (s *DefaultAssistantService) foodItems(sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Food
	if st.Selection == nil {
		return models.Error(OpFoodItems, "pick a restaurant before ordering items")
	}
	if args.Item == nil {
		return models.Partial(OpFoodItems, "what would you like to order?")
	}

	names := make([]string, len(st.Menu))
	for i, m := range st.Menu {
		names[i] = m.Name
	}
	idx, ok := normalize.Match(*args.Item, names, normalize.MenuThreshold)
	if !ok {
		return errorResult(OpFoodItems,
			NewNotFoundError("could not find %q on the menu, please try again", *args.Item))
	}
	item := st.Menu[idx]

	explicit := 0
	if args.Quantity != nil {
		explicit = *args.Quantity
	}
	qty := normalize.Quantity(*args.Item, explicit)

	added := false
	for i := range st.Cart {
		if st.Cart[i].Item.ID == item.ID {
			st.Cart[i].Quantity += qty
			added = true
			break
		}
	}
	if !added {
		st.Cart = append(st.Cart, models.CartLine{Item: item, Quantity: qty})
	}

	return models.Success(OpFoodItems,
		fmt.Sprintf("added %d x %s to the order", qty, item.Name),
		map[string]interface{}{
			"cart":     st.Cart,
			"subtotal": s.foodSubtotal(st),
		})
}

func (s *DefaultAssistantService) foodPayment(sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Food
	if st.Selection == nil || len(st.Cart) == 0 {
		return models.Error(OpFoodPayment, "the order is empty, add some items first")
	}

	if args.PaymentMethod != nil {
		method := strings.TrimSpace(*args.PaymentMethod)
		if method != "" {
			st.PaymentMethod = &method
		}
	}
	if st.PaymentMethod == nil {
		return models.Partial(OpFoodPayment, "how would you like to pay?")
	}

	subtotal := s.foodSubtotal(st)
	return models.Success(OpFoodPayment, "order payment summary ready", map[string]interface{}{
		"restaurant":    st.Selection.Name,
		"cart":          st.Cart,
		"subtotal":      subtotal,
		"deliveryFee":   s.DeliveryFee,
		"totalPrice":    subtotal + s.DeliveryFee,
		"paymentMethod": *st.PaymentMethod,
		"currency":      s.Currency,
	})
}

func (s *DefaultAssistantService) foodConfirm(ctx context.Context, sess *models.Session, args ToolArgs) models.ToolResult {
	st := &sess.Food
	if st.Selection == nil || len(st.Cart) == 0 || st.PaymentMethod == nil {
		return models.Error(OpFoodConfirm, "complete the order and payment method before confirming")
	}

	lines := make([]map[string]interface{}, 0, len(st.Cart))
	for _, line := range st.Cart {
		lines = append(lines, map[string]interface{}{
			"itemId":   line.Item.ID,
			"name":     line.Item.Name,
			"price":    line.Item.Price,
			"quantity": line.Quantity,
		})
	}
	return s.commit(ctx, sess, args.Confirm, commitRequest{
		step:        OpFoodConfirm,
		bookingType: string(models.FlowFood),
		itemID:      st.Selection.ID,
		details: map[string]interface{}{
			"restaurant":    st.Selection.Name,
			"cuisine":       st.Selection.Cuisine,
			"area":          st.Selection.Area,
			"cart":          lines,
			"deliveryFee":   s.DeliveryFee,
			"paymentMethod": *st.PaymentMethod,
		},
		total:     s.foodSubtotal(st) + s.DeliveryFee,
		currency:  s.Currency,
		prompt:    "shall I place the order?",
		confirmed: &st.Confirmed,
		bookingID: &st.BookingID,
	})
}

// foodSubtotal is always derived from the current cart.
func (s *DefaultAssistantService) foodSubtotal(st *models.FoodState) float64 {
	subtotal := 0.0
	for _, line := range st.Cart {
		subtotal += line.Item.Price * float64(line.Quantity)
	}
	return subtotal
}
