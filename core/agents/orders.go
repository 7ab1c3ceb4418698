package agents

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

type orderStatus string

const (
	orderStatusBuilding  orderStatus = "building"
	orderStatusConfirmed orderStatus = "confirmed"
)

type orderItem struct {
	item           string
	quantity       int
	customizations string
	addedAt        time.Time
}

type order struct {
	items       []orderItem
	status      orderStatus
	createdAt   time.Time
	confirmedAt time.Time
}

// orderStore holds in-progress orders keyed by conversation thread ID.
// All access goes through the mutex; tool executions for different
// sessions may run concurrently.
type orderStore struct {
	mu     sync.Mutex
	orders map[string]*order
}

func newOrderStore() *orderStore {
	return &orderStore{orders: map[string]*order{}}
}

func (s *orderStore) getOrCreate(orderID string) *order {
	current, ok := s.orders[orderID]
	if !ok {
		current = &order{status: orderStatusBuilding, createdAt: time.Now()}
		s.orders[orderID] = current
	}
	return current
}

func describeItem(item orderItem) string {
	description := fmt.Sprintf("%d x %s", item.quantity, item.item)
	if item.customizations != "" {
		description += fmt.Sprintf(" (%s)", item.customizations)
	}
	return description
}

func (current *order) summary() string {
	items := make([]string, 0, len(current.items))
	for _, item := range current.items {
		items = append(items, describeItem(item))
	}
	return strings.Join(items, ", ")
}

func (s *orderStore) add(orderID, item string, quantity int, customizations string) string {
	if quantity <= 0 {
		return "Please specify a positive quantity."
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.getOrCreate(orderID)
	added := orderItem{
		item:           item,
		quantity:       quantity,
		customizations: customizations,
		addedAt:        time.Now(),
	}
	current.items = append(current.items, added)

	return fmt.Sprintf("Added %s to your order.", describeItem(added))
}

func (s *orderStore) remove(orderID, item string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[orderID]
	if !ok {
		return "You don't have any items in your order yet."
	}

	wanted := strings.ToLower(strings.TrimSpace(item))
	for i, existing := range current.items {
		if strings.ToLower(strings.TrimSpace(existing.item)) == wanted {
			current.items = append(current.items[:i], current.items[i+1:]...)
			return fmt.Sprintf("Removed %s from your order.", existing.item)
		}
	}
	return fmt.Sprintf("Couldn't find '%s' in your order.", item)
}

func (s *orderStore) view(orderID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[orderID]
	if !ok || len(current.items) == 0 {
		return "Your order is empty. What would you like to order?"
	}

	total := 0
	for _, item := range current.items {
		total += item.quantity
	}
	plural := "s"
	if total == 1 {
		plural = ""
	}
	return fmt.Sprintf("Your order: %s. Total: %d item%s.", current.summary(), total, plural)
}

func (s *orderStore) confirm(orderID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[orderID]
	if !ok || len(current.items) == 0 {
		return "You don't have any items in your order to confirm."
	}

	current.status = orderStatusConfirmed
	current.confirmedAt = time.Now()

	return fmt.Sprintf("Order confirmed: %s. Sending to the kitchen now! Your order will be ready in about 10-15 minutes.", current.summary())
}

func (s *orderStore) cancel(orderID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[orderID]
	if !ok {
		return "There's no order to cancel."
	}

	delete(s.orders, orderID)
	if current.status == orderStatusConfirmed {
		return "Your confirmed order has been cancelled. If you placed this order recently, please check with staff."
	}
	return "Your order has been cancelled. Let me know if you'd like to start a new order!"
}

func (s *orderStore) modify(orderID, item, newCustomizations string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[orderID]
	if !ok || len(current.items) == 0 {
		return "You don't have any items in your order yet."
	}

	wanted := strings.ToLower(strings.TrimSpace(item))
	for i := range current.items {
		if strings.ToLower(strings.TrimSpace(current.items[i].item)) == wanted {
			current.items[i].customizations = newCustomizations
			return fmt.Sprintf("Updated %s: %s", current.items[i].item, newCustomizations)
		}
	}
	return fmt.Sprintf("Couldn't find '%s' in your order to modify.", item)
}

func (s *orderStore) clear(orderID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[orderID]
	if !ok {
		return "Your order is already empty."
	}

	current.items = nil
	current.status = orderStatusBuilding
	return "Cleared all items from your order. What would you like to order?"
}
