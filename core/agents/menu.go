package agents

import (
	"fmt"
	"strings"
)

type menuItem struct {
	key         string
	name        string
	price       float64
	description string
	available   bool
}

type menuCategory struct {
	name  string
	items []menuItem
}

var menuData = []menuCategory{
	{name: "sandwiches", items: []menuItem{
		{key: "turkey_club", name: "Turkey Club", price: 8.99, description: "Classic turkey with bacon, lettuce, and tomato", available: true},
		{key: "italian_sub", name: "Italian Sub", price: 9.99, description: "Ham, salami, provolone with Italian dressing", available: true},
		{key: "roast_beef", name: "Roast Beef", price: 10.99, description: "Premium roast beef with your choice of toppings", available: true},
		{key: "veggie_delight", name: "Veggie Delight", price: 7.99, description: "Fresh vegetables with choice of cheese and dressing", available: true},
		{key: "blt", name: "BLT", price: 7.99, description: "Bacon, lettuce, and tomato classic", available: true},
	}},
	{name: "meats", items: []menuItem{
		{key: "turkey", name: "Turkey", available: true},
		{key: "ham", name: "Ham", available: true},
		{key: "roast_beef", name: "Roast Beef", available: true},
		{key: "bacon", name: "Bacon", available: true},
		{key: "salami", name: "Salami", available: true},
	}},
	{name: "cheeses", items: []menuItem{
		{key: "swiss", name: "Swiss", available: true},
		{key: "cheddar", name: "Cheddar", available: true},
		{key: "provolone", name: "Provolone", available: true},
		{key: "pepper_jack", name: "Pepper Jack", available: true},
		{key: "american", name: "American", available: true},
	}},
	{name: "toppings", items: []menuItem{
		{key: "lettuce", name: "Lettuce", available: true},
		{key: "tomato", name: "Tomato", available: true},
		{key: "onion", name: "Onion", available: true},
		{key: "pickles", name: "Pickles", available: true},
		{key: "jalapenos", name: "Jalapenos", available: true},
		{key: "bell_peppers", name: "Bell Peppers", available: true},
		{key: "cucumbers", name: "Cucumbers", available: true},
	}},
	{name: "condiments", items: []menuItem{
		{key: "mayo", name: "Mayo", available: true},
		{key: "mustard", name: "Mustard", available: true},
		{key: "ranch", name: "Ranch", available: true},
		{key: "italian_dressing", name: "Italian Dressing", available: true},
		{key: "oil_vinegar", name: "Oil & Vinegar", available: true},
		{key: "hot_sauce", name: "Hot Sauce", available: true},
	}},
	{name: "breads", items: []menuItem{
		{key: "white", name: "White", available: true},
		{key: "wheat", name: "Wheat", available: true},
		{key: "sourdough", name: "Sourdough", available: true},
		{key: "italian", name: "Italian", available: true},
		{key: "wrap", name: "Wrap", available: true},
	}},
}

func findCategory(name string) *menuCategory {
	for i := range menuData {
		if menuData[i].name == name {
			return &menuData[i]
		}
	}
	return nil
}

func categoryNames() []string {
	names := make([]string, 0, len(menuData))
	for _, category := range menuData {
		names = append(names, category.name)
	}
	return names
}

func availableNames(category *menuCategory, withPrices bool) []string {
	var names []string
	for _, item := range category.items {
		if !item.available {
			continue
		}
		if withPrices {
			names = append(names, fmt.Sprintf("%s ($%.2f)", item.name, item.price))
		} else {
			names = append(names, item.name)
		}
	}
	return names
}

// getMenuInfo answers menu questions for one category, or the full menu
// when the category is empty.
func getMenuInfo(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category != "" && category != "all" {
		found := findCategory(category)
		if found == nil {
			return fmt.Sprintf("Category '%s' not found. Valid categories: %s",
				category, strings.Join(categoryNames(), ", "))
		}
		if found.name == "sandwiches" {
			return "Our sandwiches: " + strings.Join(availableNames(found, true), ", ")
		}
		return fmt.Sprintf("Available %s: %s", found.name, strings.Join(availableNames(found, false), ", "))
	}

	parts := []string{"Sandwiches: " + strings.Join(availableNames(findCategory("sandwiches"), true), ", ")}
	for _, name := range []string{"meats", "cheeses", "toppings", "condiments", "breads"} {
		parts = append(parts, fmt.Sprintf("%s%s: %s",
			strings.ToUpper(name[:1]), name[1:],
			strings.Join(availableNames(findCategory(name), false), ", ")))
	}
	return strings.Join(parts, ". ") + "."
}

func checkAvailability(itemName string) string {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(itemName)), " ", "_")
	for _, category := range menuData {
		for _, item := range category.items {
			if item.key != normalized && !strings.EqualFold(item.name, strings.TrimSpace(itemName)) {
				continue
			}
			if !item.available {
				return fmt.Sprintf("Sorry, %s is currently unavailable.", item.name)
			}
			if category.name == "sandwiches" {
				return fmt.Sprintf("%s is available and costs $%.2f. %s", item.name, item.price, item.description)
			}
			return fmt.Sprintf("%s is available.", item.name)
		}
	}
	return fmt.Sprintf("%s is not on our menu. Would you like to hear what we have available?", itemName)
}

func getSandwichDetails(sandwichName string) string {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(sandwichName)), " ", "_")
	for _, sandwich := range findCategory("sandwiches").items {
		if sandwich.key != normalized && !strings.EqualFold(sandwich.name, strings.TrimSpace(sandwichName)) {
			continue
		}
		if !sandwich.available {
			return fmt.Sprintf("Sorry, %s is currently unavailable.", sandwich.name)
		}
		return fmt.Sprintf("%s: %s. Price: $%.2f", sandwich.name, sandwich.description, sandwich.price)
	}
	return fmt.Sprintf("We don't have a sandwich called '%s'. Would you like to hear our sandwich menu?", sandwichName)
}

func listToppings() string {
	toppings := availableNames(findCategory("toppings"), false)
	condiments := availableNames(findCategory("condiments"), false)
	return fmt.Sprintf("Toppings: %s. Condiments: %s.",
		strings.Join(toppings, ", "), strings.Join(condiments, ", "))
}
