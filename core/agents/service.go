package agents

import (
	"fmt"
	"strings"
)

// Customer service knowledge: store information, ingredients, allergens,
// dietary alternatives. Static data answered without leaving the process.

var storeInfo = []struct {
	key  string
	info string
}{
	{"hours", "Store Hours: Mon-Fri 7am-9pm, Sat-Sun 8am-8pm"},
	{"location", "Location: 123 Main Street, Downtown District"},
	{"contact", "Phone: (555) 123-4567, Email: info@sandwichshop.com"},
}

func getStoreInfo(infoType string) string {
	wanted := strings.ToLower(strings.TrimSpace(infoType))
	if wanted == "" || wanted == "all" {
		parts := make([]string, 0, len(storeInfo))
		for _, entry := range storeInfo {
			parts = append(parts, entry.info)
		}
		return strings.Join(parts, " | ")
	}
	for _, entry := range storeInfo {
		if entry.key == wanted {
			return entry.info
		}
	}
	return "Information type not found."
}

var ingredientInfo = []struct {
	key  string
	info string
}{
	{"turkey", "Turkey breast, no artificial ingredients. Contains: wheat (bread). May contain: soy, eggs, dairy (if cheese/mayo added)"},
	{"ham", "Premium ham. Contains: wheat (bread), pork. May contain: soy, eggs, dairy (if cheese/mayo added)"},
	{"roast beef", "Slow-roasted beef. Contains: wheat (bread), beef. May contain: soy, eggs, dairy (if cheese/mayo added)"},
	{"veggie", "Fresh vegetables, hummus. Contains: wheat (bread), chickpeas, tahini. Vegan-friendly option available. May contain: sesame"},
}

func getIngredientInfo(item string) string {
	wanted := strings.ToLower(item)
	for _, entry := range ingredientInfo {
		if strings.Contains(wanted, entry.key) {
			return entry.info
		}
	}
	return "Please specify which sandwich you'd like ingredient information for: turkey, ham, roast beef, or veggie."
}

var dietaryOptions = []struct {
	key  string
	info string
}{
	{"vegetarian", "Vegetarian options: Veggie Delight sandwich. You can also customize any sandwich without meat."},
	{"vegan", "Vegan options: Veggie Delight (no cheese, no mayo) on wheat bread. Add oil & vinegar for flavor!"},
	{"gluten-free", "We currently don't offer gluten-free bread, but we can make a lettuce wrap version of any sandwich upon request."},
	{"dairy-free", "Dairy-free: Skip the cheese and mayo. Use mustard, oil & vinegar instead."},
}

func checkDietaryOptions(restriction string) string {
	wanted := strings.ToLower(restriction)
	for _, entry := range dietaryOptions {
		if strings.Contains(wanted, entry.key) {
			return entry.info
		}
	}
	return "Please specify your dietary restriction: vegetarian, vegan, gluten-free, or dairy-free."
}

func handleComplaint(issue string) string {
	return fmt.Sprintf("I sincerely apologize for the issue with %s. "+
		"Your satisfaction is our top priority. I'm noting this complaint "+
		"and our manager will follow up with you shortly. "+
		"Would you like a refund or replacement for your order?", issue)
}
