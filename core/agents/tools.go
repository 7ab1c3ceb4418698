package agents

import "github.com/counterline/voice-core/core/llms"

// Tool sets for the specialized agents. Order tools close over the
// shared order store with the conversation's thread ID as the order key.

func (s *Supervisor) orderTools(threadID string) []llms.Tool {
	return []llms.Tool{
		llms.NewTool("add_to_order", "Add an item to the customer's sandwich order",
			map[string]llms.ParameterBase{
				"item":           {Type: "string", Description: "The name of the item to add, e.g. 'Turkey Club'"},
				"quantity":       {Type: "integer", Description: "The number of items to add"},
				"customizations": {Type: "string", Description: "Optional customizations like 'no tomatoes' or 'extra cheese'"},
			},
			func(parameters struct {
				Item           string `json:"item"`
				Quantity       int    `json:"quantity"`
				Customizations string `json:"customizations"`
			}) (string, error) {
				quantity := parameters.Quantity
				if quantity == 0 {
					quantity = 1
				}
				return s.orders.add(threadID, parameters.Item, quantity, parameters.Customizations), nil
			}),
		llms.NewTool("remove_from_order", "Remove an item from the customer's order",
			map[string]llms.ParameterBase{
				"item": {Type: "string", Description: "The name of the item to remove"},
			},
			func(parameters struct {
				Item string `json:"item"`
			}) (string, error) {
				return s.orders.remove(threadID, parameters.Item), nil
			}),
		llms.NewTool("view_order", "View the current order contents",
			map[string]llms.ParameterBase{},
			func(parameters struct{}) (string, error) {
				return s.orders.view(threadID), nil
			}),
		llms.NewTool("confirm_order", "Confirm and finalize the customer's order, sending it to the kitchen",
			map[string]llms.ParameterBase{},
			func(parameters struct{}) (string, error) {
				return s.orders.confirm(threadID), nil
			}),
		llms.NewTool("cancel_order", "Cancel the current order and clear all items",
			map[string]llms.ParameterBase{},
			func(parameters struct{}) (string, error) {
				return s.orders.cancel(threadID), nil
			}),
		llms.NewTool("modify_item", "Change the customizations of an item already in the order",
			map[string]llms.ParameterBase{
				"item":               {Type: "string", Description: "The name of the item to modify"},
				"new_customizations": {Type: "string", Description: "The customizations to apply instead"},
			},
			func(parameters struct {
				Item              string `json:"item"`
				NewCustomizations string `json:"new_customizations"`
			}) (string, error) {
				return s.orders.modify(threadID, parameters.Item, parameters.NewCustomizations), nil
			}),
		llms.NewTool("clear_order", "Clear all items from the order without cancelling it",
			map[string]llms.ParameterBase{},
			func(parameters struct{}) (string, error) {
				return s.orders.clear(threadID), nil
			}),
		llms.NewTool("get_menu_info", "Get information about menu items and available options",
			map[string]llms.ParameterBase{
				"category": {Type: "string", Description: "Optional category to filter by: sandwiches, meats, cheeses, toppings, condiments or breads. Empty for the full menu"},
			},
			func(parameters struct {
				Category string `json:"category"`
			}) (string, error) {
				return getMenuInfo(parameters.Category), nil
			}),
		llms.NewTool("check_availability", "Check if a specific menu item or ingredient is available",
			map[string]llms.ParameterBase{
				"item_name": {Type: "string", Description: "The name of the item to check"},
			},
			func(parameters struct {
				ItemName string `json:"item_name"`
			}) (string, error) {
				return checkAvailability(parameters.ItemName), nil
			}),
	}
}

func (s *Supervisor) customerServiceTools() []llms.Tool {
	return []llms.Tool{
		llms.NewTool("get_menu_info", "Get information about menu items and available options",
			map[string]llms.ParameterBase{
				"category": {Type: "string", Description: "Optional category to filter by: sandwiches, meats, cheeses, toppings, condiments or breads. Empty for the full menu"},
			},
			func(parameters struct {
				Category string `json:"category"`
			}) (string, error) {
				return getMenuInfo(parameters.Category), nil
			}),
		llms.NewTool("get_sandwich_details", "Get detailed information about a specific sandwich",
			map[string]llms.ParameterBase{
				"sandwich_name": {Type: "string", Description: "The name of the sandwich"},
			},
			func(parameters struct {
				SandwichName string `json:"sandwich_name"`
			}) (string, error) {
				return getSandwichDetails(parameters.SandwichName), nil
			}),
		llms.NewTool("list_toppings", "List all available toppings and condiments",
			map[string]llms.ParameterBase{},
			func(parameters struct{}) (string, error) {
				return listToppings(), nil
			}),
		llms.NewTool("get_ingredient_info", "Get ingredient and allergen information for a menu item",
			map[string]llms.ParameterBase{
				"item": {Type: "string", Description: "The menu item to query"},
			},
			func(parameters struct {
				Item string `json:"item"`
			}) (string, error) {
				return getIngredientInfo(parameters.Item), nil
			}),
		llms.NewTool("get_store_info", "Get store information such as hours, location or contact details",
			map[string]llms.ParameterBase{
				"info_type": {Type: "string", Description: "Type of information requested: hours, location, contact or all"},
			},
			func(parameters struct {
				InfoType string `json:"info_type"`
			}) (string, error) {
				return getStoreInfo(parameters.InfoType), nil
			}),
		llms.NewTool("check_dietary_options", "Check menu options for a dietary restriction",
			map[string]llms.ParameterBase{
				"restriction": {Type: "string", Description: "Type of dietary restriction, e.g. vegetarian, vegan, gluten-free"},
			},
			func(parameters struct {
				Restriction string `json:"restriction"`
			}) (string, error) {
				return checkDietaryOptions(parameters.Restriction), nil
			}),
		llms.NewTool("handle_complaint", "Record a customer complaint and offer a resolution",
			map[string]llms.ParameterBase{
				"issue": {Type: "string", Description: "Description of the customer's complaint"},
			},
			func(parameters struct {
				Issue string `json:"issue"`
			}) (string, error) {
				return handleComplaint(parameters.Issue), nil
			}),
	}
}
