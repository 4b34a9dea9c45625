package classify

type example struct {
	text  string
	label string
}

// corpus is the labelled seed data for the bundled model. Roughly balanced
// across categories, with a tail of deliberately mixed phrasings.
var corpus = []example{
	{"Hello", CategoryCommon},
	{"Hi there", CategoryCommon},
	{"Good morning", CategoryCommon},
	{"How are you?", CategoryCommon},
	{"What can you help me with?", CategoryCommon},
	{"Tell me about your company", CategoryCommon},
	{"What services do you offer?", CategoryCommon},
	{"Thank you", CategoryCommon},
	{"Thanks for your help", CategoryCommon},
	{"Goodbye", CategoryCommon},
	{"What are your business hours?", CategoryCommon},
	{"Where are you located?", CategoryCommon},
	{"How can I contact you?", CategoryCommon},
	{"Tell me more", CategoryCommon},
	{"I need some information", CategoryCommon},
	{"Can you help me?", CategoryCommon},
	{"What is metro?", CategoryCommon},
	{"Tell me about metro company", CategoryCommon},
	{"What do you do?", CategoryCommon},
	{"How does this work?", CategoryCommon},

	{"What products do you have?", CategoryProducts},
	{"Show me solar panels", CategoryProducts},
	{"I need a 10kW generator", CategoryProducts},
	{"What's the price of inverters?", CategoryProducts},
	{"Do you have battery systems?", CategoryProducts},
	{"Tell me about your solar products", CategoryProducts},
	{"What generators are available?", CategoryProducts},
	{"I'm looking for electrical equipment", CategoryProducts},
	{"What are the specifications of this inverter?", CategoryProducts},
	{"How much does a solar panel cost?", CategoryProducts},
	{"Show me your product catalog", CategoryProducts},
	{"What's the warranty on your products?", CategoryProducts},
	{"Do you have 5kW solar systems?", CategoryProducts},
	{"I need a backup generator", CategoryProducts},
	{"Tell me about solar panel specifications", CategoryProducts},
	{"What models of inverters do you have?", CategoryProducts},
	{"I'm interested in your products", CategoryProducts},
	{"What's the price range for generators?", CategoryProducts},
	{"Do you have portable solar panels?", CategoryProducts},
	{"Show me battery backup systems", CategoryProducts},
	{"I want to buy a solar panel", CategoryProducts},
	{"What's included in the solar package?", CategoryProducts},
	{"Tell me about product features", CategoryProducts},
	{"Do you have commercial generators?", CategoryProducts},
	{"What capacity inverters do you stock?", CategoryProducts},

	{"I want to buy a solar system", CategorySalesman},
	{"Can I get a quote for installation?", CategorySalesman},
	{"Who can help me with purchasing?", CategorySalesman},
	{"I need to speak with a sales representative", CategorySalesman},
	{"Can you give me a discount?", CategorySalesman},
	{"What's the best deal you have?", CategorySalesman},
	{"I want to place an order", CategorySalesman},
	{"How do I purchase from you?", CategorySalesman},
	{"Can someone help me choose the right product?", CategorySalesman},
	{"I need a sales agent to contact me", CategorySalesman},
	{"What payment options do you have?", CategorySalesman},
	{"Do you offer financing?", CategorySalesman},
	{"I want to buy a generator today", CategorySalesman},
	{"Can I get a bulk discount?", CategorySalesman},
	{"Who handles commercial sales?", CategorySalesman},
	{"I need a quote for 20 solar panels", CategorySalesman},
	{"Connect me with a salesperson", CategorySalesman},
	{"I'm ready to purchase", CategorySalesman},
	{"What are your payment terms?", CategorySalesman},
	{"Do you have any promotions?", CategorySalesman},
	{"I need assistance with buying", CategorySalesman},
	{"Can you recommend a package?", CategorySalesman},
	{"I want to order equipment", CategorySalesman},
	{"Who can give me a price quote?", CategorySalesman},
	{"I need help choosing a system", CategorySalesman},

	{"Who works in the technical department?", CategoryEmployees},
	{"I need to contact an employee", CategoryEmployees},
	{"Tell me about your staff", CategoryEmployees},
	{"Who is the manager?", CategoryEmployees},
	{"I need to speak with someone from accounting", CategoryEmployees},
	{"What departments do you have?", CategoryEmployees},
	{"Can I get contact info for an employee?", CategoryEmployees},
	{"Who handles customer service?", CategoryEmployees},
	{"I need to reach the IT department", CategoryEmployees},
	{"Tell me about your team structure", CategoryEmployees},
	{"Who is in charge of operations?", CategoryEmployees},
	{"I need to contact HR", CategoryEmployees},
	{"What positions are available?", CategoryEmployees},
	{"Who works in the office?", CategoryEmployees},
	{"I need an employee's contact information", CategoryEmployees},
	{"Tell me about your staff members", CategoryEmployees},
	{"Who handles logistics?", CategoryEmployees},
	{"I need to speak with the administration", CategoryEmployees},
	{"What's the organizational structure?", CategoryEmployees},
	{"Who is the department head?", CategoryEmployees},
	{"I need to contact a specific employee", CategoryEmployees},
	{"Tell me about the management team", CategoryEmployees},
	{"Who works in procurement?", CategoryEmployees},
	{"I need the contact for finance department", CategoryEmployees},
	{"Can you connect me with an employee?", CategoryEmployees},

	{"I have a problem with my solar panel, need repair", CategorySalesman},
	{"My generator is not working, need a technician", CategorySalesman},
	{"What's the price and who can help me buy?", CategorySalesman},
	{"Show me products and give me a quote", CategorySalesman},
	{"I need employee contact for technical support", CategoryEmployees},
	{"Which staff member handles installations?", CategoryEmployees},
	{"Tell me about solar panels and their prices", CategoryProducts},
	{"Do you have inverters in stock?", CategoryProducts},
	{"What's available for purchase today?", CategorySalesman},
	{"I need information about your business", CategoryCommon},
}

// TrainingData returns the bundled corpus as parallel text and label slices.
func TrainingData() ([]string, []string) {
	texts := make([]string, len(corpus))
	labels := make([]string, len(corpus))
	for i, ex := range corpus {
		texts[i] = ex.text
		labels[i] = ex.label
	}
	return texts, labels
}
