package engine

const (
	menuMessage        = "Hello there,\n1) Ask some questions\n2) Create an account\n3) Log in"
	invalidMenuMessage = "Please choose a valid option:\n1) Ask some questions\n2) Create an account\n3) Log in"

	askQuestionsMessage = "Ask your questions."

	createEmailMessage  = "Let's create an account for you.\n\nPlease enter your email:"
	invalidEmailMessage = "I couldn't find a valid email. Please enter your email address:"
	createNameMessage   = "Great! Now, please enter your name:"
	invalidNameMessage  = "Please enter your name:"
	invalidPhoneMessage = "Please enter a valid mobile number (10 digits):"

	loginEmailMessage    = "Please enter your email to log in:"
	loginInvalidMessage  = "Please enter a valid email address:"
	loginNotFoundMessage = "No account found with that email. Would you like to create an account?\n\n1) Yes, create account\n2) Try different email"

	apologyMessage      = "I apologize, but I encountered an error processing your question. Could you please rephrase?"
	accountErrorMessage = "I couldn't create your account right now. Please try again in a moment."
)

var (
	menuOptions       = []string{"Option 1", "Option 2", "Option 3"}
	questionHints     = []string{"Ask about solar", "Ask about generators", "Ask about inverters", "Ask about electrical systems"}
	activeChatOptions = []string{"Ask a question", "View products", "Contact support"}
	loginRetryOptions = []string{"Create account", "Try again"}
	retryOptions      = []string{"Try again", "Start over"}
)

// Option synonym sets for the menu state. Any member of a set leads to the
// same successor state; anything else re-shows the menu.
var (
	askQuestionsChoices  = []string{"1", "1)", "option 1", "ask questions", "ask some questions"}
	createAccountChoices = []string{"2", "2)", "option 2", "create account", "create an account"}
	loginChoices         = []string{"3", "3)", "option 3", "log in", "login"}
)
