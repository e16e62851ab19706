package wizard

import (
	"github.com/createproject-labs/createproject/internal/prompt"
	"github.com/createproject-labs/createproject/internal/validate"
)

// Field names the record field a step fills. FieldNone marks informational lines.
type Field int

const (
	FieldNone Field = iota
	FieldProjectName
	FieldMainPackage
	FieldAuthorName
	FieldAuthorEmail
	FieldShortDescription
	FieldIncludeTemplates
)

// Step is one entry of the conversation.
type Step struct {
	prompt.Question
	Field Field
}

func info(message string, style prompt.Style) Step {
	return Step{Question: prompt.Question{Message: message, Style: style}}
}

func ask(field Field, message string, v *validate.Validator) Step {
	return Step{
		Question: prompt.Question{Message: message, Validator: v, Required: true, Style: prompt.StyleQuestion},
		Field:    field,
	}
}

// Steps is the fixed conversation, in order.
var Steps = []Step{
	info("Hi there :wave:. Let's create a new Python project", prompt.StyleInfo),
	info("I need to set up some values in the setup.py file ...", prompt.StyleInfo),
	ask(FieldProjectName, "What would you like to name the project ? :smiley:", validate.Name),
	info("Good choice ! :thumbsup:", prompt.StyleAck),
	ask(FieldMainPackage, "What will be the name of the main package ?", validate.Name),
	ask(FieldAuthorName, "Sorry ! I didn't catch your name ?", nil),
	ask(FieldAuthorEmail, "If someone needs to contact you, what would your email be ?", validate.Email),
	info("You cannot get nice emails like that anymore :fire:", prompt.StyleInfo),
	ask(FieldShortDescription, "How would you shortly describe our new project ? :sunglasses:", nil),
	ask(FieldIncludeTemplates, "Are you planning on having templates in your project ?", validate.YesNo),
}
