// Package flow is the conversational state machine. It consumes inbound
// chat events, mutates the session's draft, and emits presentation
// requests for the transport to render. The transport itself (message
// delivery, keyboards, delivery retries) lives outside this package.
package flow

// Event is one inbound user action.
type Event struct {
	// UserID identifies the conversation participant.
	UserID int64

	// Text is the content of a free-text message.
	Text string

	// Choice carries a button selection payload. When non-empty the
	// event is a button press and Text is ignored.
	Choice string
}

// IsChoice reports whether the event is a button press.
func (e Event) IsChoice() bool {
	return e.Choice != ""
}

// Choice is one button offered to the user.
type Choice struct {
	// Label is the rendered caption.
	Label string
	// Data is the payload delivered back when the button is pressed.
	Data string
}

// Reply is one outbound presentation request.
type Reply struct {
	Text string
	// Choices are button rows; nil requests a plain text prompt.
	Choices [][]Choice
}

// Reserved menu commands, recognized in every state. A field capture never
// swallows them.
const (
	CmdStart  = "🚀 شروع"
	CmdNew    = "🆕 تراکنش جدید"
	CmdCancel = "❌ انصراف"
	CmdHome   = "🏠 بازگشت به صفحه اصلی"

	SlashStart  = "/start"
	SlashCancel = "/cancel"
)

// Callback payload prefixes. The value follows the prefix.
const (
	cbVariant       = "type_"
	cbDealDirection = "dir_"
	cbDealType      = "dealtype_"
	cbPartner       = "partner_"
	cbGiverPartner  = "giver_partner_"
	cbRecvPartner   = "receiver_partner_"
	cbEditField     = "field_"
	cbEditValue     = "edit_value_"

	cbConfirm       = "confirm"
	cbEdit          = "edit"
	cbCancel        = "cancel"
	cbBackToConfirm = "back_to_confirm"

	// addNewSentinel follows a partner prefix when the user asks to type
	// a new name instead of selecting one.
	addNewSentinel = "ADD_NEW"
)

// isMenuCommand reports whether a free-text message is one of the
// reserved commands.
func isMenuCommand(text string) bool {
	switch text {
	case CmdStart, CmdNew, CmdCancel, CmdHome, SlashStart, SlashCancel:
		return true
	}
	return false
}

// mainMenuChoices is the persistent menu keyboard.
func mainMenuChoices() [][]Choice {
	return [][]Choice{
		{{Label: CmdNew, Data: CmdNew}},
		{{Label: CmdHome, Data: CmdHome}, {Label: CmdCancel, Data: CmdCancel}},
	}
}
