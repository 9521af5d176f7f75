package domain

// EventKind тип входящего события после классификации апдейта
type EventKind int

const (
	EventText              EventKind = iota // произвольный текст
	EventStart                              // /start
	EventCancel                             // /cancel
	EventCommand                            // прочие команды
	EventInstructions                       // кнопка "📖 Инструкция"
	EventDocument                           // документ
	EventCheckSubscription                  // callback check_subscription
	EventCallback                           // прочие callback
)

func (k EventKind) String() string {
	switch k {
	case EventText:
		return "text"
	case EventStart:
		return "start"
	case EventCancel:
		return "cancel"
	case EventCommand:
		return "command"
	case EventInstructions:
		return "instructions"
	case EventDocument:
		return "document"
	case EventCheckSubscription:
		return "check_subscription"
	case EventCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// Event нормализованное входящее событие
type Event struct {
	Kind      EventKind
	UpdateID  int64
	UserID    UserID
	ChatID    int64
	MessageID int64
	Text      string // текст сообщения как есть
	Command   string // имя команды без "/" и @bot, пусто для не-команд
	Document  *Document
	// callback
	CallbackID   string
	CallbackData string
}

// IsCallback пришло ли событие из нажатия inline кнопки
func (e *Event) IsCallback() bool {
	return e.CallbackID != ""
}

// Callback данные inline кнопок
const (
	CallbackCheckSubscription = "check_subscription"
	CallbackInstructionPrefix = "instruction_"
)

// DenyReason причина отказа гейта
type DenyReason string

const (
	DenyNone          DenyReason = ""
	DenyNotSubscribed DenyReason = "not_subscribed"
)

// GateDecision решение гейта по событию
type GateDecision struct {
	Allowed bool
	Reason  DenyReason
}

func Allow() GateDecision {
	return GateDecision{Allowed: true}
}

func Deny(reason DenyReason) GateDecision {
	return GateDecision{Allowed: false, Reason: reason}
}
