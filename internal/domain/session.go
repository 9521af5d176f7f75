package domain

// UserID идентификатор пользователя Telegram
type UserID int64

// ConversationState состояние диалога с пользователем
type ConversationState int

const (
	StateIdle              ConversationState = iota // начальное состояние
	StateAwaitingNewPrompt                          // ждём текст нового промпта
)

func (s ConversationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingNewPrompt:
		return "awaiting_new_prompt"
	default:
		return "unknown"
	}
}

// Session состояние пользователя, живёт только в памяти процесса
type Session struct {
	State          ConversationState
	PromptOverride *string // nil - используется промпт по умолчанию
	Model          string  // пусто - модель не выбрана
	AnalysisCount  int     // количество завершённых анализов
}

// Clone возвращает копию сессии, не разделяющую указатели с оригиналом
func (s Session) Clone() Session {
	if s.PromptOverride != nil {
		p := *s.PromptOverride
		s.PromptOverride = &p
	}
	return s
}
