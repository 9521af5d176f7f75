package texts

import (
	"fmt"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

const (
	Welcome = "👋 Добро пожаловать в %s!\n\n" +
		"У вас есть возможность одного бесплатного анализа резюме.\n" +
		"Для дальнейшего использования потребуется подписка на канал.\n\n" +
		"Отправьте ваше резюме в формате PDF для анализа."

	UnknownCommand = "❓ Неизвестная команда /%s\n\n" +
		"Отправьте резюме в формате PDF или воспользуйтесь меню."
)

// Промпт
const (
	EditPrompt = "📝 Отправьте новый промпт для анализа резюме.\n\n" +
		"Текущий промпт:\n" +
		"%s\n\n" +
		"Для отмены нажмите /cancel"
	PromptSaved = "✅ Промпт успешно обновлен!\n" +
		"Теперь выберите модель для анализа или отправьте PDF файл:"
	PromptReset     = "✅ Промпт сброшен до исходного."
	PromptCancelled = "❌ Изменение промпта отменено."
)

// Модели
const (
	ModelSelected = "✅ Модель выбрана! Теперь отправьте ваше резюме (PDF):"
	ChooseModel   = "🤖 Сначала выберите модель для анализа:"
	UnknownModel  = "Неизвестная модель: %s"
)

// Подписка
const (
	SubscriptionRequired       = "Вы использовали бесплатный анализ. Для продолжения работы подпишитесь на наш канал."
	SubscriptionRequiredAlert  = "Для дальнейшего использования бота необходимо подписаться на канал."
	SubscriptionConfirmedAlert = "✅ Подписка подтверждена!"
	SubscriptionThanks         = "Спасибо за подписку! Теперь вы можете пользоваться ботом без ограничений.\n" +
		"Отправьте ваше резюме в формате PDF для анализа."
	NotSubscribedAlert = "❌ Вы не подписаны. Подпишитесь на канал и повторите проверку."

	ButtonSubscribe         = "Подписаться"
	ButtonCheckSubscription = "Проверить подписку"
)

// Инструкция
const (
	ChoosePlatform    = "Выберите вашу платформу для получения инструкции:"
	ImagesUnavailable = "Извините, не удалось загрузить изображения инструкции."
	InstructionPC     = "Как сохранить резюме в PDF на компьютере:\n\n" +
		"1. Откройте документ в Word/Google Docs\n" +
		"2. Нажмите «Файл» → «Сохранить как» или «Экспорт»\n" +
		"3. Выберите формат PDF\n" +
		"4. Нажмите «Сохранить»\n" +
		"5. Отправьте файл боту"
	InstructionIOS = "Как сохранить резюме в PDF на iOS:\n\n" +
		"1. Откройте документ\n" +
		"2. Нажмите кнопку «Поделиться»\n" +
		"3. Выберите «Сохранить в PDF»\n" +
		"4. Отправьте файл боту"
	InstructionAndroid = "Как сохранить резюме в PDF на Android:\n\n" +
		"1. Откройте документ\n" +
		"2. Нажмите на три точки ⋮\n" +
		"3. Выберите «Сохранить как PDF»\n" +
		"4. Отправьте файл боту"
)

// Пайплайн
const (
	SendPDF          = "📎 Пожалуйста, отправьте резюме в формате PDF."
	Analyzing        = "📄 Анализирую ваше резюме... Пожалуйста, подождите."
	DownloadFailed   = "❌ Ошибка при загрузке файла. Попробуйте снова."
	ExtractFailed    = "❌ Не удалось извлечь текст из PDF. Убедитесь, что PDF содержит текстовый слой."
	ProcessingFailed = "❌ Произошла ошибка при обработке файла. Попробуйте снова."
	AnalysisHeader   = "📊 Результаты анализа:"
	EditedHeader     = "📝 Отредактированное резюме:"
	AnalyzeFailed    = "Ошибка при анализе резюме: %s"
	EditFailed       = "Ошибка при редактировании резюме: %s"
)

// Алерты оператору
const (
	AlertDownloadFailed = "❌ Не удалось скачать резюме\nuser_id: %d\nfile_id: %s\nОшибка: %s"
	AlertProviderFailed = "❌ Ошибка LLM (%s)\nuser_id: %d\nМодель: %s\nОшибка: %s"
	AlertReplyFailed    = "❌ Не удалось отправить результат анализа\nuser_id: %d\nОшибка: %s"
)

// Директивы против markdown, добавляются в каждый запрос к LLM
const (
	AnalyzeDirective = "Пожалуйста, выдай ответ в простом тексте без использования markdown форматирования " +
		"(без #, *, -, и т.д.)."
	EditDirective = "Пожалуйста, отправь ответ в виде простого текста без markdown форматирования " +
		"(без #, *, -, и т.д.)."
)

const DefaultPrompt = "Ты опытный HR-специалист и карьерный консультант. " +
	"Проанализируй резюме кандидата и дай честную, конкретную обратную связь."

// DefaultAnalyzeCriteria критерии анализа, если ANALYZE_INSTRUCTIONS не задан
const DefaultAnalyzeCriteria = "Оцени резюме по критериям:\n" +
	"1. Структура и читаемость.\n" +
	"2. Соответствие опыта заявленной позиции.\n" +
	"3. Измеримые достижения и результаты.\n" +
	"4. Ключевые навыки и их подтверждение опытом.\n" +
	"5. Грамматика, стиль и лишняя информация.\n" +
	"В конце дай список конкретных рекомендаций по улучшению."

// DefaultEditCriteria правила редактирования, если EDIT_INSTRUCTIONS не задан
const DefaultEditCriteria = "Перепиши резюме, сохранив все факты кандидата:\n" +
	"1. Сделай формулировки краткими и деловыми.\n" +
	"2. Переформулируй обязанности в достижения, где это возможно.\n" +
	"3. Исправь ошибки и уточни неясные места.\n" +
	"Не добавляй опыт и навыки, которых нет в исходном тексте."

const ResumeTextLabel = "Текст резюме:"

// PlatformButton подпись кнопки платформы
func PlatformButton(p domain.Platform) string {
	switch p {
	case domain.PlatformPC:
		return "💻 Windows/Mac"
	case domain.PlatformIOS:
		return "📱 iOS"
	case domain.PlatformAndroid:
		return "📱 Android"
	default:
		return string(p)
	}
}

// PlatformInstruction текст инструкции для платформы
func PlatformInstruction(p domain.Platform) string {
	switch p {
	case domain.PlatformPC:
		return InstructionPC
	case domain.PlatformIOS:
		return InstructionIOS
	case domain.PlatformAndroid:
		return InstructionAndroid
	default:
		return ""
	}
}

func FormatWelcome(botName string) string {
	return fmt.Sprintf(Welcome, botName)
}

func FormatUnknownCommand(command string) string {
	return fmt.Sprintf(UnknownCommand, command)
}

func FormatEditPrompt(currentPrompt string) string {
	return fmt.Sprintf(EditPrompt, currentPrompt)
}

func FormatUnknownModel(model string) string {
	return fmt.Sprintf(UnknownModel, model)
}

func FormatAnalyzeFailed(detail string) string {
	return fmt.Sprintf(AnalyzeFailed, detail)
}

func FormatEditFailed(detail string) string {
	return fmt.Sprintf(EditFailed, detail)
}
