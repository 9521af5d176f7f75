package domain

// Кнопки главного меню, сравниваются с текстом сообщения целиком
const (
	ButtonEditPrompt   = "✏️ Изменить промпт"
	ButtonResetPrompt  = "🔄 Вернуть исходный промпт"
	ButtonInstructions = "📖 Инструкция"
)

// Platform платформа для инструкции по сохранению PDF
type Platform string

const (
	PlatformPC      Platform = "pc"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// AllPlatforms платформы в порядке показа в меню
func AllPlatforms() []Platform {
	return []Platform{PlatformPC, PlatformIOS, PlatformAndroid}
}

func (p Platform) IsValid() bool {
	switch p {
	case PlatformPC, PlatformIOS, PlatformAndroid:
		return true
	default:
		return false
	}
}

// CallbackData данные inline кнопки платформы (instruction_pc)
func (p Platform) CallbackData() string {
	return CallbackInstructionPrefix + string(p)
}

// ImageNames имена картинок инструкции ({platform}_step1.png, {platform}_step2.png)
func (p Platform) ImageNames() []string {
	return []string{
		string(p) + "_step1.png",
		string(p) + "_step2.png",
	}
}
