package resume

import (
	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/admin/tg-bots/resume-bot/internal/usecases/resume/texts"
)

type button = map[string]interface{}

func textButton(text string) button {
	return button{"text": text}
}

func callbackButton(text, data string) button {
	return button{"text": text, "callback_data": data}
}

func urlButton(text, url string) button {
	return button{"text": text, "url": url}
}

func replyKeyboard(rows [][]button) map[string]interface{} {
	return map[string]interface{}{
		"keyboard":        rows,
		"resize_keyboard": true,
	}
}

func inlineKeyboard(rows [][]button) map[string]interface{} {
	return map[string]interface{}{
		"inline_keyboard": rows,
	}
}

func removeKeyboard() map[string]interface{} {
	return map[string]interface{}{
		"remove_keyboard": true,
	}
}

// modelsRow кнопки моделей, только если выбирать есть из чего
func (s *Service) modelsRow() []button {
	if !s.Config.SelectionRequired() {
		return nil
	}
	row := make([]button, 0, len(s.Config.Models))
	for _, m := range s.Config.Models {
		row = append(row, textButton(m))
	}
	return row
}

// mainKeyboard главное меню
func (s *Service) mainKeyboard() map[string]interface{} {
	rows := make([][]button, 0, 4)
	if row := s.modelsRow(); row != nil {
		rows = append(rows, row)
	}
	rows = append(rows,
		[]button{textButton(domain.ButtonEditPrompt)},
		[]button{textButton(domain.ButtonResetPrompt)},
		[]button{textButton(domain.ButtonInstructions)},
	)
	return replyKeyboard(rows)
}

func (s *Service) modelKeyboard() map[string]interface{} {
	return replyKeyboard([][]button{s.modelsRow()})
}

func (s *Service) subscribeKeyboard() map[string]interface{} {
	return inlineKeyboard([][]button{
		{urlButton(texts.ButtonSubscribe, s.Config.SubscribeLink())},
		{callbackButton(texts.ButtonCheckSubscription, domain.CallbackCheckSubscription)},
	})
}

func platformKeyboard() map[string]interface{} {
	platforms := domain.AllPlatforms()
	rows := make([][]button, 0, len(platforms))
	for _, p := range platforms {
		rows = append(rows, []button{callbackButton(texts.PlatformButton(p), p.CallbackData())})
	}
	return inlineKeyboard(rows)
}
