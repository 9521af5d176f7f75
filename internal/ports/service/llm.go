package service

import "context"

// ICompleter клиент LLM, один запрос - один ответ
type ICompleter interface {
	Complete(ctx context.Context, model string, prompt string) (string, error)
}

// IExtractor извлекает текст из документа, пустая строка при неудаче
type IExtractor interface {
	Extract(ctx context.Context, path string) string
}
