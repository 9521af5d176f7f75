package domain

import (
	"errors"
	"fmt"
)

// BusinessError ошибка бизнес-логики, которая уже залогирована и показана пользователю
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}

// ErrImageNotFound картинки инструкции нет в хранилище
var ErrImageNotFound = errors.New("image not found")

// UnknownModelError модель не входит в список настроенных
type UnknownModelError struct {
	Model string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("unknown model: %s", e.Model)
}

// ProviderError ошибка LLM провайдера
type ProviderError struct {
	Op  string // "analyze" или "edit"
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("llm provider %s failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

const (
	ProviderOpAnalyze = "analyze"
	ProviderOpEdit    = "edit"
)
