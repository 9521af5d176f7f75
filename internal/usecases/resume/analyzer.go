package resume

import (
	"context"
	"log/slog"
	"strings"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/admin/tg-bots/resume-bot/internal/ports/service"
	"github.com/admin/tg-bots/resume-bot/internal/usecases/resume/texts"
)

// Analyzer собирает промпт и делает один запрос к LLM
type Analyzer struct {
	completer           service.ICompleter
	prompts             service.IPromptStore
	models              map[string]struct{}
	analyzeInstructions string
	editInstructions    string
	log                 *slog.Logger
}

func NewAnalyzer(completer service.ICompleter, prompts service.IPromptStore, cfg *Config, log *slog.Logger) *Analyzer {
	models := make(map[string]struct{}, len(cfg.Models))
	for _, m := range cfg.Models {
		models[m] = struct{}{}
	}

	analyzeInstructions := cfg.AnalyzeInstructions
	if strings.TrimSpace(analyzeInstructions) == "" {
		analyzeInstructions = texts.DefaultAnalyzeCriteria
	}
	editInstructions := cfg.EditInstructions
	if strings.TrimSpace(editInstructions) == "" {
		editInstructions = texts.DefaultEditCriteria
	}

	return &Analyzer{
		completer:           completer,
		prompts:             prompts,
		models:              models,
		analyzeInstructions: analyzeInstructions,
		editInstructions:    editInstructions,
		log:                 log,
	}
}

// Analyze анализ резюме
func (a *Analyzer) Analyze(ctx context.Context, text, model string, userID domain.UserID) (string, error) {
	return a.run(ctx, domain.ProviderOpAnalyze, texts.AnalyzeDirective, a.analyzeInstructions, text, model, userID)
}

// Edit отредактированная версия резюме
func (a *Analyzer) Edit(ctx context.Context, text, model string, userID domain.UserID) (string, error) {
	return a.run(ctx, domain.ProviderOpEdit, texts.EditDirective, a.editInstructions, text, model, userID)
}

func (a *Analyzer) run(ctx context.Context, op, directive, instructions, text, model string, userID domain.UserID) (string, error) {
	if _, ok := a.models[model]; !ok {
		return "", &domain.UnknownModelError{Model: model}
	}

	prompt := ComposePrompt(a.prompts.GetPrompt(ctx, userID), directive, instructions, text)

	a.log.Debug("sending completion request",
		"op", op,
		"model", model,
		"user_id", userID,
		"prompt_length", len(prompt),
	)

	result, err := a.completer.Complete(ctx, model, prompt)
	if err != nil {
		return "", &domain.ProviderError{Op: op, Err: err}
	}

	return result, nil
}

// ComposePrompt промпт пользователя, директива, инструкция и текст резюме через пустую строку
func ComposePrompt(userPrompt, directive, instructions, resumeText string) string {
	var b strings.Builder
	b.Grow(len(userPrompt) + len(directive) + len(instructions) + len(resumeText) + 32)

	b.WriteString(userPrompt)
	b.WriteString("\n\n")
	b.WriteString(directive)
	b.WriteString("\n\n")
	b.WriteString(instructions)
	b.WriteString("\n\n")
	b.WriteString(texts.ResumeTextLabel)
	b.WriteString("\n")
	b.WriteString(resumeText)
	b.WriteString("\n")

	return b.String()
}
