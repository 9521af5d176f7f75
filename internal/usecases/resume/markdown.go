package resume

import "regexp"

// дефис не трогаем: "что-то", "т.п."
var markdownPattern = regexp.MustCompile("[*_~`\\[\\]()>#]")

// StripMarkdown убирает символы markdown разметки из ответа LLM
func StripMarkdown(text string) string {
	return markdownPattern.ReplaceAllString(text, "")
}
