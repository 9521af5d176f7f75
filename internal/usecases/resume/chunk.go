package resume

// MaxMessageLength лимит длины сообщения Telegram в символах
const MaxMessageLength = 4096

// SplitChunks режет текст на куски не длиннее limit символов (рун), порядок сохраняется
func SplitChunks(text string, limit int) []string {
	if limit <= 0 {
		limit = MaxMessageLength
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+limit-1)/limit)
	for start := 0; start < len(runes); start += limit {
		end := start + limit
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}

	return chunks
}
