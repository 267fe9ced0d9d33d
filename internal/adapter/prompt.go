package adapter

const (
	instructionPrompt = "Please provide a concise summary of the following text:\n\n"

	// SystemPrompt fixes assistant behaviour for chat-style providers.
	SystemPrompt = "You are a helpful assistant that provides concise summaries."
)

// UserPrompt prefixes text with the summarization instruction.
func UserPrompt(text string) string {
	return instructionPrompt + text
}
