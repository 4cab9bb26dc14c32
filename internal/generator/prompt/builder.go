package prompt

import (
	"fmt"
	"strings"
)

// Builder constructs prompts for the content model
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildSystemPrompt returns the system instruction for deck generation
func (b *Builder) BuildSystemPrompt() string {
	return SystemPromptDesigner
}

// BuildDeckPrompt creates the user prompt embedding the topic and section list
func (b *Builder) BuildDeckPrompt(topic string, sections []string) string {
	return fmt.Sprintf(DeckPromptTemplate, topic, BuildSectionList(sections))
}

// BuildSectionList formats section titles as a bulleted list for the prompt
func BuildSectionList(sections []string) string {
	var sb strings.Builder
	for i, name := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- " + name)
	}
	return sb.String()
}
