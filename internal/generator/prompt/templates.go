package prompt

// SystemPromptDesigner is the system instruction for the content model.
// Keep this short - the deck schema lives in the user prompt.
const SystemPromptDesigner = `You are an expert presentation designer. Provide detailed, unique content for each slide. Return only valid JSON.`

// DeckPromptTemplate asks for the full deck as strict JSON.
// Args: topic, section list (bulleted).
const DeckPromptTemplate = `Create a comprehensive professional presentation about "%s" with 8-10 slides.
Each slide should have unique, detailed content with specific information, examples, and data.

CONTENT SECTIONS:
%s

For each content section, provide:
1. Detailed explanation (30-50 words)
2. Key features/points
3. Real-world examples/case studies
4. Best practices
5. Current trends/data

Return ONLY valid JSON with this structure:
{
    "title": "Presentation Title",
    "slides": [
        {
            "slide_type": "title",
            "title": "Main Title",
            "subtitle": "Subtitle",
            "background_color": "blue"
        },
        {
            "slide_type": "section",
            "title": "Section Title",
            "content": [
                "Detailed point 1 (30-50 words with specific information)",
                "Detailed point 2 (with examples and data)",
                "Detailed point 3 (with practical applications)",
                "Detailed point 4 (with best practices)",
                "Detailed point 5 (with current trends)"
            ],
            "background_color": "white"
        },
        {
            "slide_type": "summary",
            "title": "Key Takeaways",
            "content": [
                "Comprehensive summary point 1",
                "Actionable recommendation 2",
                "Strategic insight 3"
            ],
            "background_color": "light_blue"
        }
    ]
}

Ensure each bullet point is detailed, unique, and contains substantial information.`

// Fallback deck fixed strings
const (
	FallbackSubtitle     = "Comprehensive Professional Presentation"
	FallbackSummaryTitle = "Conclusion & Recommendations"
)
