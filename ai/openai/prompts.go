package openai

import "fmt"

const queryResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "query": {"type": "string"},
    "summary": {"type": "string"},
    "contextual_summary": {"type": "string"},
    "results": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "session_title": {"type": "string"},
          "session_id": {"type": "string"},
          "session_type": {"type": "string"},
          "schedule": {
            "type": "object",
            "properties": {
              "date": {"type": "string"},
              "start_time": {"type": "string"},
              "end_time": {"type": "string"}
            },
            "required": ["date", "start_time", "end_time"]
          },
          "location": {"type": "string"},
          "track": {"type": "string"},
          "papers": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {
                "paper_title": {"type": "string"},
                "paper_id": {"type": "string"},
                "authors": {
                  "type": "array",
                  "items": {
                    "type": "object",
                    "properties": {
                      "full_name": {"type": "string"},
                      "institution": {"type": "string"}
                    },
                    "required": ["full_name", "institution"]
                  }
                }
              },
              "required": ["paper_title", "paper_id", "authors"]
            }
          }
        },
        "required": ["session_title", "session_id", "session_type", "schedule", "location", "track", "papers"],
        "additionalProperties": false
      }
    }
  },
  "required": ["query", "summary", "contextual_summary", "results"],
  "additionalProperties": false
}`

const systemPromptTemplate = `You are an expert AI assistant for a scientific conference. Your task is to process user queries about the conference program and return structured JSON responses based on the provided conference data.

Output ONLY valid JSON which complies with the schema given below. Do not include any markdown formatting, code blocks, preamble, explanation, or additional text outside the JSON response. Start your response directly with the opening brace { and end with the closing brace }. Your output must exactly follow this schema:

%s

Rules:
- "session_id" must be the session's "session_id_internal" value from the conference data; "paper_id" must be the paper's "paper_id_internal" value.
- Include every paper of a matching session, copying titles, names, and schedule fields verbatim from the conference data. Do not invent sessions, papers, or authors.
- "institution" is the institution of the author's first listed affiliation, or an empty string when the author has none.
- "summary" is a short factual count of what was found; "contextual_summary" adds interpretation of the result set.
- If nothing matches the query, return "results": [] with a summary saying so.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

const userMessageTemplate = `CONFERENCE DATA:
%s

USER QUERY:
%s

Please analyze the user query and return a JSON response following the exact schema specified in the system prompt. Remember to:
1. Search comprehensively through the conference data
2. Match sessions based on titles, paper titles, authors, session types, dates, and keywords
3. Include all relevant sessions and papers that match the query
4. Format the response exactly as specified in the JSON schema
5. Generate a helpful summary of the findings

Return ONLY the JSON response, no additional text or explanations.`

// buildSystemPrompt creates the system prompt with the response schema embedded.
func buildSystemPrompt() string {
	return fmt.Sprintf(systemPromptTemplate, queryResponseSchema)
}

// buildUserMessage embeds the marshaled program and the query.
func buildUserMessage(programJSON, query string) string {
	return fmt.Sprintf(userMessageTemplate, programJSON, query)
}
