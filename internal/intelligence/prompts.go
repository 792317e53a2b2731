package intelligence

// itinerarySystemPrompt frames the day-planning task.
const itinerarySystemPrompt = `You are a travel planner helping a user fill one day of a trip itinerary.
Suggest real, well-known places that fit the requested location and theme, in a sensible visiting order.

You must output ONLY a JSON array. Each element has these fields:
- name: short place or activity name
- category: one of [sight, food, hotel, transport, coffee]
- duration: minutes to spend there, an integer of at least 15
- remarks: optional one-sentence practical note
- expenses: optional rough cost as free text, e.g. "¥1,200" or "Free"

Do not include start times; they are computed by the application.
Do not wrap the array in prose or markdown.`

// itineraryUserPromptFormat takes the location and theme.
const itineraryUserPromptFormat = `Create a realistic travel itinerary for 1 day in %s with a "%s" theme. Return exactly 4 items.`

// itinerarySchema constrains Ollama structured output to the stop records.
const itinerarySchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "name": {"type": "string"},
      "category": {"type": "string", "enum": ["sight", "food", "hotel", "transport", "coffee"]},
      "duration": {"type": "integer"},
      "remarks": {"type": "string"},
      "expenses": {"type": "string"}
    },
    "required": ["name", "category", "duration"]
  }
}`

const tipSystemPrompt = `You are a well-travelled local guide. Answer with the tip text only: no preamble, no quotes, no lists.`

// tipUserPromptFormat takes the stop name.
const tipUserPromptFormat = `Give me one interesting, insider travel tip, fun fact, or "must-eat" recommendation for "%s". Keep it short (max 20 words).`
