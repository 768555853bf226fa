package suggest

import "strings"

// Messages holds the prompts and user-facing fallbacks for one locale.
// Prompts are fmt templates taking the user's text as their only verb.
type Messages struct {
	SchedulePrompt string
	ScheduleEmpty  string
	ScheduleError  string

	MealPrompt string
	MealEmpty  string
	MealError  string

	PriorityPrompt string
}

var russian = Messages{
	SchedulePrompt: `У меня есть следующие задачи: %s. Составь оптимальное расписание на день с временными слотами. Ответь только списком в формате: "Время - Задача".`,
	ScheduleEmpty:  "Не удалось создать расписание.",
	ScheduleError:  "Ошибка при генерации расписания.",

	MealPrompt: "Предложи план питания на день (завтрак, обед, ужин, перекус). Предпочтения/продукты: %s. Ответь кратко и структурированно.",
	MealEmpty:  "Не удалось создать план питания.",
	MealError:  "Ошибка при генерации плана питания.",

	PriorityPrompt: `У меня есть список дел: %s. Раздели их на "Важные" и "Второстепенные". Верни JSON список.`,
}

var english = Messages{
	SchedulePrompt: `I have the following tasks: %s. Build an optimal schedule for the day with time slots. Reply only with a list in the format: "Time - Task".`,
	ScheduleEmpty:  "Could not build a schedule.",
	ScheduleError:  "Error while generating the schedule.",

	MealPrompt: "Suggest a meal plan for the day (breakfast, lunch, dinner, snack). Preferences/ingredients: %s. Keep the answer short and structured.",
	MealEmpty:  "Could not build a meal plan.",
	MealError:  "Error while generating the meal plan.",

	PriorityPrompt: `Here is my to-do list: %s. Split it into "Important" and "Secondary". Return a JSON list.`,
}

// MessagesFor returns the messages for locale, defaulting to Russian.
func MessagesFor(locale string) Messages {
	if strings.HasPrefix(strings.ToLower(locale), "en") {
		return english
	}
	return russian
}
