// Package suggest turns planner requests into single calls to an external
// text-generation service. Calls never fail: any error degrades to a fixed,
// locale-specific string that can be shown to the user as-is.
package suggest

import (
	"context"
	"fmt"
	"strings"

	"lifeplanner/internal/logs"
)

// Request is one generation call.
type Request struct {
	Prompt string
	// JSON asks the service for a JSON-only response.
	JSON bool
}

// Generator performs a single text-generation call.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Gateway is the planner's view of the suggestion service.
type Gateway interface {
	SuggestSchedule(ctx context.Context, tasks []string) string
	SuggestMealPlan(ctx context.Context, preferences string) string
	PrioritizeTasks(ctx context.Context, taskList string) string
}

// EmptyJSON is returned by PrioritizeTasks when no usable response exists.
const EmptyJSON = "{}"

type gateway struct {
	gen Generator
	msg Messages
}

// NewGateway wraps gen with the prompts and fallbacks for locale.
func NewGateway(gen Generator, locale string) Gateway {
	return &gateway{gen: gen, msg: MessagesFor(locale)}
}

func (g *gateway) SuggestSchedule(ctx context.Context, tasks []string) string {
	prompt := fmt.Sprintf(g.msg.SchedulePrompt, strings.Join(tasks, ", "))
	text, err := g.gen.Generate(ctx, Request{Prompt: prompt})
	if err != nil {
		logs.Logger.Printf("Suggestion schedule error: %v", err)
		return g.msg.ScheduleError
	}
	if text == "" {
		return g.msg.ScheduleEmpty
	}
	return text
}

func (g *gateway) SuggestMealPlan(ctx context.Context, preferences string) string {
	prompt := fmt.Sprintf(g.msg.MealPrompt, preferences)
	text, err := g.gen.Generate(ctx, Request{Prompt: prompt})
	if err != nil {
		logs.Logger.Printf("Suggestion meal error: %v", err)
		return g.msg.MealError
	}
	if text == "" {
		return g.msg.MealEmpty
	}
	return text
}

func (g *gateway) PrioritizeTasks(ctx context.Context, taskList string) string {
	prompt := fmt.Sprintf(g.msg.PriorityPrompt, taskList)
	text, err := g.gen.Generate(ctx, Request{Prompt: prompt, JSON: true})
	if err != nil {
		logs.Logger.Printf("Suggestion priority error: %v", err)
		return EmptyJSON
	}
	if text == "" {
		return EmptyJSON
	}
	return text
}
