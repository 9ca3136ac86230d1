package chat

import (
	"fmt"
	"strings"
)

// stepTemplate is a preset step before IDs are assigned.
type stepTemplate struct {
	title       string
	description string
	duration    string
}

var jsTemplate = []stepTemplate{
	{"JavaScript Fundamentals", "Variables, functions, arrays, objects", "1 week"},
	{"DOM Manipulation", "Interact with web pages dynamically", "1 week"},
	{"Async JavaScript", "Promises, async/await, fetch API", "1 week"},
	{"Modern JavaScript", "ES6+, modules, build tools", "1 week"},
	{"Build Projects", "Create portfolio projects", "2 weeks"},
}

var reactTemplate = []stepTemplate{
	{"React Basics", "Components, JSX, props, state", "1 week"},
	{"React Hooks", "useState, useEffect, custom hooks", "1 week"},
	{"State Management", "Context API, Redux/Zustand", "1 week"},
	{"React Router", "Navigation and routing", "1 week"},
	{"Full Stack App", "Build complete application", "2 weeks"},
}

var pythonTemplate = []stepTemplate{
	{"Python Basics", "Syntax, data types, control flow", "1 week"},
	{"Data Structures", "Lists, dictionaries, sets", "1 week"},
	{"Object-Oriented Programming", "Classes, inheritance, polymorphism", "1 week"},
	{"Libraries & Frameworks", "Popular Python libraries", "1 week"},
	{"Build Projects", "Create real applications", "2 weeks"},
}

// genericTemplate interpolates the goal phrase into each step.
func genericTemplate(goal string) []stepTemplate {
	return []stepTemplate{
		{"Foundation", fmt.Sprintf("Learn the basics of %s", goal), "1 week"},
		{"Core Concepts", fmt.Sprintf("Master essential %s concepts", goal), "2 weeks"},
		{"Hands-on Practice", fmt.Sprintf("Apply %s through exercises", goal), "2 weeks"},
		{"Advanced Topics", fmt.Sprintf("Explore advanced %s features", goal), "2 weeks"},
		{"Master & Apply", fmt.Sprintf("Become proficient in %s", goal), "1 week"},
	}
}

// selectTemplate picks a step template by substring match on the goal phrase,
// in fixed priority: JavaScript, React, Python, then the generic template.
func selectTemplate(goal string) []stepTemplate {
	lower := strings.ToLower(goal)
	switch {
	case strings.Contains(lower, "javascript") || strings.Contains(lower, "js"):
		return jsTemplate
	case strings.Contains(lower, "react"):
		return reactTemplate
	case strings.Contains(lower, "python"):
		return pythonTemplate
	default:
		return genericTemplate(goal)
	}
}
