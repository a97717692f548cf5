package suggest

import (
	"fmt"
	"strings"

	"github.com/ChicagoDave/homeplanner/pkg/spec"
)

// Topic selects which kind of advice to request.
type Topic string

const (
	TopicDesign     Topic = "design"
	TopicMaterials  Topic = "materials"
	TopicBudget     Topic = "budget"
	TopicCompliance Topic = "compliance"
)

// Topics lists every supported topic in a stable order.
func Topics() []Topic {
	return []Topic{TopicDesign, TopicMaterials, TopicBudget, TopicCompliance}
}

// ParseTopic validates a topic string.
func ParseTopic(s string) (Topic, error) {
	t := Topic(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TopicDesign, TopicMaterials, TopicBudget, TopicCompliance:
		return t, nil
	}
	return "", fmt.Errorf("unknown suggestion topic %q", s)
}

// BuildPrompt renders the prompt for a topic and specification.
func BuildPrompt(topic Topic, s *spec.Specification) (string, error) {
	header := fmt.Sprintf(
		"You are a residential architect. The client wants a %s home of %.0f sq ft with %d bedrooms and %d bathrooms.",
		styleOrDefault(s.Style), s.Area, s.Bedrooms, s.Bathrooms,
	)

	var ask string
	switch topic {
	case TopicDesign:
		ask = "Suggest three concrete layout improvements for light, privacy, and flow. Keep each under two sentences."
	case TopicMaterials:
		ask = "Recommend flooring, countertop, and exterior materials that suit the style and a mid-range budget."
	case TopicBudget:
		ask = "Give a rough cost range for this build and name the two categories most likely to overrun."
	case TopicCompliance:
		ask = "List the building-code items most commonly missed for a home of this size: egress, ventilation, and clearances."
	default:
		return "", fmt.Errorf("unknown suggestion topic %q", topic)
	}

	return header + "\n\n" + ask, nil
}

func styleOrDefault(style string) string {
	style = strings.TrimSpace(style)
	if style == "" {
		return "contemporary"
	}
	return strings.ToLower(style)
}
