package catalog

import (
	"fmt"
	"slices"
	"strings"
)

type FAQ struct {
	Question string
	Answer   string
}

type ServiceContent struct {
	Intro       string
	WhatWeOffer string
	Benefits    []string
	Process     string
	FAQs        []FAQ
}

func (c *Catalog) setContent(content map[string]ServiceContent, defaultKey string) error {
	defaultKey = strings.TrimSpace(defaultKey)
	if len(content) == 0 && defaultKey == "" {
		return nil
	}

	for key, value := range content {
		if _, ok := c.serviceIndex[key]; !ok {
			return fmt.Errorf("service content %q: no such service", key)
		}
		c.content[key] = value
	}

	if _, ok := c.content[defaultKey]; !ok {
		return fmt.Errorf("default service content %q: no content for that service", defaultKey)
	}
	c.defaultContent = defaultKey

	return nil
}

// Content returns the marketing copy written for serviceSlug. Services
// without their own copy get the default entry.
func (c *Catalog) Content(serviceSlug string) ServiceContent {
	value, ok := c.content[serviceSlug]
	if !ok {
		value = c.content[c.defaultContent]
	}

	value.Benefits = slices.Clone(value.Benefits)
	value.FAQs = slices.Clone(value.FAQs)
	return value
}
