// Package registry holds the static configuration tables describing the
// documentation tree: the section index pages that may need to be created,
// and the individual pages that receive front matter.
package registry

import (
	"github.com/starford/ansuz/internal/frontmatter"
	"github.com/starford/ansuz/internal/models"
)

// ParentPages returns the section index pages in navigation order. Each entry
// carries its front matter fields and a default body used when the page has
// to be created.
func ParentPages() []models.ParentPage {
	return []models.ParentPage{
		{
			Path: "guides/_index.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Getting Started"},
				{Key: "nav_order", Value: 2},
				{Key: "has_children", Value: true},
			},
			Body: `
# Getting Started

Pick a guide below to get up and running with the Datadog Sales Engineering Toolkit.
`,
		},
		{
			Path: "plugins/_index.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Plugins"},
				{Key: "nav_order", Value: 3},
				{Key: "has_children", Value: true},
			},
			Body: `
# Plugins

Everything you need to know about the plugin system and how to extend the toolkit.
`,
		},
		{
			Path: "core-apis/_index.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Core APIs"},
				{Key: "nav_order", Value: 4},
				{Key: "has_children", Value: true},
			},
			Body: `
# Core APIs

Core services available to all plugins.
`,
		},
		{
			Path: "architecture/_index.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "System Architecture"},
				{Key: "nav_order", Value: 5},
				{Key: "has_children", Value: true},
			},
			Body: `
# System Architecture

Deep dives into the extension's internals.
`,
		},
		{
			Path: "contributing/_index.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Contributing"},
				{Key: "nav_order", Value: 6},
				{Key: "has_children", Value: true},
			},
			Body: `
# Contributing

Learn how to contribute to the Datadog Sales Engineering Toolkit and its plugin ecosystem.
`,
		},
	}
}

// LeafPages returns the individual documentation pages. These must already
// exist on disk; the applicator only annotates them.
func LeafPages() []models.LeafPage {
	return []models.LeafPage{
		{
			Path: "index.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Datadog Sales Engineering Toolkit"},
				{Key: "nav_order", Value: 1},
			},
		},

		// Guides
		{
			Path: "guides/QUICK_START.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Quick Start"},
				{Key: "parent", Value: "Getting Started"},
				{Key: "nav_order", Value: 1},
			},
		},
		{
			Path: "guides/HELLO_WORLD.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Hello World Plugin"},
				{Key: "parent", Value: "Getting Started"},
				{Key: "nav_order", Value: 2},
			},
		},
		{
			Path: "guides/PLUGIN_DEVELOPMENT_V2.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Plugin Development (v2)"},
				{Key: "parent", Value: "Getting Started"},
				{Key: "nav_order", Value: 3},
			},
		},

		// Plugins
		{
			Path: "plugins/architecture.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Plugin Architecture"},
				{Key: "parent", Value: "Plugins"},
				{Key: "nav_order", Value: 1},
			},
		},
		{
			Path: "plugins/generator.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Plugin Generator"},
				{Key: "parent", Value: "Plugins"},
				{Key: "nav_order", Value: 2},
			},
		},

		// Core APIs
		{
			Path: "core-apis/messages.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Messaging"},
				{Key: "parent", Value: "Core APIs"},
				{Key: "nav_order", Value: 1},
			},
		},
		{
			Path: "core-apis/notifications.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Notifications"},
				{Key: "parent", Value: "Core APIs"},
				{Key: "nav_order", Value: 2},
			},
		},
		{
			Path: "core-apis/storage.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Storage"},
				{Key: "parent", Value: "Core APIs"},
				{Key: "nav_order", Value: 3},
			},
		},
		{
			Path: "core-apis/shared-messaging.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Shared APIs"},
				{Key: "parent", Value: "Core APIs"},
				{Key: "nav_order", Value: 4},
			},
		},

		// Architecture
		{
			Path: "architecture/SYSTEM_OVERVIEW.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "System Overview"},
				{Key: "parent", Value: "System Architecture"},
				{Key: "nav_order", Value: 1},
			},
		},
		{
			Path: "architecture/PLUGIN_LOADER_IMPLEMENTATION.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Plugin Loader"},
				{Key: "parent", Value: "System Architecture"},
				{Key: "nav_order", Value: 2},
			},
		},

		// Contributing root page
		{
			Path: "contributing.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Contributing Overview"},
				{Key: "parent", Value: "Contributing"},
				{Key: "nav_order", Value: 1},
			},
		},

		// Contributing subpages
		{
			Path: "contributing/CONTRIBUTING_OVERVIEW.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Contribution Workflow"},
				{Key: "parent", Value: "Contributing"},
				{Key: "nav_order", Value: 2},
			},
		},
		{
			Path: "contributing/CONTRIBUTING.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Contributor Guide"},
				{Key: "parent", Value: "Contributing"},
				{Key: "nav_order", Value: 3},
			},
		},
		{
			Path: "contributing/PLUGIN_STANDARDS.md",
			Frontmatter: []frontmatter.Field{
				{Key: "title", Value: "Plugin Standards"},
				{Key: "parent", Value: "Contributing"},
				{Key: "nav_order", Value: 4},
			},
		},
	}
}
