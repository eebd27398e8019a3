package agent

import (
	"context"
	"slices"

	"devflow/pkg/llmprovider"
)

// Tool is one action the model may call. Parameters is the JSON Schema
// advertised to the model; Execute receives the decoded arguments.
type Tool interface {
	Name() string
	Description() string
	Parameters() map[string]any
	Execute(ctx context.Context, args map[string]any) (any, error)
}

// RuleSet is implemented by argument validators keyed by tool name.
type RuleSet interface {
	Covers() []string
}

// Catalog is the fixed set of actions offered to the model. It is filled
// once at startup and read concurrently afterwards.
type Catalog struct {
	byName map[string]Tool
	names  []string
}

func NewCatalog() *Catalog {
	return &Catalog{byName: map[string]Tool{}}
}

// Add registers t. Names are unique.
func (c *Catalog) Add(t Tool) error {
	name := t.Name()
	if _, dup := c.byName[name]; dup {
		return ErrDuplicateTool
	}
	c.byName[name] = t
	i, _ := slices.BinarySearch(c.names, name)
	c.names = slices.Insert(c.names, i, name)
	return nil
}

func (c *Catalog) Lookup(name string) (Tool, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// Names lists the action names alphabetically.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Tools returns the actions in Names order.
func (c *Catalog) Tools() []Tool {
	out := make([]Tool, len(c.names))
	for i, name := range c.names {
		out[i] = c.byName[name]
	}
	return out
}

// Declarations describes the catalog in the provider-neutral form sent
// with every model request.
func (c *Catalog) Declarations() []llmprovider.Tool {
	out := make([]llmprovider.Tool, 0, len(c.names))
	for _, t := range c.Tools() {
		out = append(out, llmprovider.Tool{Name: t.Name(), Description: t.Description(), Parameters: t.Parameters()})
	}
	return out
}

// CheckCoverage fails when rs validates an action the catalog lacks.
func (c *Catalog) CheckCoverage(rs RuleSet) error {
	for _, name := range rs.Covers() {
		if _, ok := c.byName[name]; !ok {
			return &UncoveredRuleError{Tool: name}
		}
	}
	return nil
}
