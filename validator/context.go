package validator

import (
	"context"
	"strings"
	"sync"
)

// RootPrefix anchors a Lookup path at the run's root object instead of the
// current subtree.
const RootPrefix = "$/"

// Context carries the per-run state shared by all field chains. It embeds the
// caller's context.Context so checks can pass it to blocking or asynchronous
// operations.
//
// Field chains run on separate goroutines but share the same underlying
// object, so all reads and writes of field values go through the locked
// accessors below. Two checks writing the same field from different chains is
// still a caller bug the engine cannot detect; declare each mutating check on
// exactly one field.
type Context struct {
	context.Context

	// Path is the slash-delimited field path accumulated as chains are
	// entered. Empty at the top level.
	Path string

	run *runState
}

// runState is shared between the per-field Context copies of one run. The
// error accumulator lives in the orchestrator, not here: chains report
// outcomes upward and never write errors themselves.
type runState struct {
	mu      sync.Mutex
	root    map[string]any
	current map[string]any
}

func newContext(ctx context.Context, obj map[string]any) *Context {
	return &Context{
		Context: ctx,
		run:     &runState{root: obj, current: obj},
	}
}

// forField returns a shallow copy bound to one field: the copy sees its own
// Path while sharing the run state with its siblings.
func (c *Context) forField(field string) *Context {
	cp := *c
	if cp.Path == "" {
		cp.Path = field
	} else {
		cp.Path += "/" + field
	}
	return &cp
}

// Get returns the current value of a field, or nil when absent. Checks must
// read field values through Get at invocation time so mutations made by
// earlier checks in the chain are observed.
func (c *Context) Get(field string) any {
	c.run.mu.Lock()
	defer c.run.mu.Unlock()
	return c.run.current[field]
}

// Set writes a field value back into the object under validation. Used by
// transforming checks such as trimming and case folding; the caller observes
// the mutation after the run completes.
func (c *Context) Set(field string, value any) {
	c.run.mu.Lock()
	defer c.run.mu.Unlock()
	c.run.current[field] = value
}

// Lookup resolves a slash-delimited path against the object under validation.
// A path starting with "$/" is resolved from the run's root object, any other
// path from the current subtree. Missing or non-object intermediate segments
// resolve to nil.
func (c *Context) Lookup(path string) any {
	c.run.mu.Lock()
	defer c.run.mu.Unlock()

	node := c.run.current
	if rest, ok := strings.CutPrefix(path, RootPrefix); ok {
		node = c.run.root
		path = rest
	}

	var value any = node
	for _, seg := range strings.Split(path, "/") {
		obj, ok := value.(map[string]any)
		if !ok {
			return nil
		}
		value = obj[seg]
	}
	return value
}

// trimUnknown deletes every key of the object that is not declared in the
// schema. Key enumeration only needs the schema, so this runs independently
// of chain completion.
func (c *Context) trimUnknown(schema Schema) {
	c.run.mu.Lock()
	defer c.run.mu.Unlock()
	for key := range c.run.current {
		if _, ok := schema[key]; !ok {
			delete(c.run.current, key)
		}
	}
}
