package frame

import "github.com/milk9111/pacman/component"

// Frame is everything an entity needs for one update step.
type Frame struct {
	DT       float64
	Input    *InputInfo
	Viewport RenderInfo
}

// Heading returns the direction requested by the frame's input, if any.
func (f Frame) Heading() (component.Direction, bool) {
	if f.Input == nil {
		return component.Up, false
	}
	return f.Input.Heading()
}

// Context keeps the latest tick of each kind. Fields stay set once observed;
// a newer tick of the same kind replaces the older one.
type Context struct {
	Render *RenderInfo
	Update *UpdateInfo
	Input  *InputInfo
}

func (c *Context) ObserveRender(info RenderInfo) {
	c.Render = &info
}

func (c *Context) ObserveUpdate(info UpdateInfo) {
	c.Update = &info
}

func (c *Context) ObserveInput(info InputInfo) {
	c.Input = &info
}

// Ready reports whether every tick kind has been seen at least once.
func (c *Context) Ready() bool {
	return c != nil && c.Render != nil && c.Update != nil && c.Input != nil
}

// Frame assembles the explicit update parameters. ok is false until Ready.
func (c *Context) Frame() (Frame, bool) {
	if !c.Ready() {
		return Frame{}, false
	}
	in := *c.Input
	return Frame{
		DT:       c.Update.DT,
		Input:    &in,
		Viewport: *c.Render,
	}, true
}
