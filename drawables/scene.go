package drawables

import (
	"errors"

	"github.com/bloeys/glscaffold/assert"
	"github.com/bloeys/glscaffold/shaders"
)

// List is an ordered collection of drawables. It can be shared by several scenes and
// by other code; changes are visible to all holders.
type List struct {
	items []*Drawable
}

func (l *List) Add(d ...*Drawable) {
	l.items = append(l.items, d...)
}

func (l *List) Len() int {
	return len(l.items)
}

func (l *List) At(i int) *Drawable {
	return l.items[i]
}

func NewList(d ...*Drawable) *List {

	l := &List{items: make([]*Drawable, 0, len(d))}
	l.Add(d...)
	return l
}

// Scene draws every member of a list under one program activation
type Scene struct {
	Drawables *List
	Prog      *shaders.ShaderProgram
}

// Draw activates the program once, draws the members in insertion order and deactivates the program.
// Every member must have been built with the scene's program.
func (s *Scene) Draw() {

	s.Prog.Bind()
	defer s.Prog.UnBind()

	for i := 0; i < s.Drawables.Len(); i++ {

		d := s.Drawables.At(i)
		assert.T(d.Prog == s.Prog, "Drawable at index %d uses shader program %v but the scene uses %v", i, d.Prog.Id, s.Prog.Id)

		d.draw()
	}
}

func NewScene(drawables *List, prog *shaders.ShaderProgram) (*Scene, error) {

	if drawables == nil {
		return nil, errors.New("scene requires a drawable list")
	}

	if prog == nil {
		return nil, errors.New("scene requires a shader program")
	}

	return &Scene{
		Drawables: drawables,
		Prog:      prog,
	}, nil
}
