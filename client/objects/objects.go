package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Lifecycle is driven by the scene that owns the object tree.
type Lifecycle interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// GameObject is a node in a scene's object tree.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChild(id string) GameObject
	GetChildren() []GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
	RemoveFromParent() error
}

// childIndex keeps children in insertion order with lookup by id.
type childIndex struct {
	idxIDObjects map[string]GameObject
	order        []string
}

func newChildIndex() *childIndex {
	return &childIndex{
		idxIDObjects: make(map[string]GameObject),
	}
}

func (c *childIndex) Add(id string, obj GameObject) {
	c.idxIDObjects[id] = obj
	c.order = append(c.order, id)
}

func (c *childIndex) Get(id string) GameObject {
	return c.idxIDObjects[id]
}

func (c *childIndex) Remove(id string) {
	delete(c.idxIDObjects, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

func (c *childIndex) List() []GameObject {
	list := make([]GameObject, 0, len(c.order))
	for _, id := range c.order {
		list = append(list, c.idxIDObjects[id])
	}
	return list
}

type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *childIndex
}

type NewBaseObjectOpts struct {
	ZIndex int
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: newChildIndex(),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error                 { return nil }
func (o *BaseObject) Destroy() error              { return nil }
func (o *BaseObject) Update() error               { return nil }
func (o *BaseObject) Draw(screen *ebiten.Image)   {}
func (o *BaseObject) GetID() string               { return o.id }
func (o *BaseObject) GetZIndex() int              { return o.zIndex }
func (o *BaseObject) GetParent() GameObject       { return o.parent }
func (o *BaseObject) SetParent(parent GameObject) { o.parent = parent }

func (o *BaseObject) GetChild(id string) GameObject {
	return o.children.Get(id)
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.List()
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

// RemoveFromParent detaches the object from its parent, if it has one.
func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return nil
	}
	return o.parent.RemoveChild(o.id)
}

// InitTree initializes obj and then its children, depth first.
func InitTree(obj GameObject) error {
	if err := obj.Init(); err != nil {
		return fmt.Errorf("failed to init %s: %v", obj.GetID(), err)
	}
	for _, child := range obj.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the children of obj before obj itself.
func DestroyTree(obj GameObject) error {
	for _, child := range obj.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := obj.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy %s: %v", obj.GetID(), err)
	}
	return nil
}

// UpdateTree updates obj and then its children. Children may remove themselves while updating.
func UpdateTree(obj GameObject) error {
	if err := obj.Update(); err != nil {
		return fmt.Errorf("failed to update %s: %v", obj.GetID(), err)
	}
	for _, child := range obj.GetChildren() {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws obj and then its children on top.
func DrawTree(obj GameObject, screen *ebiten.Image) {
	obj.Draw(screen)
	for _, child := range obj.GetChildren() {
		DrawTree(child, screen)
	}
}
