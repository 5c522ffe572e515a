package objects

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackedObject struct {
	*BaseObject

	log *[]string
}

func newTracked(id string, z int, log *[]string) *trackedObject {
	return &trackedObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: z}),
		log:        log,
	}
}

func (o *trackedObject) Init() error {
	*o.log = append(*o.log, "init:"+o.GetID())
	return nil
}

func (o *trackedObject) Destroy() error {
	*o.log = append(*o.log, "destroy:"+o.GetID())
	return nil
}

func (o *trackedObject) Update() error {
	*o.log = append(*o.log, "update:"+o.GetID())
	return nil
}

func ids(list []GameObject) []string {
	out := make([]string, 0, len(list))
	for _, o := range list {
		out = append(out, o.GetID())
	}
	return out
}

func TestBaseObject_children(t *testing.T) {
	var log []string
	root := NewBaseObject("root", nil)

	require.NoError(t, root.AddChild("a", newTracked("a", 0, &log)))
	require.NoError(t, root.AddChild("b", newTracked("b", 0, &log)))
	assert.Error(t, root.AddChild("a", newTracked("a", 0, &log)))
	assert.Equal(t, []string{"a", "b"}, ids(root.GetChildren()))
	assert.Equal(t, []string{"init:a", "init:b"}, log)

	child := root.GetChild("a")
	require.NotNil(t, child)
	assert.Equal(t, GameObject(root), child.GetParent())

	log = nil
	require.NoError(t, child.RemoveFromParent())
	assert.Equal(t, []string{"destroy:a"}, log)
	assert.Nil(t, root.GetChild("a"))
	assert.Nil(t, child.GetParent())
	assert.Error(t, root.RemoveChild("a"))
}

func TestTreeTraversal(t *testing.T) {
	var log []string
	root := newTracked("root", 0, &log)
	parent := newTracked("parent", 0, &log)
	require.NoError(t, root.AddChild("parent", parent))
	require.NoError(t, parent.AddChild("leaf", newTracked("leaf", 0, &log)))

	log = nil
	require.NoError(t, UpdateTree(root))
	assert.Equal(t, []string{"update:root", "update:parent", "update:leaf"}, log)

	log = nil
	require.NoError(t, DestroyTree(root))
	assert.Equal(t, []string{"destroy:leaf", "destroy:parent", "destroy:root"}, log)
}

func TestSortedZIndexObject(t *testing.T) {
	var log []string
	root := NewSortedZIndexObject("root")
	require.NoError(t, root.AddChild("top", newTracked("top", 10, &log)))
	require.NoError(t, root.AddChild("bottom", newTracked("bottom", -1, &log)))
	require.NoError(t, root.AddChild("middle", newTracked("middle", 5, &log)))
	require.NoError(t, root.AddChild("middle-2", newTracked("middle-2", 5, &log)))

	assert.Equal(t, []string{"bottom", "middle", "middle-2", "top"}, ids(root.GetChildren()))

	require.NoError(t, root.GetChild("middle").RemoveFromParent())
	assert.Equal(t, []string{"bottom", "middle-2", "top"}, ids(root.GetChildren()))
	assert.Error(t, root.RemoveChild("middle"))
}

func TestToastStack(t *testing.T) {
	stack := NewToastStack("toasts")
	for i := 0; i < MaxToasts+2; i++ {
		require.NoError(t, stack.Push("info", "hello"))
	}
	assert.Len(t, stack.GetChildren(), MaxToasts)

	require.NoError(t, UpdateTree(stack))
	for i, child := range stack.GetChildren() {
		assert.Equal(t, i, child.(*Toast).slot)
	}

	// toasts expire after their TTL
	ticks := ToastTTL/(1000/ebiten.TPS()) + 1
	for i := 0; i < ticks; i++ {
		require.NoError(t, UpdateTree(stack))
	}
	assert.Empty(t, stack.GetChildren())
}
