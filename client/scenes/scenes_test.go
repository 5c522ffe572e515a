package scenes

import (
	"testing"

	"github.com/cbodonnell/flagmaster/client/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseScene_lifecycle(t *testing.T) {
	root := objects.NewSortedZIndexObject("root")
	scene := NewBaseScene(root)
	require.NoError(t, scene.Init())

	child := objects.NewBaseObject("child", &objects.NewBaseObjectOpts{ZIndex: 1})
	require.NoError(t, root.AddChild("child", child))
	require.NoError(t, scene.Update())
	assert.Equal(t, root, scene.GetRoot())

	require.NoError(t, scene.Destroy())
}

func TestBaseScene_size(t *testing.T) {
	scene := NewBaseScene(objects.NewBaseObject("root", nil))
	w, h := scene.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)

	var r Resizable = scene
	r.SetSize(800, 600)
	w, h = scene.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestErrorScene_isResizable(t *testing.T) {
	scene, err := NewErrorScene("Could not load countries. Press to retry.", nil)
	require.NoError(t, err)
	_, ok := scene.(Resizable)
	assert.True(t, ok)
}
