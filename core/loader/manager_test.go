package loader

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		enabled := &fakeFeature{name: "on", enabled: true}
		disabled := &fakeFeature{name: "off", enabled: false}

		m := NewManager()
		m.Register(enabled)
		m.Register(disabled)

		err := m.LoadAll(fiber.New())
		assert.NoError(t, err)
		assert.True(t, enabled.loaded)
		assert.False(t, disabled.loaded)
	})

	t.Run("PropagatesLoadError", func(t *testing.T) {
		broken := &fakeFeature{name: "broken", enabled: true, loadErr: fmt.Errorf("boom")}

		m := NewManager()
		m.Register(broken)

		err := m.LoadAll(fiber.New())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})
}
