package buildgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposePrompt(t *testing.T) {
	req := Request{
		Budget:     80000,
		UseCase:    "Gaming",
		CPUBrand:   NoPreference,
		GPUBrand:   "NVIDIA",
		Resolution: "HD(1080p)",
	}

	prompt := ComposePrompt(req)
	assert.Contains(t, prompt, "Budget: ₹80000\n")
	assert.Contains(t, prompt, "Primary Use Case: Gaming\n")
	assert.Contains(t, prompt, "CPU Preference: Any brand\n")
	assert.Contains(t, prompt, "GPU Preference: NVIDIA\n")
	assert.Contains(t, prompt, "Monitor Resolution: HD(1080p)\n")
	assert.Contains(t, prompt, `analyze the use case "Gaming"`)
	assert.Contains(t, prompt, `"reviewComponents": ["Component 1", "Component 2", "Component 3"]`)
	assert.NotContains(t, prompt, "Additionally, include these peripherals")
	assert.NotContains(t, prompt, "Monitor (with size")

	assert.Equal(t, prompt, ComposePrompt(req), "prompt must be deterministic")
}

func TestComposePrompt_Peripherals(t *testing.T) {
	req := Request{
		Budget:      120000,
		UseCase:     "Video Editing",
		Peripherals: []string{"Monitor", "Mouse"},
	}

	prompt := ComposePrompt(req)
	assert.Contains(t, prompt, "CPU Preference: Any brand\n")
	assert.Contains(t, prompt, "Additionally, include these peripherals in the budget: Monitor, Mouse.\n")
	assert.Contains(t, prompt, "9. Monitor (with size, resolution, and price)\n")
	assert.Contains(t, prompt, "11. Mouse (with type and price)\n")
	assert.NotContains(t, prompt, "Keyboard (with type")
	assert.Less(t, strings.Index(prompt, "8. CPU Cooler"), strings.Index(prompt, "9. Monitor"))
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		ok   bool
	}{
		{name: "complete", req: Request{Budget: 50000, UseCase: "Office"}, ok: true},
		{name: "no budget", req: Request{UseCase: "Office"}},
		{name: "negative budget", req: Request{Budget: -1, UseCase: "Office"}},
		{name: "blank use case", req: Request{Budget: 50000, UseCase: "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrMissingInput)
			}
		})
	}
}

func TestRequest_Normalize(t *testing.T) {
	req := Request{UseCase: " Gaming ", Peripherals: []string{" Monitor ", ""}}
	req.Normalize()
	assert.Equal(t, "Gaming", req.UseCase)
	assert.Equal(t, []string{"Monitor"}, req.Peripherals)

	var empty Request
	empty.Normalize()
	assert.NotNil(t, empty.Peripherals)
}
