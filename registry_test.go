package viewport

import (
	"errors"
	"testing"
)

func TestRegistryCreateGet(t *testing.T) {
	reg := NewRegistry()
	h := reg.Create(WithSize(400, 400))
	v, err := reg.Get(h)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.Frame() != (Rect{0, 0, 400, 400}) {
		t.Errorf("frame = %v, want 400x400+0+0", v.Frame())
	}
}

func TestRegistryUnknownHandle(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Get(42)
	if !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Get = %v, want ErrUnknownHandle", err)
	}
	// Every operation surfaces the lookup failure, never silently ignores it.
	if err := reg.SetSize(42, 1, 1); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("SetSize = %v, want ErrUnknownHandle", err)
	}
	if _, err := reg.ViewportRect(42); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("ViewportRect = %v, want ErrUnknownHandle", err)
	}
	if err := reg.DispatchResize(42, 1, 1); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("DispatchResize = %v, want ErrUnknownHandle", err)
	}
}

func TestRegistryAddChildAndRects(t *testing.T) {
	reg := NewRegistry()
	root := reg.Create(WithSize(400, 400))
	panel := reg.Create(WithSize(0.5, 0.5))
	if err := reg.AddChild(root, panel); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := reg.Resize(root, 400, 400); err != nil {
		t.Fatalf("Resize: %v", err)
	}

	frame, err := reg.ViewportRect(panel)
	if err != nil {
		t.Fatalf("ViewportRect: %v", err)
	}
	if frame != (Rect{0, 0, 200, 200}) {
		t.Errorf("frame = %v, want 200x200+0+0", frame)
	}

	clip, err := reg.ClipRect(panel)
	if err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	if clip.W > 400 || clip.H > 400 || clip.W < 0 || clip.H < 0 {
		t.Errorf("clip = %v outside parent bounds", clip)
	}
}

func TestRegistryAddChildPrecondition(t *testing.T) {
	reg := NewRegistry()
	a := reg.Create()
	b := reg.Create()
	child := reg.Create()
	if err := reg.AddChild(a, child); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := reg.AddChild(b, child); !errors.Is(err, ErrAlreadyParented) {
		t.Errorf("AddChild = %v, want ErrAlreadyParented", err)
	}
}

func TestRegistrySetters(t *testing.T) {
	reg := NewRegistry()
	root := reg.Create(WithSize(400, 400))
	panel := reg.Create(WithSize(100, 100))
	if err := reg.AddChild(root, panel); err != nil {
		t.Fatal(err)
	}
	if err := reg.SetPosition(panel, 10, 20); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	frame, _ := reg.ViewportRect(panel)
	if frame.X != 10 || frame.Y != 20 {
		t.Errorf("frame = %v, want origin +10+20", frame)
	}
	if err := reg.SetSize(panel, 0.25, 0.25); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	frame, _ = reg.ViewportRect(panel)
	if frame.W != 100 || frame.H != 100 {
		t.Errorf("frame = %v, want 100x100", frame)
	}
}

func TestRegistryRemoveChildInvalidatesHandles(t *testing.T) {
	reg := NewRegistry()
	root := reg.Create(WithSize(400, 400))
	panel := reg.Create(WithSize(0.5, 0.5))
	inner := reg.Create(WithSize(0.5, 0.5))
	if err := reg.AddChild(root, panel); err != nil {
		t.Fatal(err)
	}
	if err := reg.AddChild(panel, inner); err != nil {
		t.Fatal(err)
	}

	if err := reg.RemoveChild(root, panel); err != nil {
		t.Fatalf("RemoveChild: %v", err)
	}
	if _, err := reg.Get(panel); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Get(panel) = %v, want ErrUnknownHandle", err)
	}
	// Descendant handles die with the subtree.
	if _, err := reg.Get(inner); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Get(inner) = %v, want ErrUnknownHandle", err)
	}
	if _, err := reg.Get(root); err != nil {
		t.Errorf("Get(root) = %v, want live handle", err)
	}
}

func TestRegistryHitTest(t *testing.T) {
	reg := NewRegistry()
	root := reg.Create(WithSize(400, 400))
	if err := reg.Resize(root, 400, 400); err != nil {
		t.Fatal(err)
	}
	inside, err := reg.HitTest(root, 10, 10)
	if err != nil {
		t.Fatalf("HitTest: %v", err)
	}
	if !inside {
		t.Error("HitTest(10, 10) = false, want true")
	}
	outside, _ := reg.HitTest(root, 500, 10)
	if outside {
		t.Error("HitTest(500, 10) = true, want false")
	}
}

func TestRegistryDispatchForwarding(t *testing.T) {
	reg := NewRegistry()
	rootH := reg.Create(WithSize(400, 400))
	panelH := reg.Create(WithSize(200, 400))
	if err := reg.AddChild(rootH, panelH); err != nil {
		t.Fatal(err)
	}
	if err := reg.DispatchResize(rootH, 400, 400); err != nil {
		t.Fatal(err)
	}

	panel, _ := reg.Get(panelH)
	var presses, releases int
	panel.SetHandlers(Handlers{
		MousePress:   func(x, y float64, b MouseButton) { presses++ },
		MouseRelease: func(x, y float64, b MouseButton) { releases++ },
	})

	if err := reg.DispatchMousePress(rootH, 100, 200, MouseLeft); err != nil {
		t.Fatal(err)
	}
	if err := reg.DispatchMouseRelease(rootH, 100, 200, MouseLeft); err != nil {
		t.Fatal(err)
	}
	if presses != 1 || releases != 1 {
		t.Errorf("events = (%d, %d), want (1, 1)", presses, releases)
	}
}
