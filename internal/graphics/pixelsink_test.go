package graphics

import "testing"

func TestWindowPixelSinkSetPixel(t *testing.T) {
	backend := NewHeadlessBackend()
	if err := backend.Initialize(Config{Headless: true}); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	window, err := backend.CreateWindow("test", 256, 240)
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}

	sink := NewWindowPixelSink(window)
	sink.SetPixel(10, 20, 0xFF00FF)
	sink.SetPixel(255, 239, 0x123456)

	if got := sink.buffer[20*256+10]; got != 0xFF00FF {
		t.Errorf("buffer[20*256+10] = %#x, want 0xFF00FF", got)
	}
	if got := sink.buffer[239*256+255]; got != 0x123456 {
		t.Errorf("buffer[239*256+255] = %#x, want 0x123456", got)
	}
}

func TestWindowPixelSinkOutOfRangeIgnored(t *testing.T) {
	sink := NewWindowPixelSink(nil)
	sink.SetPixel(-1, 0, 0xFFFFFF)
	sink.SetPixel(256, 0, 0xFFFFFF)
	sink.SetPixel(0, 240, 0xFFFFFF)

	for i, px := range sink.buffer {
		if px != 0 {
			t.Fatalf("buffer[%d] = %#x, want 0 (out-of-range write leaked in)", i, px)
		}
	}
}

func TestWindowPixelSinkPresent(t *testing.T) {
	backend := NewHeadlessBackend()
	if err := backend.Initialize(Config{Headless: true}); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	window, err := backend.CreateWindow("test", 256, 240)
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}

	sink := NewWindowPixelSink(window)
	sink.SetPixel(0, 0, 0xABCDEF)
	sink.Present() // must not panic even though the window has no pending save

	hw := window.(*HeadlessWindow)
	if hw.GetFrameCount() != 1 {
		t.Errorf("GetFrameCount() = %d, want 1 after one Present()", hw.GetFrameCount())
	}
}

func TestWindowPixelSinkPresentNilWindow(t *testing.T) {
	sink := NewWindowPixelSink(nil)
	sink.Present() // must not panic
}
