package app

import (
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
)

func TestServe_ReturnsListenError(t *testing.T) {
	a := &App{Fiber: fiber.New()}

	done := make(chan error, 1)
	go func() {
		done <- a.Serve("127.0.0.1:-1", make(chan os.Signal))
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Fatalf("expected listen error")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Serve did not return after a listen failure")
	}
}

func TestListenAddr(t *testing.T) {
	cases := map[string]string{
		"8080":  ":8080",
		":9000": ":9000",
		" 80 ":  ":80",
	}
	for in, want := range cases {
		got, err := ListenAddr(in)
		if err != nil {
			t.Fatalf("ListenAddr(%q): unexpected err: %v", in, err)
		}
		if got != want {
			t.Fatalf("ListenAddr(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ListenAddr("  "); err == nil {
		t.Fatalf("expected error for empty port")
	}
}
