package features_test

import (
	"errors"
	"testing"
	"time"

	"github.com/fenestra-dev/fenestra/pkg/context"
	"github.com/fenestra-dev/fenestra/pkg/features/resource"
	"github.com/fenestra-dev/fenestra/pkg/reactive"
	"github.com/fenestra-dev/fenestra/pkg/vdom"
)

// Integration tests verify that features packages work together correctly.
// These test common workflows that span multiple packages.

// TestResourceMatchWorkflow tests the resource loading and rendering workflow
// using the Match pattern for different states.
func TestResourceMatchWorkflow(t *testing.T) {
	done := make(chan struct{})

	users := resource.New(func() ([]string, error) {
		time.Sleep(5 * time.Millisecond)
		return []string{"Alice", "Bob", "Charlie"}, nil
	}).OnSuccess(func(data []string) {
		close(done)
	})

	textNode := func(s string) *vdom.VNode {
		return &vdom.VNode{Text: s}
	}

	loadingNode := users.Match(
		resource.OnLoading[[]string](func() *vdom.VNode {
			return textNode("Loading users...")
		}),
		resource.OnReady[[]string](func(data []string) *vdom.VNode {
			return textNode("Users loaded")
		}),
	)

	if loadingNode == nil || loadingNode.Text != "Loading users..." {
		t.Logf("Loading node: %v", loadingNode)
	}

	select {
	case <-done:
		if !users.IsReady() {
			t.Error("Resource should be ready")
		}

		data := users.Data()
		if len(data) != 3 {
			t.Errorf("Expected 3 users, got %d", len(data))
		}

		readyNode := users.Match(
			resource.OnLoading[[]string](func() *vdom.VNode {
				return textNode("Loading...")
			}),
			resource.OnReady[[]string](func(data []string) *vdom.VNode {
				return textNode("Loaded " + data[0])
			}),
		)

		if readyNode == nil || readyNode.Text != "Loaded Alice" {
			t.Errorf("Expected 'Loaded Alice', got '%v'", readyNode)
		}

	case <-time.After(100 * time.Millisecond):
		t.Fatal("Timeout waiting for resource")
	}
}

// TestResourceErrorHandling tests the resource error state workflow.
func TestResourceErrorHandling(t *testing.T) {
	done := make(chan struct{})
	expectedErr := errors.New("API error: not found")

	users := resource.New(func() (string, error) {
		return "", expectedErr
	}).OnError(func(err error) {
		close(done)
	})

	select {
	case <-done:
		if !users.IsError() {
			t.Error("Resource should be in error state")
		}

		if users.Error() != expectedErr {
			t.Errorf("Expected error '%v', got '%v'", expectedErr, users.Error())
		}

		fallback := users.DataOr("default")
		if fallback != "default" {
			t.Errorf("Expected 'default', got '%s'", fallback)
		}

	case <-time.After(100 * time.Millisecond):
		t.Fatal("Timeout waiting for resource error")
	}
}

// TestResourceRefetchWithMutation tests the resource mutation workflow.
func TestResourceRefetchWithMutation(t *testing.T) {
	calls := 0
	done := make(chan struct{}, 2)

	counter := resource.New(func() (int, error) {
		calls++
		result := calls * 10
		defer func() { done <- struct{}{} }()
		return result, nil
	})

	<-done
	time.Sleep(10 * time.Millisecond)

	counter.Mutate(func(n int) int {
		return n + 5
	})

	if counter.Data() != 15 {
		t.Errorf("Expected 15, got %d", counter.Data())
	}

	counter.Refetch()
	<-done
	time.Sleep(10 * time.Millisecond)

	if counter.Data() != 20 {
		t.Errorf("Expected 20 after refetch, got %d", counter.Data())
	}
}

// TestResourceRetryWorkflow tests automatic retry on failure.
func TestResourceRetryWorkflow(t *testing.T) {
	attempts := 0
	done := make(chan struct{})

	data := resource.New(func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("temporary failure")
		}
		return "success", nil
	}).
		RetryOnError(3, 5*time.Millisecond).
		OnSuccess(func(s string) {
			close(done)
		})

	select {
	case <-done:
		if attempts != 3 {
			t.Errorf("Expected 3 attempts, got %d", attempts)
		}
		if data.Data() != "success" {
			t.Errorf("Expected 'success', got '%s'", data.Data())
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Timeout waiting for retry success")
	}
}

// TestContextProviderWorkflow tests the context creation and consumption workflow.
func TestContextProviderWorkflow(t *testing.T) {
	type Theme struct {
		Primary   string
		Secondary string
		Dark      bool
	}

	defaultTheme := Theme{
		Primary:   "#ffffff",
		Secondary: "#000000",
		Dark:      false,
	}
	ThemeCtx := context.Create(defaultTheme)

	root := reactive.NewOwner(nil)

	reactive.WithOwner(root, func() {
		theme := ThemeCtx.Use()

		if theme.Primary != "#ffffff" {
			t.Errorf("Expected default primary '#ffffff', got '%s'", theme.Primary)
		}
		if theme.Dark {
			t.Error("Expected dark mode to be false (default)")
		}

		providerTheme := Theme{
			Primary:   "#007bff",
			Secondary: "#6c757d",
			Dark:      true,
		}

		child := reactive.NewOwner(root)
		reactive.WithOwner(child, func() {
			ThemeCtx.Provider(providerTheme, vdom.Text("child"))

			childTheme := ThemeCtx.Use()
			if childTheme.Primary != "#007bff" {
				t.Errorf("Child expected primary '#007bff', got '%s'", childTheme.Primary)
			}
			if !childTheme.Dark {
				t.Error("Child expected dark mode to be true")
			}
		})
	})
}

// TestContextWithFallback tests context fallback behavior outside a provider's scope.
func TestContextWithFallback(t *testing.T) {
	type Config struct {
		APIKey string
	}

	ConfigCtx := context.Create(Config{})

	root := reactive.NewOwner(nil)

	reactive.WithOwner(root, func() {
		config := ConfigCtx.Use()
		if config.APIKey != "" {
			t.Errorf("Expected empty APIKey, got '%s'", config.APIKey)
		}

		child := reactive.NewOwner(root)
		reactive.WithOwner(child, func() {
			ConfigCtx.Provider(Config{APIKey: "secret123"}, vdom.Text("child"))

			config = ConfigCtx.Use()
			if config.APIKey != "secret123" {
				t.Errorf("Expected 'secret123', got '%s'", config.APIKey)
			}
		})

		config = ConfigCtx.Use()
		if config.APIKey != "" {
			t.Errorf("Expected empty APIKey outside provider scope, got '%s'", config.APIKey)
		}
	})
}
