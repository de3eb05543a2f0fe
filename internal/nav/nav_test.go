package nav

import "testing"

func TestRoutePaths(t *testing.T) {
	tests := []struct {
		route Route
		path  string
	}{
		{LoginRoute{}, "/login"},
		{RegisterRoute{}, "/register"},
		{RecoveryRoute{}, "/recovery"},
		{HomeRoute{}, "/home"},
		{OrdersRoute{}, "/orders"},
		{OrderDetailRoute{Number: "P-AB12CD34"}, "/orders/P-AB12CD34"},
		{ProfileRoute{}, "/profile"},
	}
	for _, tt := range tests {
		if got := tt.route.Path(); got != tt.path {
			t.Fatalf("expected path %q, got %q", tt.path, got)
		}
	}
}

func TestNavigatorDeliversCommandsInOrder(t *testing.T) {
	n := NewNavigator()
	if !n.NavigateTo(OrdersRoute{}) {
		t.Fatal("expected send to succeed")
	}
	if !n.Back() {
		t.Fatal("expected send to succeed")
	}
	n.Close()

	cmd := <-n.Commands()
	navigate, ok := cmd.(Navigate)
	if !ok {
		t.Fatalf("expected Navigate, got %T", cmd)
	}
	if _, ok := navigate.To.(OrdersRoute); !ok {
		t.Fatalf("unexpected destination %T", navigate.To)
	}
	if navigate.ClearStack {
		t.Fatal("plain navigation must not clear the stack")
	}

	if _, ok := (<-n.Commands()).(Pop); !ok {
		t.Fatal("expected Pop as second command")
	}
	if _, open := <-n.Commands(); open {
		t.Fatal("expected closed command stream")
	}
}

func TestNavigatorResetClearsStack(t *testing.T) {
	n := NewNavigator()
	defer n.Close()

	n.ResetTo(HomeRoute{})
	cmd := (<-n.Commands()).(Navigate)
	if !cmd.ClearStack {
		t.Fatal("expected ClearStack to be set")
	}
	if _, ok := cmd.To.(HomeRoute); !ok {
		t.Fatalf("unexpected destination %T", cmd.To)
	}
}

func TestNavigatorDropsOldestWhenFull(t *testing.T) {
	n := NewNavigator()
	defer n.Close()

	for i := 0; i < defaultBuffer+3; i++ {
		if !n.NavigateTo(OrderDetailRoute{Number: "P-1"}) {
			t.Fatal("expected send to succeed under pressure")
		}
	}
	if !n.Up() {
		t.Fatal("expected newest command to be accepted")
	}

	drained := 0
	sawUp := false
	for {
		select {
		case cmd := <-n.Commands():
			drained++
			if _, ok := cmd.(NavigateUp); ok {
				sawUp = true
			}
			continue
		default:
		}
		break
	}
	if drained > defaultBuffer {
		t.Fatalf("expected at most %d buffered commands, got %d", defaultBuffer, drained)
	}
	if !sawUp {
		t.Fatal("expected the newest command to survive overflow")
	}
}

func TestNavigatorRejectsAfterClose(t *testing.T) {
	n := NewNavigator()
	n.Close()
	n.Close()
	if n.NavigateTo(LoginRoute{}) {
		t.Fatal("expected send to fail after close")
	}
}
