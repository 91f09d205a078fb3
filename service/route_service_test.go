package services

import (
	"testing"
)

func TestRouteService_AddIsIdempotent(t *testing.T) {
	// Setup
	service := NewRouteService(newTestCatalog())

	// Act
	status1, route1 := service.Add(DefaultSessionID, 1)
	status2, route2 := service.Add(DefaultSessionID, 1)

	// Assert
	if status1 != RouteStatusAdded {
		t.Errorf("Expected status %q, got %q", RouteStatusAdded, status1)
	}
	if status2 != RouteStatusAlreadyExists {
		t.Errorf("Expected status %q, got %q", RouteStatusAlreadyExists, status2)
	}
	if len(route1) != 1 || len(route2) != 1 {
		t.Errorf("Expected route of length 1 after both calls, got %v then %v", route1, route2)
	}
}

func TestRouteService_RemoveMissingIsNotFound(t *testing.T) {
	// Setup
	service := NewRouteService(newTestCatalog())
	service.Add(DefaultSessionID, 1)

	// Act
	status, route := service.Remove(DefaultSessionID, 99)

	// Assert
	if status != RouteStatusNotFound {
		t.Errorf("Expected status %q, got %q", RouteStatusNotFound, status)
	}
	if len(route) != 1 {
		t.Errorf("Expected route untouched, got %v", route)
	}
}

func TestRouteService_RemovePreservesOrder(t *testing.T) {
	// Setup
	service := NewRouteService(newTestCatalog())
	service.Add(DefaultSessionID, 1)
	service.Add(DefaultSessionID, 2)
	service.Add(DefaultSessionID, 3)

	// Act
	status, route := service.Remove(DefaultSessionID, 2)

	// Assert
	if status != RouteStatusRemoved {
		t.Errorf("Expected status %q, got %q", RouteStatusRemoved, status)
	}
	if len(route) != 2 || route[0] != 1 || route[1] != 3 {
		t.Errorf("Expected route [1 3], got %v", route)
	}
}

func TestRouteService_ClearEmptiesRoute(t *testing.T) {
	// Setup
	service := NewRouteService(newTestCatalog())
	service.Add(DefaultSessionID, 1)
	service.Add(DefaultSessionID, 2)

	// Act
	status, route := service.Clear(DefaultSessionID)

	// Assert
	if status != RouteStatusCleared {
		t.Errorf("Expected status %q, got %q", RouteStatusCleared, status)
	}
	if len(route) != 0 {
		t.Errorf("Expected empty route, got %v", route)
	}
	if service.Contains(DefaultSessionID, 1) {
		t.Errorf("Expected venue 1 gone after clear")
	}
}

func TestRouteService_ResolveSkipsUnknownIDs(t *testing.T) {
	// Setup
	service := NewRouteService(newTestCatalog())
	service.Add(DefaultSessionID, 3)
	service.Add(DefaultSessionID, 999)
	service.Add(DefaultSessionID, 1)

	// Act
	resolved := service.Resolve(DefaultSessionID)

	// Assert: unknown id 999 is dropped, order preserved
	if len(resolved) != 2 {
		t.Fatalf("Expected 2 resolved venues, got %d", len(resolved))
	}
	if resolved[0].ID != 3 || resolved[1].ID != 1 {
		t.Errorf("Expected ids [3 1], got [%d %d]", resolved[0].ID, resolved[1].ID)
	}
}

func TestRouteService_SessionsAreIsolated(t *testing.T) {
	// Setup
	service := NewRouteService(newTestCatalog())
	sessionA := service.NewSessionID()
	sessionB := service.NewSessionID()

	// Act
	service.Add(sessionA, 1)
	service.Add(sessionB, 2)

	// Assert
	if sessionA == sessionB {
		t.Fatalf("Expected distinct session ids")
	}
	if !service.Contains(sessionA, 1) || service.Contains(sessionA, 2) {
		t.Errorf("Session A route leaked")
	}
	if !service.Contains(sessionB, 2) || service.Contains(sessionB, 1) {
		t.Errorf("Session B route leaked")
	}
}
