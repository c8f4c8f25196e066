package layout

import (
	"sync"

	"github.com/bnema/floaty/internal/domain/entity"
)

// ContainerRegistry maps container handles to live containers.
// The windowing side owns registration and release; consumers keep only the
// handle and must treat a lookup miss as "no container".
type ContainerRegistry struct {
	mu         sync.RWMutex
	containers map[entity.ContainerID]ContainerWidget
}

// NewContainerRegistry creates an empty registry.
func NewContainerRegistry() *ContainerRegistry {
	return &ContainerRegistry{
		containers: make(map[entity.ContainerID]ContainerWidget),
	}
}

// Track registers container (idempotent) and returns its handle.
func (r *ContainerRegistry) Track(container ContainerWidget) entity.ContainerID {
	if container == nil {
		return ""
	}
	id := container.ContainerID()
	r.mu.Lock()
	r.containers[id] = container
	r.mu.Unlock()
	return id
}

// Lookup resolves a handle. ok is false for empty, unknown or released handles.
func (r *ContainerRegistry) Lookup(id entity.ContainerID) (ContainerWidget, bool) {
	if id == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.containers[id]
	return c, ok
}

// Release forgets a container. Safe to call for unknown handles.
func (r *ContainerRegistry) Release(id entity.ContainerID) {
	r.mu.Lock()
	delete(r.containers, id)
	r.mu.Unlock()
}

// Len returns the number of live containers.
func (r *ContainerRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.containers)
}
