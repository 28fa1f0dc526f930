package item

import "fmt"

// ID identifies one item instance within a game session. Instance ids are
// issued by the registry and never reused.
type ID uint32

// Registry tracks every item instance that currently exists in a session,
// whether it lies on the map, sits in the inventory, or is equipped. Each
// instance points back at its definition by def id.
type Registry struct {
	NextID ID            `json:"next_id"`
	Items  map[ID]string `json:"items"` // instance id -> def id
}

// NewRegistry returns an empty registry whose first issued id is 1.
func NewRegistry() *Registry {
	return &Registry{NextID: 1, Items: make(map[ID]string)}
}

// Register creates a new instance of the given definition and returns its id.
func (r *Registry) Register(defID string) ID {
	id := r.NextID
	r.NextID++
	r.Items[id] = defID
	return id
}

// DefID resolves an instance to its definition id.
func (r *Registry) DefID(id ID) (string, error) {
	defID, ok := r.Items[id]
	if !ok {
		return "", fmt.Errorf("item %d is not registered", id)
	}
	return defID, nil
}

// Deregister destroys an instance, for example when food is eaten.
func (r *Registry) Deregister(id ID) error {
	if _, ok := r.Items[id]; !ok {
		return fmt.Errorf("item %d is not registered", id)
	}
	delete(r.Items, id)
	return nil
}

// Len returns the number of live instances.
func (r *Registry) Len() int {
	return len(r.Items)
}
