package particle

// Shared is a handle to exactly one policy instance referenced by any number
// of holders. All holders observe the same internal state; the instance
// lives as long as any handle does. Within one engine step, holders invoke
// the instance in scene traversal order; parallelizing particle updates
// would require serializing access to it.
type Shared[P any] struct {
	policy *P
	stated Stated
}

// Share boxes a policy behind a pointer, establishing a shared group of one.
// Copying the returned handle aliases the same instance, never the state.
func Share[P any](policy P) Shared[P] {
	s := Shared[P]{policy: &policy}
	if st, ok := any(s.policy).(Stated); ok {
		s.stated = st
	}
	return s
}

// ShareOf wraps an existing instance without copying it.
func ShareOf[P any](policy *P) Shared[P] {
	s := Shared[P]{policy: policy}
	if st, ok := any(policy).(Stated); ok {
		s.stated = st
	}
	return s
}

// Policy returns the one shared instance. Pass it wherever the bare policy
// is expected; mutation through any handle is visible through all handles.
func (s Shared[P]) Policy() *P { return s.policy }

// Notify forwards to the shared instance when it is stated, and does nothing
// otherwise.
func (s Shared[P]) Notify(change StateChange) {
	if s.stated != nil {
		s.stated.Notify(change)
	}
}
