package particle

// Wrapped holds one policy together with its notification capability, so
// that stated and non-stated policies present the same surface. The
// capability is captured once, when the policy is composed via [Wrap]; it is
// a property of the policy's declared type and never re-inspected per call.
//
// Policy is exported for direct read and mutate access to the bare value.
// Replacing it does not re-capture the capability; re-wrap instead.
type Wrapped[P any] struct {
	Policy P

	stated Stated
}

// Wrap composes a policy into a capability wrapper. If the policy implements
// [Stated] its notification handler is captured; otherwise Notify on the
// result is a no-op.
func Wrap[P any](policy P) Wrapped[P] {
	w := Wrapped[P]{Policy: policy}
	if s, ok := any(policy).(Stated); ok {
		w.stated = s
	}
	return w
}

// Notify forwards the state change to the wrapped policy when it is stated,
// and does nothing otherwise. Safe to call on any wrapper.
func (w *Wrapped[P]) Notify(change StateChange) {
	if w.stated != nil {
		w.stated.Notify(change)
	}
}

// IsStated reports whether the wrapped policy receives notifications.
func (w *Wrapped[P]) IsStated() bool { return w.stated != nil }
