// Package particle provides the policy-composition core of stardust.
//
// A particle couples an arbitrary payload with two caller-supplied
// strategies ("policies"): an evolution policy advancing the payload each
// simulation step, and a render policy drawing it. Policies are ordinary
// values implementing small interfaces:
//
//   - [Evolution]: per-step payload update (mutable access)
//   - [Renderer]: payload drawing (read-only access)
//   - [Stated]: optional, for policies carrying internal state that must be
//     advanced once per particle ([Local]) or once per frame ([Global])
//
// Plain functions adapt via [EvolutionFunc] and [RenderFunc], in the
// http.HandlerFunc style.
//
// # Stated policies
//
// A policy that keeps internal state (a fading trail, a shared phase
// counter) implements [Stated] in addition to its call interface. The
// [Wrapped] capability wrapper detects this exactly once, when the policy is
// composed into a particle or engine, and forwards notifications only to
// policies that asked for them; for everything else Notify is a no-op.
// Because Notify mutates the policy, stated policies use pointer receivers
// and are passed by pointer.
//
// # Sharing policies
//
// Interface values holding pointers already alias one instance; pass the
// same *T to many particles and they share its state. [Share] makes the
// aliasing explicit and works for value policies too:
//
//	pulse := particle.Share(motion.Pulse{Period: 30})
//	for i := range dots {
//	    scene.Add(particle.New(dots[i], pulse.Policy(), rend))
//	}
package particle
