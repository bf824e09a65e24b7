// Package motion provides the demo payload and policies shipped with the
// stardust CLI.
//
// The payload is [Dot], a point with velocity and an age. Policies cover
// every composition class the core supports:
//
//   - plain func evolutions: [Drift], [Velocity], [Gravity]
//   - stated evolution: [Wobble] (per-particle phase, advanced on Local)
//   - stated renderer: [Trail] (decays once per step, drawn or not)
//   - shared stated evolution: [Pulse] (one Global-advanced beat for the
//     whole scene, shared via particle.Share)
package motion
