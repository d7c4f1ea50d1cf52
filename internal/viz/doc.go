// Package viz is the terminal host for tour sessions.
//
// A Bubble Tea model owns a [session.Session], renders the point set and
// the replayed tour on a rune canvas, and forwards its tick messages as
// replay ticks — the animator itself never touches a clock. Keys: g
// regenerates the points, 0-9 starts a tour from that point, c cancels a
// running replay, q quits.
package viz
