// Package geom holds the 2D point primitives and the random point
// sampler that seeds a tour instance.
//
// A [PointSet] is an ordered collection of points whose ids are their
// insertion indices. The [Sampler] draws points uniformly inside a padded
// rectangle and rejects draws closer than a minimum separation to any
// accepted point; when the attempt budget for a point runs out the set is
// returned short rather than retried or relaxed.
package geom
