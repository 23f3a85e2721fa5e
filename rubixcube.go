// Package rubixcube models the state of a 3x3x3 twisty-puzzle cube: six
// faces, each a 3x3 grid of one of six colours.
//
// # Building a cube
//
// Cubes come from two generators:
//
//	solved := rubixcube.Solved()
//	scrambled := rubixcube.Scrambled()
//
// Scrambled always places exactly 9 cells of each colour. Pass a seeded
// source for a reproducible result:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	cube := rubixcube.Scrambled(rubixcube.WithRand(rng))
//
// # Rotating a face
//
// Rotate turns a single face's grid 90 degrees and returns a new cube:
//
//	next := cube.Rotate(rubixcube.Front)
//	fmt.Println(next.Face(rubixcube.Front))
//
// Rotation is face-local. Unlike a physical twist, the edge strips of the
// four adjacent faces do not move.
//
// # Values
//
// Cube and Grid are values. Face returns a copy, and nothing in the
// package mutates a cube once built, so cubes are safe to share between
// goroutines.
package rubixcube
